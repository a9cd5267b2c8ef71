// Package scoreboard implements the scoreboard.v1 gRPC service over an
// in-memory domain.Scoreboard.
package scoreboard
