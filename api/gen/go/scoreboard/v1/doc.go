// Package scoreboardv1 declares the scoreboard.v1.ScoreboardService wire
// contract. It is maintained by hand; there is no .proto source.
//
// Messages travel as google.protobuf.Struct values keyed by snake_case field
// names; the typed structs in this package convert to and from that form.
// Mutating RPCs answer with google.protobuf.Empty.
package scoreboardv1
