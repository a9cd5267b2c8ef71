// Package domain translates MCP tool calls and resource reads into
// scoreboard.v1 gRPC calls.
//
// Each tool maps to one RPC: match_start, score_update and match_finish
// mutate the scoreboard, and matches_in_progress reads the ranked list. The
// scoreboard://matches/in-progress resource serves the same list as JSON.
package domain
