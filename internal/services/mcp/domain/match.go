package domain

import "github.com/modelcontextprotocol/go-sdk/mcp"

// MatchesInProgressURI addresses the ranked list of live matches.
const MatchesInProgressURI = "scoreboard://matches/in-progress"

// MatchPairInput identifies a match by its ordered team pair.
type MatchPairInput struct {
	HomeTeam string `json:"home_team" jsonschema:"home team name"`
	AwayTeam string `json:"away_team" jsonschema:"away team name"`
}

// ScoreUpdateInput represents the MCP tool input for a score update.
type ScoreUpdateInput struct {
	HomeTeam  string `json:"home_team" jsonschema:"home team name"`
	AwayTeam  string `json:"away_team" jsonschema:"away team name"`
	HomeScore int    `json:"home_score" jsonschema:"absolute home team score"`
	AwayScore int    `json:"away_score" jsonschema:"absolute away team score"`
}

// MatchesInProgressInput represents the MCP tool input for listing matches.
type MatchesInProgressInput struct {
	Filter   string `json:"filter,omitempty" jsonschema:"optional AIP-160 filter over home_team, away_team, home_score, away_score and total_score"`
	PageSize int    `json:"page_size,omitempty" jsonschema:"optional maximum number of matches to return; omit for all matches"`
}

// MatchResult represents one match in tool output.
type MatchResult struct {
	HomeTeam   string `json:"home_team" jsonschema:"home team name"`
	AwayTeam   string `json:"away_team" jsonschema:"away team name"`
	HomeScore  int    `json:"home_score" jsonschema:"home team score"`
	AwayScore  int    `json:"away_score" jsonschema:"away team score"`
	TotalScore int64  `json:"total_score" jsonschema:"sum of both scores"`
}

// MatchChangeResult represents the MCP tool output for start, update and finish.
type MatchChangeResult struct {
	HomeTeam  string `json:"home_team" jsonschema:"home team name"`
	AwayTeam  string `json:"away_team" jsonschema:"away team name"`
	HomeScore int    `json:"home_score" jsonschema:"home team score after the change"`
	AwayScore int    `json:"away_score" jsonschema:"away team score after the change"`
	Status    string `json:"status" jsonschema:"IN_PROGRESS or FINISHED"`
}

// MatchesInProgressResult lists live matches, highest total first.
type MatchesInProgressResult struct {
	Matches []MatchResult `json:"matches" jsonschema:"matches in ranking order"`
}

// MatchStartTool defines the MCP tool schema for starting a match.
func MatchStartTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "match_start",
		Description: "Starts a 0-0 match between a home team and an away team",
	}
}

// ScoreUpdateTool defines the MCP tool schema for updating a score.
func ScoreUpdateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "score_update",
		Description: "Sets the absolute scores of a match in progress",
	}
}

// MatchFinishTool defines the MCP tool schema for finishing a match.
func MatchFinishTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "match_finish",
		Description: "Finishes a match in progress and removes it from the scoreboard",
	}
}

// MatchesInProgressTool defines the MCP tool schema for the ranked summary.
func MatchesInProgressTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "matches_in_progress",
		Description: "Lists matches in progress by total score, most recently started first on ties",
	}
}

// MatchesInProgressResource defines the MCP resource for the ranked summary.
func MatchesInProgressResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "matches_in_progress",
		Title:       "Matches in progress",
		Description: "Live matches ordered by total score",
		MIMEType:    "application/json",
		URI:         MatchesInProgressURI,
	}
}
