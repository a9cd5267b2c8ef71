package i18n

func init() {
	RegisterCatalog(BaseLocale, NewCatalog(BaseLocale, enUSMessages))
}

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeMatchTeamNameEmpty     = "MATCH_TEAM_NAME_EMPTY"
	CodeMatchNegativeScore     = "MATCH_NEGATIVE_SCORE"
	CodeMatchScoreOutOfRange   = "MATCH_SCORE_OUT_OF_RANGE"
	CodeMatchAlreadyInProgress = "MATCH_ALREADY_IN_PROGRESS"
	CodeMatchNotFound          = "MATCH_NOT_FOUND"
	CodeFilterInvalid          = "FILTER_INVALID"
)

var enUSMessages = map[Code]string{
	CodeMatchTeamNameEmpty:     "Home team and away team names must not be empty.",
	CodeMatchNegativeScore:     "Scores cannot be negative.",
	CodeMatchScoreOutOfRange:   "The combined score is too large.",
	CodeMatchAlreadyInProgress: "A match between {{.HomeTeam}} and {{.AwayTeam}} is already in progress.",
	CodeMatchNotFound:          "No match in progress between {{.HomeTeam}} and {{.AwayTeam}}.",
	CodeFilterInvalid:          "The match filter is invalid: {{.Reason}}",
}
