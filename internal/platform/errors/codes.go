// Package errors provides structured scoreboard errors with gRPC and i18n
// mappings.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Match errors
	CodeMatchTeamNameEmpty     Code = "MATCH_TEAM_NAME_EMPTY"
	CodeMatchNegativeScore     Code = "MATCH_NEGATIVE_SCORE"
	CodeMatchScoreOutOfRange   Code = "MATCH_SCORE_OUT_OF_RANGE"
	CodeMatchAlreadyInProgress Code = "MATCH_ALREADY_IN_PROGRESS"
	CodeMatchNotFound          Code = "MATCH_NOT_FOUND"

	// Query errors
	CodeFilterInvalid Code = "FILTER_INVALID"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - malformed input, nothing applied
	case CodeMatchTeamNameEmpty,
		CodeMatchNegativeScore,
		CodeMatchScoreOutOfRange,
		CodeFilterInvalid:
		return codes.InvalidArgument

	// AlreadyExists - the pair already has a live match
	case CodeMatchAlreadyInProgress:
		return codes.AlreadyExists

	// NotFound - no live match for the pair
	case CodeMatchNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
