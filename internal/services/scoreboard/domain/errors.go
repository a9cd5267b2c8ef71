package domain

import (
	apperrors "github.com/louisbranch/scoreboard/internal/platform/errors"
)

var (
	// ErrEmptyTeamName indicates an empty or whitespace-only team name.
	ErrEmptyTeamName = apperrors.New(apperrors.CodeMatchTeamNameEmpty, "home team and away team names must not be empty")
	// ErrNegativeScore indicates a score below zero.
	ErrNegativeScore = apperrors.New(apperrors.CodeMatchNegativeScore, "scores cannot be negative")
	// ErrScoreOutOfRange indicates scores whose sum does not fit in an int.
	ErrScoreOutOfRange = apperrors.New(apperrors.CodeMatchScoreOutOfRange, "combined score is out of range")
	// ErrMatchInProgress indicates the pair already has a live match.
	ErrMatchInProgress = apperrors.New(apperrors.CodeMatchAlreadyInProgress, "a match between the same teams is already in progress")
	// ErrMatchNotFound indicates the pair has no live match.
	ErrMatchNotFound = apperrors.New(apperrors.CodeMatchNotFound, "no match in progress for the provided teams")
)

func pairMetadata(homeTeam, awayTeam string) map[string]string {
	return map[string]string{
		"HomeTeam": homeTeam,
		"AwayTeam": awayTeam,
	}
}

func matchInProgressError(homeTeam, awayTeam string) error {
	return apperrors.WithMetadata(
		apperrors.CodeMatchAlreadyInProgress,
		"match "+homeTeam+" vs "+awayTeam+" is already in progress",
		pairMetadata(homeTeam, awayTeam),
	)
}

func matchNotFoundError(homeTeam, awayTeam string) error {
	return apperrors.WithMetadata(
		apperrors.CodeMatchNotFound,
		"no match in progress for "+homeTeam+" vs "+awayTeam,
		pairMetadata(homeTeam, awayTeam),
	)
}
