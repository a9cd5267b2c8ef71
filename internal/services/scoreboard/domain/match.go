package domain

import (
	"math"
	"strings"
)

// Match is one contest between two teams.
type Match struct {
	HomeTeam   string
	AwayTeam   string
	HomeScore  int
	AwayScore  int
	InProgress bool
	// Sequence orders matches by start time within one scoreboard; higher
	// means started more recently.
	Sequence int
}

// newMatch returns an in-progress 0-0 match.
func newMatch(homeTeam, awayTeam string, sequence int) Match {
	return Match{
		HomeTeam:   homeTeam,
		AwayTeam:   awayTeam,
		InProgress: true,
		Sequence:   sequence,
	}
}

// TotalScore returns the sum of both scores. setScore keeps the sum within
// int range.
func (m Match) TotalScore() int {
	return m.HomeScore + m.AwayScore
}

// setScore overwrites both scores. Finished matches cannot change.
func (m *Match) setScore(homeScore, awayScore int) error {
	if !m.InProgress {
		return matchNotFoundError(m.HomeTeam, m.AwayTeam)
	}
	if err := validateScores(homeScore, awayScore); err != nil {
		return err
	}
	m.HomeScore = homeScore
	m.AwayScore = awayScore
	return nil
}

func (m *Match) finish() {
	m.InProgress = false
}

func (m Match) is(homeTeam, awayTeam string) bool {
	return m.HomeTeam == homeTeam && m.AwayTeam == awayTeam
}

// ValidateTeamNames rejects empty or whitespace-only team names.
func ValidateTeamNames(homeTeam, awayTeam string) error {
	if strings.TrimSpace(homeTeam) == "" || strings.TrimSpace(awayTeam) == "" {
		return ErrEmptyTeamName
	}
	return nil
}

func validateScores(homeScore, awayScore int) error {
	if homeScore < 0 || awayScore < 0 {
		return ErrNegativeScore
	}
	if homeScore > math.MaxInt-awayScore {
		return ErrScoreOutOfRange
	}
	return nil
}
