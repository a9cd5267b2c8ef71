package domain

import (
	"slices"
	"sync"
)

// Scoreboard tracks matches in progress. The zero value is ready to use and
// safe for concurrent use; every operation holds one lock for its full run.
type Scoreboard struct {
	mu      sync.Mutex
	matches []Match
	// nextSequence is the sequence number for the next started match.
	nextSequence int
}

// New creates an empty scoreboard.
func New() *Scoreboard {
	return &Scoreboard{}
}

// StartMatch adds a 0-0 match between homeTeam and awayTeam.
func (s *Scoreboard) StartMatch(homeTeam, awayTeam string) error {
	if err := ValidateTeamNames(homeTeam, awayTeam); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(homeTeam, awayTeam) >= 0 {
		return matchInProgressError(homeTeam, awayTeam)
	}
	s.matches = append(s.matches, newMatch(homeTeam, awayTeam, s.nextSequence))
	s.nextSequence++
	return nil
}

// UpdateScore sets the absolute scores of the live match for the pair.
func (s *Scoreboard) UpdateScore(homeTeam, awayTeam string, homeScore, awayScore int) error {
	if err := ValidateTeamNames(homeTeam, awayTeam); err != nil {
		return err
	}
	if err := validateScores(homeScore, awayScore); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(homeTeam, awayTeam)
	if i < 0 {
		return matchNotFoundError(homeTeam, awayTeam)
	}
	return s.matches[i].setScore(homeScore, awayScore)
}

// FinishMatch ends the live match for the pair and removes it.
func (s *Scoreboard) FinishMatch(homeTeam, awayTeam string) error {
	if err := ValidateTeamNames(homeTeam, awayTeam); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(homeTeam, awayTeam)
	if i < 0 {
		return matchNotFoundError(homeTeam, awayTeam)
	}
	s.matches[i].finish()
	s.matches = slices.Delete(s.matches, i, i+1)
	return nil
}

// MatchesInProgressOrderedByScore returns a snapshot of the live matches
// ranked by CompareByScore. It never returns nil.
func (s *Scoreboard) MatchesInProgressOrderedByScore() []Match {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Match, 0, len(s.matches))
	for _, m := range s.matches {
		if m.InProgress {
			out = append(out, m)
		}
	}
	slices.SortFunc(out, CompareByScore)
	return out
}

// Len returns the number of matches in progress.
func (s *Scoreboard) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.matches)
}

// indexOf returns the position of the live match for the exact pair, or -1.
// Callers must hold s.mu.
func (s *Scoreboard) indexOf(homeTeam, awayTeam string) int {
	return slices.IndexFunc(s.matches, func(m Match) bool {
		return m.InProgress && m.is(homeTeam, awayTeam)
	})
}
