package domain

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestMatchSetScoreRefusesFinishedMatch(t *testing.T) {
	m := newMatch("Mexico", "Canada", 0)
	if err := m.setScore(1, 2); err != nil {
		t.Fatalf("set score: %v", err)
	}
	m.finish()

	if err := m.setScore(3, 3); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
	if m.HomeScore != 1 || m.AwayScore != 2 {
		t.Fatalf("finished match changed to %d-%d", m.HomeScore, m.AwayScore)
	}
	if m.InProgress {
		t.Fatal("expected finished match")
	}
}

func TestMatchSetScoreRejectsNegative(t *testing.T) {
	m := newMatch("Mexico", "Canada", 0)
	if err := m.setScore(-1, 0); !errors.Is(err, ErrNegativeScore) {
		t.Fatalf("expected ErrNegativeScore, got %v", err)
	}
}

func TestMatchSetScoreRejectsOverflowingTotal(t *testing.T) {
	m := newMatch("Mexico", "Canada", 0)
	if err := m.setScore(math.MaxInt, 1); !errors.Is(err, ErrScoreOutOfRange) {
		t.Fatalf("expected ErrScoreOutOfRange, got %v", err)
	}
	if m.HomeScore != 0 || m.AwayScore != 0 {
		t.Fatalf("rejected update changed score to %d-%d", m.HomeScore, m.AwayScore)
	}

	if err := m.setScore(math.MaxInt-1, 1); err != nil {
		t.Fatalf("set score at the limit: %v", err)
	}
	if got := m.TotalScore(); got != math.MaxInt {
		t.Fatalf("total = %d, want %d", got, math.MaxInt)
	}
}

func TestValidateTeamNames(t *testing.T) {
	tests := []struct {
		name       string
		home, away string
		wantErr    bool
	}{
		{name: "valid", home: "Mexico", away: "Canada"},
		{name: "padded names are accepted", home: " Mexico ", away: "Canada"},
		{name: "empty home", home: "", away: "Canada", wantErr: true},
		{name: "blank away", home: "Mexico", away: " \n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTeamNames(tt.home, tt.away)
			if tt.wantErr != (err != nil) {
				t.Fatalf("ValidateTeamNames(%q, %q) = %v", tt.home, tt.away, err)
			}
			if err != nil && !errors.Is(err, ErrEmptyTeamName) {
				t.Fatalf("expected ErrEmptyTeamName, got %v", err)
			}
		})
	}
}

func TestCompareByScore(t *testing.T) {
	high := Match{HomeTeam: "A", HomeScore: 3, AwayScore: 3, Sequence: 0}
	low := Match{HomeTeam: "B", HomeScore: 1, Sequence: 5}
	tiedOlder := Match{HomeTeam: "C", HomeScore: 4, AwayScore: 2, Sequence: 1}
	tiedNewer := Match{HomeTeam: "D", HomeScore: 0, AwayScore: 6, Sequence: 2}

	if CompareByScore(high, low) >= 0 {
		t.Fatal("expected higher total first")
	}
	if CompareByScore(tiedNewer, tiedOlder) >= 0 {
		t.Fatal("expected newer match first on tie")
	}
	if CompareByScore(tiedOlder, tiedOlder) != 0 {
		t.Fatal("expected a match to compare equal to itself")
	}

	matches := []Match{low, tiedOlder, high, tiedNewer}
	slices.SortFunc(matches, CompareByScore)
	got := []string{matches[0].HomeTeam, matches[1].HomeTeam, matches[2].HomeTeam, matches[3].HomeTeam}
	want := []string{"D", "C", "A", "B"}
	if !slices.Equal(got, want) {
		t.Fatalf("sorted = %v, want %v", got, want)
	}
}
