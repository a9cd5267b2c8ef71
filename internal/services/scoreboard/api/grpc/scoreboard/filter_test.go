package scoreboard

import (
	"errors"
	"testing"

	apperrors "github.com/louisbranch/scoreboard/internal/platform/errors"
	"github.com/louisbranch/scoreboard/internal/services/scoreboard/domain"
)

func TestParseMatchFilterEmptyMatchesAll(t *testing.T) {
	pred, err := parseMatchFilter("   ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !pred(domain.Match{}) {
		t.Fatal("expected empty filter to match")
	}
}

func TestParseMatchFilterEvaluates(t *testing.T) {
	m := domain.Match{HomeTeam: "Spain", AwayTeam: "Brazil", HomeScore: 10, AwayScore: 2}

	testCases := []struct {
		filter string
		want   bool
	}{
		{`home_team = "Spain"`, true},
		{`home_team != "Spain"`, false},
		{`away_team < "C"`, true},
		{"total_score = 12", true},
		{"total_score <= 11", false},
		{"away_score >= 2 AND home_score < 11", true},
		{`home_team = "Italy" OR total_score > 10`, true},
		{"NOT total_score = 12", false},
	}
	for _, tc := range testCases {
		pred, err := parseMatchFilter(tc.filter)
		if err != nil {
			t.Fatalf("%q: parse: %v", tc.filter, err)
		}
		if got := pred(m); got != tc.want {
			t.Fatalf("%q = %v, want %v", tc.filter, got, tc.want)
		}
	}
}

func TestParseMatchFilterRejectsFieldToFieldComparison(t *testing.T) {
	if _, err := parseMatchFilter("home_score > away_score"); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseMatchFilterInvalidCarriesCode(t *testing.T) {
	_, err := parseMatchFilter("home_team = ")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := apperrors.GetCode(err); got != apperrors.CodeFilterInvalid {
		t.Fatalf("code = %q, want %q", got, apperrors.CodeFilterInvalid)
	}
	var domainErr *apperrors.Error
	if !errors.As(err, &domainErr) || domainErr.Metadata["Reason"] == "" {
		t.Fatalf("expected reason metadata, got %v", err)
	}
}
