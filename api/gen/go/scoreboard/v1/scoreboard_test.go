package scoreboardv1

import (
	"errors"
	"math"
	"testing"

	"google.golang.org/protobuf/types/known/structpb"
)

func TestUpdateScoreRequestFromStruct(t *testing.T) {
	s := (&UpdateScoreRequest{HomeTeam: "Mexico", AwayTeam: "Canada", HomeScore: 0, AwayScore: 5}).ToStruct()
	got, err := UpdateScoreRequestFromStruct(s)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.HomeTeam != "Mexico" || got.AwayTeam != "Canada" || got.HomeScore != 0 || got.AwayScore != 5 {
		t.Fatalf("decoded = %+v", got)
	}
}

func TestUpdateScoreRequestKeepsNegativeScores(t *testing.T) {
	s := (&UpdateScoreRequest{HomeTeam: "Mexico", AwayTeam: "Canada", HomeScore: -1}).ToStruct()
	got, err := UpdateScoreRequestFromStruct(s)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.HomeScore != -1 {
		t.Fatalf("home_score = %d, want -1", got.HomeScore)
	}
}

func TestRequestFromStructRejectsMalformedFields(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]*structpb.Value
		field  string
	}{
		{
			name:   "team is a number",
			fields: map[string]*structpb.Value{"home_team": structpb.NewNumberValue(1)},
			field:  "home_team",
		},
		{
			name:   "fractional score",
			fields: map[string]*structpb.Value{"home_score": structpb.NewNumberValue(1.5)},
			field:  "home_score",
		},
		{
			name:   "score out of range",
			fields: map[string]*structpb.Value{"away_score": structpb.NewNumberValue(math.MaxInt32 + 1)},
			field:  "away_score",
		},
		{
			name:   "score is a string",
			fields: map[string]*structpb.Value{"away_score": structpb.NewStringValue("3")},
			field:  "away_score",
		},
		{
			name:   "score is NaN",
			fields: map[string]*structpb.Value{"home_score": structpb.NewNumberValue(math.NaN())},
			field:  "home_score",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UpdateScoreRequestFromStruct(&structpb.Struct{Fields: tt.fields})
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("expected FieldError, got %v", err)
			}
			if fieldErr.Field != tt.field {
				t.Fatalf("field = %q, want %q", fieldErr.Field, tt.field)
			}
		})
	}
}

func TestRequestFromStructTreatsMissingAndNullAsZero(t *testing.T) {
	got, err := ListMatchesInProgressRequestFromStruct(&structpb.Struct{Fields: map[string]*structpb.Value{
		"filter": structpb.NewNullValue(),
	}})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Filter != "" || got.PageSize != 0 {
		t.Fatalf("decoded = %+v", got)
	}

	req, err := StartMatchRequestFromStruct(nil)
	if err != nil {
		t.Fatalf("decode nil struct: %v", err)
	}
	if req.HomeTeam != "" || req.AwayTeam != "" {
		t.Fatalf("decoded = %+v", req)
	}
}

func TestListMatchesInProgressResponseStructRoundTrip(t *testing.T) {
	resp := &ListMatchesInProgressResponse{Matches: []*Match{
		{HomeTeam: "Uruguay", AwayTeam: "Italy", HomeScore: 6, AwayScore: 6, TotalScore: 12, Sequence: 3},
		{HomeTeam: "Spain", AwayTeam: "Brazil", HomeScore: 10, AwayScore: 2, TotalScore: 12, Sequence: 1},
	}}
	got, err := ListMatchesInProgressResponseFromStruct(resp.ToStruct())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.GetMatches()) != 2 {
		t.Fatalf("matches len = %d, want 2", len(got.GetMatches()))
	}
	if got.Matches[0].GetHomeTeam() != "Uruguay" || got.Matches[1].GetSequence() != 1 {
		t.Fatalf("decoded order changed: %+v", got.Matches)
	}
}

func TestListMatchesInProgressResponseRejectsNonObjectEntries(t *testing.T) {
	s := &structpb.Struct{Fields: map[string]*structpb.Value{
		"matches": structpb.NewListValue(&structpb.ListValue{Values: []*structpb.Value{structpb.NewStringValue("x")}}),
	}}
	if _, err := ListMatchesInProgressResponseFromStruct(s); err == nil {
		t.Fatal("expected error for non-object match entry")
	}
}

func TestGettersAreNilSafe(t *testing.T) {
	var m *Match
	if m.GetHomeTeam() != "" || m.GetTotalScore() != 0 || m.GetSequence() != 0 {
		t.Fatal("expected zero values from nil match")
	}
	var resp *ListMatchesInProgressResponse
	if resp.GetMatches() != nil {
		t.Fatal("expected nil matches from nil response")
	}
}
