package scoreboardv1

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// StartMatchRequest starts a 0-0 match between two teams.
type StartMatchRequest struct {
	HomeTeam string
	AwayTeam string
}

func (x *StartMatchRequest) GetHomeTeam() string {
	if x == nil {
		return ""
	}
	return x.HomeTeam
}

func (x *StartMatchRequest) GetAwayTeam() string {
	if x == nil {
		return ""
	}
	return x.AwayTeam
}

// ToStruct encodes the request for the wire.
func (x *StartMatchRequest) ToStruct() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"home_team": stringValue(x.GetHomeTeam()),
		"away_team": stringValue(x.GetAwayTeam()),
	}}
}

// StartMatchRequestFromStruct decodes a wire request.
func StartMatchRequestFromStruct(s *structpb.Struct) (*StartMatchRequest, error) {
	home, away, err := decodePair(s)
	if err != nil {
		return nil, err
	}
	return &StartMatchRequest{HomeTeam: home, AwayTeam: away}, nil
}

// UpdateScoreRequest overwrites both scores of a live match.
type UpdateScoreRequest struct {
	HomeTeam  string
	AwayTeam  string
	HomeScore int32
	AwayScore int32
}

func (x *UpdateScoreRequest) GetHomeTeam() string {
	if x == nil {
		return ""
	}
	return x.HomeTeam
}

func (x *UpdateScoreRequest) GetAwayTeam() string {
	if x == nil {
		return ""
	}
	return x.AwayTeam
}

func (x *UpdateScoreRequest) GetHomeScore() int32 {
	if x == nil {
		return 0
	}
	return x.HomeScore
}

func (x *UpdateScoreRequest) GetAwayScore() int32 {
	if x == nil {
		return 0
	}
	return x.AwayScore
}

// ToStruct encodes the request for the wire.
func (x *UpdateScoreRequest) ToStruct() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"home_team":  stringValue(x.GetHomeTeam()),
		"away_team":  stringValue(x.GetAwayTeam()),
		"home_score": numberValue(x.GetHomeScore()),
		"away_score": numberValue(x.GetAwayScore()),
	}}
}

// UpdateScoreRequestFromStruct decodes a wire request.
func UpdateScoreRequestFromStruct(s *structpb.Struct) (*UpdateScoreRequest, error) {
	home, away, err := decodePair(s)
	if err != nil {
		return nil, err
	}
	homeScore, err := int32Field(s, "home_score")
	if err != nil {
		return nil, err
	}
	awayScore, err := int32Field(s, "away_score")
	if err != nil {
		return nil, err
	}
	return &UpdateScoreRequest{
		HomeTeam:  home,
		AwayTeam:  away,
		HomeScore: homeScore,
		AwayScore: awayScore,
	}, nil
}

// FinishMatchRequest ends a live match.
type FinishMatchRequest struct {
	HomeTeam string
	AwayTeam string
}

func (x *FinishMatchRequest) GetHomeTeam() string {
	if x == nil {
		return ""
	}
	return x.HomeTeam
}

func (x *FinishMatchRequest) GetAwayTeam() string {
	if x == nil {
		return ""
	}
	return x.AwayTeam
}

// ToStruct encodes the request for the wire.
func (x *FinishMatchRequest) ToStruct() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"home_team": stringValue(x.GetHomeTeam()),
		"away_team": stringValue(x.GetAwayTeam()),
	}}
}

// FinishMatchRequestFromStruct decodes a wire request.
func FinishMatchRequestFromStruct(s *structpb.Struct) (*FinishMatchRequest, error) {
	home, away, err := decodePair(s)
	if err != nil {
		return nil, err
	}
	return &FinishMatchRequest{HomeTeam: home, AwayTeam: away}, nil
}

// ListMatchesInProgressRequest lists live matches in ranking order.
type ListMatchesInProgressRequest struct {
	// Filter is an optional AIP-160 expression over home_team, away_team,
	// home_score, away_score and total_score.
	Filter string
	// PageSize truncates the ranked list; zero means the server maximum.
	PageSize int32
}

func (x *ListMatchesInProgressRequest) GetFilter() string {
	if x == nil {
		return ""
	}
	return x.Filter
}

func (x *ListMatchesInProgressRequest) GetPageSize() int32 {
	if x == nil {
		return 0
	}
	return x.PageSize
}

// ToStruct encodes the request for the wire.
func (x *ListMatchesInProgressRequest) ToStruct() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"filter":    stringValue(x.GetFilter()),
		"page_size": numberValue(x.GetPageSize()),
	}}
}

// ListMatchesInProgressRequestFromStruct decodes a wire request.
func ListMatchesInProgressRequestFromStruct(s *structpb.Struct) (*ListMatchesInProgressRequest, error) {
	filter, err := stringField(s, "filter")
	if err != nil {
		return nil, err
	}
	pageSize, err := int32Field(s, "page_size")
	if err != nil {
		return nil, err
	}
	return &ListMatchesInProgressRequest{Filter: filter, PageSize: pageSize}, nil
}

// Match is one live match as reported by ListMatchesInProgress.
type Match struct {
	HomeTeam   string
	AwayTeam   string
	HomeScore  int32
	AwayScore  int32
	TotalScore int64
	Sequence   int64
}

func (x *Match) GetHomeTeam() string {
	if x == nil {
		return ""
	}
	return x.HomeTeam
}

func (x *Match) GetAwayTeam() string {
	if x == nil {
		return ""
	}
	return x.AwayTeam
}

func (x *Match) GetHomeScore() int32 {
	if x == nil {
		return 0
	}
	return x.HomeScore
}

func (x *Match) GetAwayScore() int32 {
	if x == nil {
		return 0
	}
	return x.AwayScore
}

func (x *Match) GetTotalScore() int64 {
	if x == nil {
		return 0
	}
	return x.TotalScore
}

func (x *Match) GetSequence() int64 {
	if x == nil {
		return 0
	}
	return x.Sequence
}

func (x *Match) toValue() *structpb.Value {
	return structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
		"home_team":   stringValue(x.GetHomeTeam()),
		"away_team":   stringValue(x.GetAwayTeam()),
		"home_score":  numberValue(x.GetHomeScore()),
		"away_score":  numberValue(x.GetAwayScore()),
		"total_score": numberValue(x.GetTotalScore()),
		"sequence":    numberValue(x.GetSequence()),
	}})
}

func matchFromStruct(s *structpb.Struct) (*Match, error) {
	home, away, err := decodePair(s)
	if err != nil {
		return nil, err
	}
	m := &Match{HomeTeam: home, AwayTeam: away}
	if m.HomeScore, err = int32Field(s, "home_score"); err != nil {
		return nil, err
	}
	if m.AwayScore, err = int32Field(s, "away_score"); err != nil {
		return nil, err
	}
	if m.TotalScore, err = int64Field(s, "total_score"); err != nil {
		return nil, err
	}
	if m.Sequence, err = int64Field(s, "sequence"); err != nil {
		return nil, err
	}
	return m, nil
}

// ListMatchesInProgressResponse carries live matches, highest total first.
type ListMatchesInProgressResponse struct {
	Matches []*Match
}

func (x *ListMatchesInProgressResponse) GetMatches() []*Match {
	if x == nil {
		return nil
	}
	return x.Matches
}

// ToStruct encodes the response for the wire.
func (x *ListMatchesInProgressResponse) ToStruct() *structpb.Struct {
	values := make([]*structpb.Value, 0, len(x.GetMatches()))
	for _, m := range x.GetMatches() {
		values = append(values, m.toValue())
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"matches": structpb.NewListValue(&structpb.ListValue{Values: values}),
	}}
}

// ListMatchesInProgressResponseFromStruct decodes a wire response.
func ListMatchesInProgressResponseFromStruct(s *structpb.Struct) (*ListMatchesInProgressResponse, error) {
	values, err := listField(s, "matches")
	if err != nil {
		return nil, err
	}
	resp := &ListMatchesInProgressResponse{Matches: make([]*Match, 0, len(values))}
	for i, v := range values {
		sv, ok := v.GetKind().(*structpb.Value_StructValue)
		if !ok {
			return nil, &FieldError{Field: fmt.Sprintf("matches[%d]", i), Reason: "must be an object"}
		}
		m, err := matchFromStruct(sv.StructValue)
		if err != nil {
			return nil, fmt.Errorf("matches[%d]: %w", i, err)
		}
		resp.Matches = append(resp.Matches, m)
	}
	return resp, nil
}

func decodePair(s *structpb.Struct) (string, string, error) {
	home, err := stringField(s, "home_team")
	if err != nil {
		return "", "", err
	}
	away, err := stringField(s, "away_team")
	if err != nil {
		return "", "", err
	}
	return home, away, nil
}
