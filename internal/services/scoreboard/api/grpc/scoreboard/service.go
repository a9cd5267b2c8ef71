package scoreboard

import (
	"context"

	scoreboardv1 "github.com/louisbranch/scoreboard/api/gen/go/scoreboard/v1"
	apperrors "github.com/louisbranch/scoreboard/internal/platform/errors"
	platformgrpc "github.com/louisbranch/scoreboard/internal/platform/grpc"
	"github.com/louisbranch/scoreboard/internal/platform/grpc/pagination"
	"github.com/louisbranch/scoreboard/internal/services/scoreboard/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const maxListMatchesPageSize = 100

// Service exposes scoreboard.v1 gRPC operations.
type Service struct {
	scoreboardv1.UnimplementedScoreboardServiceServer
	board *domain.Scoreboard
}

// NewService creates a scoreboard service backed by board.
func NewService(board *domain.Scoreboard) *Service {
	return &Service{board: board}
}

// StartMatch starts a 0-0 match for the requested pair.
func (s *Service) StartMatch(ctx context.Context, in *scoreboardv1.StartMatchRequest) (*emptypb.Empty, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "start match request is required")
	}
	if s == nil || s.board == nil {
		return nil, status.Error(codes.Internal, "scoreboard is not configured")
	}
	annotatePair(ctx, in.GetHomeTeam(), in.GetAwayTeam())

	if err := s.board.StartMatch(in.GetHomeTeam(), in.GetAwayTeam()); err != nil {
		return nil, handleError(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

// UpdateScore overwrites the scores of the live match for the requested pair.
func (s *Service) UpdateScore(ctx context.Context, in *scoreboardv1.UpdateScoreRequest) (*emptypb.Empty, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "update score request is required")
	}
	if s == nil || s.board == nil {
		return nil, status.Error(codes.Internal, "scoreboard is not configured")
	}
	annotatePair(ctx, in.GetHomeTeam(), in.GetAwayTeam())
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("scoreboard.home_score", int(in.GetHomeScore())),
		attribute.Int("scoreboard.away_score", int(in.GetAwayScore())),
	)

	err := s.board.UpdateScore(in.GetHomeTeam(), in.GetAwayTeam(), int(in.GetHomeScore()), int(in.GetAwayScore()))
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

// FinishMatch ends and removes the live match for the requested pair.
func (s *Service) FinishMatch(ctx context.Context, in *scoreboardv1.FinishMatchRequest) (*emptypb.Empty, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "finish match request is required")
	}
	if s == nil || s.board == nil {
		return nil, status.Error(codes.Internal, "scoreboard is not configured")
	}
	annotatePair(ctx, in.GetHomeTeam(), in.GetAwayTeam())

	if err := s.board.FinishMatch(in.GetHomeTeam(), in.GetAwayTeam()); err != nil {
		return nil, handleError(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

// ListMatchesInProgress returns live matches, highest total first and most
// recently started first among equal totals. The filter is applied to the
// ranked list, so the relative order of surviving matches is unchanged.
func (s *Service) ListMatchesInProgress(ctx context.Context, in *scoreboardv1.ListMatchesInProgressRequest) (*scoreboardv1.ListMatchesInProgressResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list matches in progress request is required")
	}
	if s == nil || s.board == nil {
		return nil, status.Error(codes.Internal, "scoreboard is not configured")
	}

	if in.GetPageSize() < 0 {
		return nil, status.Error(codes.InvalidArgument, "page_size must not be negative")
	}
	keep, err := parseMatchFilter(in.GetFilter())
	if err != nil {
		return nil, handleError(ctx, err)
	}

	ranked := s.board.MatchesInProgressOrderedByScore()
	filtered := make([]domain.Match, 0, len(ranked))
	for _, m := range ranked {
		if keep(m) {
			filtered = append(filtered, m)
		}
	}
	// An unset page_size returns every match.
	page := filtered
	if in.GetPageSize() > 0 {
		page = pagination.FirstPage(filtered, pagination.ClampPageSize(in.GetPageSize(), pagination.PageSizeConfig{
			Default: maxListMatchesPageSize,
			Max:     maxListMatchesPageSize,
		}))
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("scoreboard.matches_in_progress", len(ranked)),
		attribute.Int("scoreboard.matches_returned", len(page)),
	)

	resp := &scoreboardv1.ListMatchesInProgressResponse{
		Matches: make([]*scoreboardv1.Match, 0, len(page)),
	}
	for _, m := range page {
		resp.Matches = append(resp.Matches, matchToProto(m))
	}
	return resp, nil
}

func matchToProto(m domain.Match) *scoreboardv1.Match {
	return &scoreboardv1.Match{
		HomeTeam:   m.HomeTeam,
		AwayTeam:   m.AwayTeam,
		HomeScore:  int32(m.HomeScore),
		AwayScore:  int32(m.AwayScore),
		TotalScore: int64(m.TotalScore()),
		Sequence:   int64(m.Sequence),
	}
}

func annotatePair(ctx context.Context, homeTeam, awayTeam string) {
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("scoreboard.home_team", homeTeam),
		attribute.String("scoreboard.away_team", awayTeam),
	)
}

// handleError converts domain errors to gRPC status errors localized for the
// caller's x-locale metadata.
func handleError(ctx context.Context, err error) error {
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("scoreboard.error_code", string(apperrors.GetCode(err))),
		attribute.String("scoreboard.request_id", platformgrpc.RequestIDFromContext(ctx)),
	)
	locale := platformgrpc.LocaleFromIncoming(ctx)
	if locale == "" {
		locale = apperrors.DefaultLocale
	}
	return apperrors.HandleError(err, locale)
}
