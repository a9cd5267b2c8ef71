package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	scoreboardv1 "github.com/louisbranch/scoreboard/api/gen/go/scoreboard/v1"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var errClientNotConfigured = errors.New("scoreboard client is not configured")

const (
	statusInProgress = "IN_PROGRESS"
	statusFinished   = "FINISHED"
)

// MatchStartHandler executes a match start request.
func MatchStartHandler(client scoreboardv1.ScoreboardServiceClient, locale string, notify ResourceUpdateNotifier) mcp.ToolHandlerFor[MatchPairInput, MatchChangeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MatchPairInput) (*mcp.CallToolResult, MatchChangeResult, error) {
		if client == nil {
			return nil, MatchChangeResult{}, errClientNotConfigured
		}
		runCtx, cancel := context.WithTimeout(ctx, grpcCallTimeout)
		defer cancel()

		callCtx, callMeta, err := NewOutgoingContext(runCtx, locale)
		if err != nil {
			return nil, MatchChangeResult{}, fmt.Errorf("create request metadata: %w", err)
		}

		var header metadata.MD
		_, err = client.StartMatch(callCtx, &scoreboardv1.StartMatchRequest{
			HomeTeam: input.HomeTeam,
			AwayTeam: input.AwayTeam,
		}, grpc.Header(&header))
		if err != nil {
			return nil, MatchChangeResult{}, toolError("match start", err)
		}

		NotifyResourceUpdates(ctx, notify, MatchesInProgressURI)
		return CallToolResultWithMetadata(MergeResponseMetadata(callMeta, header)), MatchChangeResult{
			HomeTeam: input.HomeTeam,
			AwayTeam: input.AwayTeam,
			Status:   statusInProgress,
		}, nil
	}
}

// ScoreUpdateHandler executes a score update request.
func ScoreUpdateHandler(client scoreboardv1.ScoreboardServiceClient, locale string, notify ResourceUpdateNotifier) mcp.ToolHandlerFor[ScoreUpdateInput, MatchChangeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ScoreUpdateInput) (*mcp.CallToolResult, MatchChangeResult, error) {
		if client == nil {
			return nil, MatchChangeResult{}, errClientNotConfigured
		}
		homeScore, err := scoreToWire("home_score", input.HomeScore)
		if err != nil {
			return nil, MatchChangeResult{}, err
		}
		awayScore, err := scoreToWire("away_score", input.AwayScore)
		if err != nil {
			return nil, MatchChangeResult{}, err
		}

		runCtx, cancel := context.WithTimeout(ctx, grpcCallTimeout)
		defer cancel()

		callCtx, callMeta, err := NewOutgoingContext(runCtx, locale)
		if err != nil {
			return nil, MatchChangeResult{}, fmt.Errorf("create request metadata: %w", err)
		}

		var header metadata.MD
		_, err = client.UpdateScore(callCtx, &scoreboardv1.UpdateScoreRequest{
			HomeTeam:  input.HomeTeam,
			AwayTeam:  input.AwayTeam,
			HomeScore: homeScore,
			AwayScore: awayScore,
		}, grpc.Header(&header))
		if err != nil {
			return nil, MatchChangeResult{}, toolError("score update", err)
		}

		NotifyResourceUpdates(ctx, notify, MatchesInProgressURI)
		return CallToolResultWithMetadata(MergeResponseMetadata(callMeta, header)), MatchChangeResult{
			HomeTeam:  input.HomeTeam,
			AwayTeam:  input.AwayTeam,
			HomeScore: input.HomeScore,
			AwayScore: input.AwayScore,
			Status:    statusInProgress,
		}, nil
	}
}

// MatchFinishHandler executes a match finish request.
func MatchFinishHandler(client scoreboardv1.ScoreboardServiceClient, locale string, notify ResourceUpdateNotifier) mcp.ToolHandlerFor[MatchPairInput, MatchChangeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MatchPairInput) (*mcp.CallToolResult, MatchChangeResult, error) {
		if client == nil {
			return nil, MatchChangeResult{}, errClientNotConfigured
		}
		runCtx, cancel := context.WithTimeout(ctx, grpcCallTimeout)
		defer cancel()

		callCtx, callMeta, err := NewOutgoingContext(runCtx, locale)
		if err != nil {
			return nil, MatchChangeResult{}, fmt.Errorf("create request metadata: %w", err)
		}

		var header metadata.MD
		_, err = client.FinishMatch(callCtx, &scoreboardv1.FinishMatchRequest{
			HomeTeam: input.HomeTeam,
			AwayTeam: input.AwayTeam,
		}, grpc.Header(&header))
		if err != nil {
			return nil, MatchChangeResult{}, toolError("match finish", err)
		}

		NotifyResourceUpdates(ctx, notify, MatchesInProgressURI)
		return CallToolResultWithMetadata(MergeResponseMetadata(callMeta, header)), MatchChangeResult{
			HomeTeam: input.HomeTeam,
			AwayTeam: input.AwayTeam,
			Status:   statusFinished,
		}, nil
	}
}

// MatchesInProgressHandler executes a ranked summary request.
func MatchesInProgressHandler(client scoreboardv1.ScoreboardServiceClient, locale string) mcp.ToolHandlerFor[MatchesInProgressInput, MatchesInProgressResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MatchesInProgressInput) (*mcp.CallToolResult, MatchesInProgressResult, error) {
		if client == nil {
			return nil, MatchesInProgressResult{}, errClientNotConfigured
		}
		if input.PageSize < 0 || input.PageSize > math.MaxInt32 {
			return nil, MatchesInProgressResult{}, fmt.Errorf("page_size is out of range")
		}

		runCtx, cancel := context.WithTimeout(ctx, grpcCallTimeout)
		defer cancel()

		callCtx, callMeta, err := NewOutgoingContext(runCtx, locale)
		if err != nil {
			return nil, MatchesInProgressResult{}, fmt.Errorf("create request metadata: %w", err)
		}

		var header metadata.MD
		response, err := client.ListMatchesInProgress(callCtx, &scoreboardv1.ListMatchesInProgressRequest{
			Filter:   input.Filter,
			PageSize: int32(input.PageSize),
		}, grpc.Header(&header))
		if err != nil {
			return nil, MatchesInProgressResult{}, toolError("matches in progress", err)
		}
		if response == nil {
			return nil, MatchesInProgressResult{}, fmt.Errorf("matches in progress response is missing")
		}

		return CallToolResultWithMetadata(MergeResponseMetadata(callMeta, header)), matchesResultFromProto(response), nil
	}
}

// MatchesInProgressResourceHandler serves the ranked summary as JSON.
func MatchesInProgressResourceHandler(client scoreboardv1.ScoreboardServiceClient, locale string) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if client == nil {
			return nil, errClientNotConfigured
		}

		uri := MatchesInProgressURI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}

		runCtx, cancel := context.WithTimeout(ctx, grpcCallTimeout)
		defer cancel()

		callCtx, _, err := NewOutgoingContext(runCtx, locale)
		if err != nil {
			return nil, fmt.Errorf("create request metadata: %w", err)
		}

		response, err := client.ListMatchesInProgress(callCtx, &scoreboardv1.ListMatchesInProgressRequest{})
		if err != nil {
			return nil, toolError("matches in progress", err)
		}
		if response == nil {
			return nil, fmt.Errorf("matches in progress response is missing")
		}

		data, err := json.MarshalIndent(matchesResultFromProto(response), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal matches in progress: %w", err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}

func matchesResultFromProto(response *scoreboardv1.ListMatchesInProgressResponse) MatchesInProgressResult {
	result := MatchesInProgressResult{Matches: make([]MatchResult, 0, len(response.GetMatches()))}
	for _, m := range response.GetMatches() {
		result.Matches = append(result.Matches, MatchResult{
			HomeTeam:   m.GetHomeTeam(),
			AwayTeam:   m.GetAwayTeam(),
			HomeScore:  int(m.GetHomeScore()),
			AwayScore:  int(m.GetAwayScore()),
			TotalScore: m.GetTotalScore(),
		})
	}
	return result
}

func scoreToWire(field string, score int) (int32, error) {
	if score < math.MinInt32 || score > math.MaxInt32 {
		return 0, fmt.Errorf("%s is out of range", field)
	}
	return int32(score), nil
}

// toolError surfaces the server's localized message when one is attached.
func toolError(op string, err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%s failed: %w", op, err)
	}
	for _, detail := range st.Details() {
		if localized, ok := detail.(*errdetails.LocalizedMessage); ok && localized.GetMessage() != "" {
			return fmt.Errorf("%s failed: %s", op, localized.GetMessage())
		}
	}
	return fmt.Errorf("%s failed: %w", op, err)
}
