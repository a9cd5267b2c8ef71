package domain

import (
	"context"
	"strings"

	platformgrpc "github.com/louisbranch/scoreboard/internal/platform/grpc"
	"github.com/louisbranch/scoreboard/internal/platform/id"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc/metadata"
)

// ToolCallMetadata carries correlation identifiers for MCP tool calls.
type ToolCallMetadata struct {
	RequestID string
}

// ResourceUpdateNotifier notifies MCP clients about resource updates.
type ResourceUpdateNotifier func(ctx context.Context, uri string)

// NewOutgoingContext attaches a fresh request ID and the caller locale to
// outgoing gRPC metadata.
func NewOutgoingContext(ctx context.Context, locale string) (context.Context, ToolCallMetadata, error) {
	requestID, err := id.NewID()
	if err != nil {
		return nil, ToolCallMetadata{}, err
	}
	callCtx := metadata.AppendToOutgoingContext(ctx, platformgrpc.RequestIDHeader, requestID)
	callCtx = platformgrpc.WithOutgoingLocale(callCtx, locale)
	return callCtx, ToolCallMetadata{RequestID: requestID}, nil
}

// MergeResponseMetadata prefers the request ID echoed by the server.
func MergeResponseMetadata(sent ToolCallMetadata, header metadata.MD) ToolCallMetadata {
	if values := header.Get(platformgrpc.RequestIDHeader); len(values) > 0 && values[0] != "" {
		return ToolCallMetadata{RequestID: values[0]}
	}
	return sent
}

// CallToolResultWithMetadata builds a tool result with correlation metadata.
func CallToolResultWithMetadata(meta ToolCallMetadata) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Meta: map[string]any{
			platformgrpc.RequestIDHeader: meta.RequestID,
		},
	}
}

// NotifyResourceUpdates sends resource update notifications for each URI provided.
func NotifyResourceUpdates(ctx context.Context, notify ResourceUpdateNotifier, uris ...string) {
	if notify == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	for _, uri := range uris {
		if strings.TrimSpace(uri) == "" {
			continue
		}
		notify(ctx, uri)
	}
}
