package service

import (
	"fmt"

	scoreboardv1 "github.com/louisbranch/scoreboard/api/gen/go/scoreboard/v1"
	"github.com/louisbranch/scoreboard/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type mcpRegistrationTarget interface {
	AddTool(*mcp.Tool, any) error
	AddResource(*mcp.Resource, mcp.ResourceHandler)
}

type mcpServerRegistrationAdapter struct {
	server *mcp.Server
}

func (r mcpServerRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	switch h := handler.(type) {
	case mcp.ToolHandlerFor[domain.MatchPairInput, domain.MatchChangeResult]:
		mcp.AddTool(r.server, tool, h)
	case mcp.ToolHandlerFor[domain.ScoreUpdateInput, domain.MatchChangeResult]:
		mcp.AddTool(r.server, tool, h)
	case mcp.ToolHandlerFor[domain.MatchesInProgressInput, domain.MatchesInProgressResult]:
		mcp.AddTool(r.server, tool, h)
	default:
		toolName := "<nil>"
		if tool != nil {
			toolName = tool.Name
		}
		return fmt.Errorf("mcp registration adapter does not support handler type %T for tool %q", handler, toolName)
	}
	return nil
}

func (r mcpServerRegistrationAdapter) AddResource(resource *mcp.Resource, handler mcp.ResourceHandler) {
	r.server.AddResource(resource, handler)
}

func registerMatchTools(registrar mcpRegistrationTarget, client scoreboardv1.ScoreboardServiceClient, locale string, notify domain.ResourceUpdateNotifier) error {
	registrations := []struct {
		tool    *mcp.Tool
		handler any
	}{
		{tool: domain.MatchStartTool(), handler: domain.MatchStartHandler(client, locale, notify)},
		{tool: domain.ScoreUpdateTool(), handler: domain.ScoreUpdateHandler(client, locale, notify)},
		{tool: domain.MatchFinishTool(), handler: domain.MatchFinishHandler(client, locale, notify)},
		{tool: domain.MatchesInProgressTool(), handler: domain.MatchesInProgressHandler(client, locale)},
	}
	for _, registration := range registrations {
		if err := registrar.AddTool(registration.tool, registration.handler); err != nil {
			return err
		}
	}
	return nil
}

func registerMatchResources(registrar mcpRegistrationTarget, client scoreboardv1.ScoreboardServiceClient, locale string) {
	registrar.AddResource(domain.MatchesInProgressResource(), domain.MatchesInProgressResourceHandler(client, locale))
}
