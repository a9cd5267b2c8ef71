package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	scoreboardv1 "github.com/louisbranch/scoreboard/api/gen/go/scoreboard/v1"
	platformgrpc "github.com/louisbranch/scoreboard/internal/platform/grpc"
	"github.com/louisbranch/scoreboard/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	serverName    = "Scoreboard MCP"
	serverVersion = "0.1.0"

	defaultHTTPAddr = "localhost:8091"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP serves MCP over the streamable HTTP transport.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	GRPCAddr  string
	Transport TransportKind
	HTTPAddr  string
	// Locale is sent as x-locale so scoreboard errors come back translated.
	Locale string
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
	conn      *grpc.ClientConn
}

// newServer registers tools and resources backed by conn.
func newServer(conn *grpc.ClientConn, locale string) (*Server, error) {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{
		SubscribeHandler:   resourceSubscribeHandler,
		UnsubscribeHandler: resourceUnsubscribeHandler,
	})
	if err := register(mcpServer, scoreboardv1.NewScoreboardServiceClient(conn), locale); err != nil {
		return nil, err
	}
	return &Server{mcpServer: mcpServer, conn: conn}, nil
}

func register(mcpServer *mcp.Server, client scoreboardv1.ScoreboardServiceClient, locale string) error {
	notify := func(ctx context.Context, uri string) {
		if err := mcpServer.ResourceUpdated(ctx, &mcp.ResourceUpdatedNotificationParams{URI: uri}); err != nil {
			log.Printf("mcp resource updated notify failed: uri=%s err=%v", uri, err)
		}
	}
	registrar := mcpServerRegistrationAdapter{server: mcpServer}
	if err := registerMatchTools(registrar, client, locale, notify); err != nil {
		return fmt.Errorf("register match tools: %w", err)
	}
	registerMatchResources(registrar, client, locale)
	return nil
}

// resourceSubscribeHandler accepts resource subscriptions with a valid URI.
func resourceSubscribeHandler(_ context.Context, req *mcp.SubscribeRequest) error {
	if req == nil || req.Params == nil || strings.TrimSpace(req.Params.URI) == "" {
		return fmt.Errorf("resource uri is required")
	}
	return nil
}

// resourceUnsubscribeHandler accepts resource unsubscriptions with a valid URI.
func resourceUnsubscribeHandler(_ context.Context, req *mcp.UnsubscribeRequest) error {
	if req == nil || req.Params == nil || strings.TrimSpace(req.Params.URI) == "" {
		return fmt.Errorf("resource uri is required")
	}
	return nil
}

// Run connects to the scoreboard gRPC server and serves MCP on the configured
// transport until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		return runWithTransport(ctx, cfg, &mcp.StdioTransport{})
	case TransportHTTP:
		return runWithHTTPTransport(ctx, cfg)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

func runWithTransport(ctx context.Context, cfg Config, transport mcp.Transport) error {
	conn, err := dialScoreboardGRPC(ctx, cfg.GRPCAddr)
	if err != nil {
		return err
	}
	server, err := newServer(conn, cfg.Locale)
	if err != nil {
		_ = conn.Close()
		return err
	}
	return server.serveWithTransport(ctx, transport)
}

// serveWithTransport runs the MCP server on transport and closes the gRPC
// connection on exit.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	closeErr := s.Close()
	if closeErr != nil {
		if err == nil {
			return fmt.Errorf("close gRPC connection: %w", closeErr)
		}
		return fmt.Errorf("serve MCP: %v; close gRPC connection: %w", err, closeErr)
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// Close releases the gRPC connection held by the server.
func (s *Server) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	if err := s.conn.Close(); err != nil {
		return err
	}
	s.conn = nil
	return nil
}

// monitorHealth logs when the scoreboard server stops reporting SERVING.
// Tool calls keep failing on their own, so the HTTP listener stays up.
func monitorHealth(ctx context.Context, conn grpc.ClientConnInterface, interval time.Duration) {
	if conn == nil {
		return
	}
	healthClient := grpc_health_v1.NewHealthClient(conn)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
			response, err := healthClient.Check(callCtx, &grpc_health_v1.HealthCheckRequest{
				Service: scoreboardv1.ScoreboardService_ServiceName,
			})
			cancel()
			if err != nil {
				log.Printf("scoreboard health check failed: %v", err)
			} else if response.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
				log.Printf("scoreboard health check status: %s", response.GetStatus())
			}
		}
	}
}

func dialScoreboardGRPC(ctx context.Context, addr string) (*grpc.ClientConn, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logf := func(format string, args ...any) {
		log.Printf("scoreboard %s", fmt.Sprintf(format, args...))
	}
	conn, err := platformgrpc.DialWithHealth(
		ctx,
		nil,
		addr,
		scoreboardv1.ScoreboardService_ServiceName,
		timeouts.GRPCDial,
		logf,
	)
	if err != nil {
		var dialErr *platformgrpc.DialError
		if errors.As(err, &dialErr) {
			if dialErr.Stage == platformgrpc.DialStageConnect {
				return nil, fmt.Errorf("connect to scoreboard server at %s: %w", addr, dialErr.Err)
			}
			return nil, fmt.Errorf("scoreboard server at %s is not healthy: %w", addr, dialErr.Err)
		}
		return nil, err
	}
	return conn, nil
}
