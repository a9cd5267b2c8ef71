package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/louisbranch/scoreboard/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const healthMonitorInterval = 30 * time.Second

// HTTPTransport serves one MCP server over the streamable HTTP transport.
type HTTPTransport struct {
	addr      string
	mcpServer *mcp.Server
}

// NewHTTPTransportWithServer creates an HTTP transport for mcpServer.
func NewHTTPTransportWithServer(addr string, mcpServer *mcp.Server) *HTTPTransport {
	if addr == "" {
		addr = defaultHTTPAddr
	}
	return &HTTPTransport{addr: addr, mcpServer: mcpServer}
}

// Handler returns the HTTP handler for the MCP endpoint and a liveness probe.
func (t *HTTPTransport) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return t.mcpServer
	}, nil))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// Start listens on the configured address and serves until ctx is cancelled.
func (t *HTTPTransport) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", t.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", t.addr, err)
	}
	return t.Serve(ctx, listener)
}

// Serve serves on listener until ctx is cancelled.
func (t *HTTPTransport) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:           t.Handler(),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	log.Printf("mcp http transport listening at %v", listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown mcp http transport: %w", err)
		}
		<-serveErr
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve mcp http transport: %w", err)
	}
}

func runWithHTTPTransport(ctx context.Context, cfg Config) error {
	conn, err := dialScoreboardGRPC(ctx, cfg.GRPCAddr)
	if err != nil {
		return err
	}
	server, err := newServer(conn, cfg.Locale)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer server.Close()

	healthCtx, healthCancel := context.WithCancel(ctx)
	defer healthCancel()
	go monitorHealth(healthCtx, conn, healthMonitorInterval)

	return NewHTTPTransportWithServer(cfg.HTTPAddr, server.mcpServer).Start(ctx)
}
