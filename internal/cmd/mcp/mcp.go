// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/scoreboard/internal/platform/cmd"
	"github.com/louisbranch/scoreboard/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	Addr      string `env:"SCOREBOARD_ADDR"          envDefault:"localhost:8090"`
	HTTPAddr  string `env:"SCOREBOARD_MCP_HTTP_ADDR" envDefault:"localhost:8091"`
	Transport string `env:"SCOREBOARD_MCP_TRANSPORT" envDefault:"stdio"`
	Locale    string `env:"SCOREBOARD_MCP_LOCALE"    envDefault:"en-US"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if fs == nil {
		return Config{}, entrypoint.ParseArgs(nil, args)
	}
	// Flags bind before env parsing; values given on the command line win.
	fs.StringVar(&cfg.Addr, "addr", "", "scoreboard server address (default $SCOREBOARD_ADDR or localhost:8090)")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", "", "HTTP server address for the http transport (default $SCOREBOARD_MCP_HTTP_ADDR or localhost:8091)")
	fs.StringVar(&cfg.Transport, "transport", "", "transport type: stdio or http (default $SCOREBOARD_MCP_TRANSPORT or stdio)")
	fs.StringVar(&cfg.Locale, "locale", "", "locale used for scoreboard error messages (default $SCOREBOARD_MCP_LOCALE or en-US)")
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return service.Run(ctx, service.Config{
			GRPCAddr:  cfg.Addr,
			Transport: service.TransportKind(cfg.Transport),
			HTTPAddr:  cfg.HTTPAddr,
			Locale:    cfg.Locale,
		})
	})
}
