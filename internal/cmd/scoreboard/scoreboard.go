// Package scoreboard parses scoreboard service flags and launches the service.
package scoreboard

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/scoreboard/internal/platform/cmd"
	server "github.com/louisbranch/scoreboard/internal/services/scoreboard/app"
)

// Config holds scoreboard command configuration.
type Config struct {
	Port int `env:"SCOREBOARD_PORT" envDefault:"8090"`
	// Addr overrides Port with a full listen address when set.
	Addr string `env:"SCOREBOARD_ADDR"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The scoreboard gRPC server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The scoreboard gRPC listen address (overrides -port)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the scoreboard gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceScoreboard, func(ctx context.Context) error {
		if cfg.Addr != "" {
			return server.RunWithAddr(ctx, cfg.Addr)
		}
		return server.Run(ctx, cfg.Port)
	})
}
