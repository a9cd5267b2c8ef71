// Package timeouts defines shared timeout constants used across scoreboard
// processes.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing the scoreboard gRPC server.
const GRPCDial = 2 * time.Second

// GRPCRequest caps the time allowed for a single scoreboard RPC issued by an
// adapter such as the MCP tools.
const GRPCRequest = 5 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long servers and telemetry wait during graceful
// shutdown.
const Shutdown = 5 * time.Second
