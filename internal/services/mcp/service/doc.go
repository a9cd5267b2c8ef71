// Package service hosts the scoreboard MCP server over stdio or streamable
// HTTP and forwards tool calls to the scoreboard gRPC API.
package service
