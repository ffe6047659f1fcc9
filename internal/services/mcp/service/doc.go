// Package service runs the calorie.space MCP server.
//
// It owns the upstream gRPC connections and the stdio or streamable HTTP
// transport; tool semantics live in the tools package.
package service
