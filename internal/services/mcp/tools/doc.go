// Package tools defines the MCP tools that front the calorie.space gRPC
// services. Each handler translates tool input into one gRPC call or
// session and returns the structured result.
package tools
