package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"

	"github.com/louisbranch/calorie.space/internal/platform/timeouts"
	"github.com/louisbranch/calorie.space/internal/services/mcp/tools"
	"github.com/louisbranch/calorie.space/internal/services/shared/grpcdial"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "calorie-space-mcp"
	serverVersion = "0.1.0"
)

// Transports.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config selects the upstream services, the credential sent to them and the
// MCP transport.
type Config struct {
	Endpoints grpcdial.Endpoints
	APIKey    string
	// Transport is stdio or http. Defaults to stdio.
	Transport string
	// HTTPAddr is the HTTP bind address. Defaults to localhost:8081.
	HTTPAddr string
	// AllowedHosts extends the loopback Host/Origin allowlist for HTTP.
	AllowedHosts []string
}

// Server exposes the calorie.space tools over MCP.
type Server struct {
	mcpServer *mcp.Server
	clients   *grpcdial.Clients
}

// New dials every upstream service and registers the tool handlers.
func New(ctx context.Context, cfg Config) (*Server, error) {
	clients, err := grpcdial.DialClients(ctx, cfg.Endpoints, cfg.APIKey, timeouts.GRPCDial, log.Printf)
	if err != nil {
		return nil, err
	}
	return newServer(clients), nil
}

func newServer(clients *grpcdial.Clients) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	mcp.AddTool(mcpServer, tools.EstimateTool(), tools.EstimateHandler(clients.Calorie))
	mcp.AddTool(mcpServer, tools.TallyMealTool(), tools.TallyMealHandler(clients.Dining))
	mcp.AddTool(mcpServer, tools.MealTotalTool(), tools.MealTotalHandler(clients.Dining))
	mcp.AddTool(mcpServer, tools.RecommendTool(), tools.RecommendHandler(clients.Workout))
	return &Server{mcpServer: mcpServer, clients: clients}
}

// Run creates a server and serves it on the configured transport until ctx
// ends.
func Run(ctx context.Context, cfg Config) error {
	transport := cfg.Transport
	if transport == "" {
		transport = TransportStdio
	}
	if transport != TransportStdio && transport != TransportHTTP {
		return fmt.Errorf("transport %q is not supported", transport)
	}

	server, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Printf("close mcp server: %v", closeErr)
		}
	}()
	if transport == TransportStdio {
		return server.Serve(ctx)
	}

	addr := cfg.HTTPAddr
	if addr == "" {
		addr = defaultHTTPAddr
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return server.serveHTTP(ctx, listener, cfg.AllowedHosts)
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return errors.New("mcp server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := s.mcpServer.Run(ctx, transport); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("serve mcp: %w", err)
	}
	return nil
}

// Close releases the upstream gRPC connections.
func (s *Server) Close() error {
	if s == nil {
		return nil
	}
	return s.clients.Close()
}
