package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/louisbranch/calorie.space/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	defaultHTTPAddr       = "localhost:8081"
	healthMonitorInterval = 30 * time.Second
	readHeaderTimeout     = 10 * time.Second
)

// httpHandler serves streamable MCP on /mcp and upstream health on
// /mcp/health. Requests whose Host or Origin is not loopback or listed in
// allowedHosts are rejected.
func (s *Server) httpHandler(allowedHosts []string) http.Handler {
	allowed := parseAllowedHosts(allowedHosts)
	mux := http.NewServeMux()
	mux.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil))
	mux.HandleFunc("GET /mcp/health", s.handleHealth)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := validateLocalRequest(r, allowed); err != nil {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.GRPCRequest)
	defer cancel()
	if err := s.clients.Check(ctx); err != nil {
		http.Error(w, "upstream unavailable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		log.Printf("write health response: %v", err)
	}
}

// serveHTTP serves the MCP HTTP handler on listener until ctx ends.
func (s *Server) serveHTTP(ctx context.Context, listener net.Listener, allowedHosts []string) error {
	if s == nil || s.mcpServer == nil {
		return errors.New("mcp server is not configured")
	}
	httpServer := &http.Server{
		Handler:           s.httpHandler(allowedHosts),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	monitorCtx, stopMonitor := context.WithCancel(ctx)
	defer stopMonitor()
	go s.monitorHealth(monitorCtx, healthMonitorInterval)

	log.Printf("MCP HTTP server listening at %v", listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		log.Printf("shutting down MCP HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve MCP HTTP: %w", err)
	}
}

// monitorHealth logs upstream health failures every interval. It never stops
// the server; tool calls surface their own errors.
func (s *Server) monitorHealth(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			checkCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
			if err := s.clients.Check(checkCtx); err != nil {
				log.Printf("upstream health check failed: %v", err)
			}
			cancel()
		}
	}
}

// validateLocalRequest checks Host and Origin against loopback and the
// allowed hosts to block DNS rebinding.
func validateLocalRequest(r *http.Request, allowed map[string]struct{}) error {
	if !isAllowedHost(r.Host, allowed) {
		return errors.New("invalid host")
	}
	origin := strings.TrimSpace(r.Header.Get("Origin"))
	if origin == "" {
		return nil
	}
	parsed, err := url.Parse(origin)
	if err != nil || parsed.Host == "" {
		return errors.New("invalid origin")
	}
	if !isAllowedHost(parsed.Host, allowed) {
		return errors.New("invalid origin")
	}
	return nil
}

func isAllowedHost(host string, allowed map[string]struct{}) bool {
	resolved, ok := normalizeHost(host)
	if !ok {
		return false
	}
	if isLoopbackHost(resolved) {
		return true
	}
	_, ok = allowed[strings.ToLower(resolved)]
	return ok
}

func isLoopbackHost(host string) bool {
	switch strings.ToLower(strings.TrimSpace(host)) {
	case "localhost", "127.0.0.1", "::1":
		return true
	default:
		return false
	}
}

func parseAllowedHosts(hosts []string) map[string]struct{} {
	result := make(map[string]struct{}, len(hosts))
	for _, entry := range hosts {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			result[strings.ToLower(trimmed)] = struct{}{}
		}
	}
	return result
}

// normalizeHost strips the port and IPv6 brackets from a Host or Origin
// authority.
func normalizeHost(host string) (string, bool) {
	host = strings.TrimSpace(host)
	if host == "" {
		return "", false
	}
	if strings.HasPrefix(host, "[") {
		if h, _, err := net.SplitHostPort(host); err == nil {
			return h, true
		}
		if strings.HasSuffix(host, "]") {
			return strings.TrimSuffix(strings.TrimPrefix(host, "["), "]"), true
		}
		return "", false
	}
	if strings.Count(host, ":") > 1 {
		return host, true
	}
	if strings.Contains(host, ":") {
		h, _, err := net.SplitHostPort(host)
		if err != nil {
			return "", false
		}
		return h, true
	}
	return host, true
}
