// Package server exposes the screenshot tools over two transports: the MCP
// stdio protocol and an HTTP facade with the same tool surface.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/yushinna/screenshot-mcp/internal/capture"
)

// Config contains HTTP facade settings.
type Config struct {
	Addr  string
	Token string
}

// toolFunc executes one tool against the adapter and returns its text result.
type toolFunc func(ctx context.Context, args map[string]any) (string, error)

// Server serves the screenshot tools over HTTP.
type Server struct {
	cfg     Config
	router  *chi.Mux
	adapter *capture.Adapter
	log     *slog.Logger
	tools   map[string]toolFunc
}

// New constructs a Server with middleware and routes configured.
func New(cfg Config, adapter *capture.Adapter, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{cfg: cfg, router: chi.NewRouter(), adapter: adapter, log: log}
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Get("/health", s.handleHealth)

	s.router.Route("/mcp", func(r chi.Router) {
		r.Use(s.auth)
		r.Get("/tools", s.handleListTools)
		r.Post("/call", s.handleCall)
	})

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.tools = map[string]toolFunc{
		"screenshot": func(ctx context.Context, args map[string]any) (string, error) {
			return s.adapter.CaptureFull(ctx, stringArg(args, "filename"), intArg(args, "delay", 0))
		},
		"screenshot_window": func(_ context.Context, args map[string]any) (string, error) {
			return s.adapter.CaptureWindow(stringArg(args, "filename"))
		},
		"screenshot_area": func(_ context.Context, args map[string]any) (string, error) {
			return s.adapter.CaptureArea(stringArg(args, "filename"))
		},
		"list_screenshots": func(_ context.Context, args map[string]any) (string, error) {
			return s.adapter.List(intArg(args, "limit", capture.DefaultListLimit))
		},
	}
}

// Router exposes the root HTTP handler for the server.
func (s *Server) Router() http.Handler { return s.router }

// Serve listens on the configured address until the listener fails.
func (s *Server) Serve() error {
	return http.ListenAndServe(s.cfg.Addr, s.router)
}

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.Token == "" {
			next.ServeHTTP(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+s.cfg.Token {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleListTools(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"tools": toolCatalog()})
}

func (s *Server) handleCall(w http.ResponseWriter, r *http.Request) {
	var req CallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	fn, ok := s.tools[req.Name]
	if !ok {
		http.Error(w, "unknown tool", http.StatusNotFound)
		return
	}

	text, err := fn(r.Context(), req.Args)
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		s.log.Error("tool call failed", "tool", req.Name, "err", err)
		_ = json.NewEncoder(w).Encode(errorResult("Error: " + err.Error()))
		return
	}
	_ = json.NewEncoder(w).Encode(textResult(text))
}

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

// intArg reads an integer argument; JSON numbers decode as float64.
func intArg(args map[string]any, key string, def int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}
