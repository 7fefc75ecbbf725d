// Package api provides HTTP handlers and the main API server logic for the
// action coach.
//
// It exposes RESTful endpoints for chat coaching, action scoring and
// tracking, user pattern lookup, coaching level metadata, and session
// content management.
package api

import (
	"log/slog"
	"net/http"

	"github.com/ibam-edu/actioncoach/internal/chat"
	"github.com/ibam-edu/actioncoach/internal/store"
)

// DefaultAddr is the listen address used when no override is configured.
const DefaultAddr = ":8080"

// Opts holds configuration options for the API server.
type Opts struct {
	Addr string
}

// Option defines a functional option for API server configuration.
type Option func(*Opts)

// WithAddr overrides the default listen address.
func WithAddr(addr string) Option {
	return func(o *Opts) {
		o.Addr = addr
	}
}

// Server wires the store and the chat composer behind the HTTP surface.
type Server struct {
	store    store.Store
	composer *chat.Composer
	addr     string
}

// NewServer creates an API server backed by the given store.
func NewServer(st store.Store, opts ...Option) *Server {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	addr := cfg.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	return &Server{
		store:    st,
		composer: chat.NewComposer(),
		addr:     addr,
	}
}

// Handler returns the routed HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/chat", s.chatHandler)
	mux.HandleFunc("/actions/score", s.scoreHandler)
	mux.HandleFunc("/actions", s.actionsHandler)
	mux.HandleFunc("/patterns", s.patternsHandler)
	mux.HandleFunc("/coaching/levels/", s.levelsHandler)
	mux.HandleFunc("/sessions/", s.sessionsHandler)
	mux.HandleFunc("/health", s.healthHandler)
	return mux
}

// Run starts the HTTP server and blocks until it fails.
func (s *Server) Run() error {
	slog.Info("Server.Run: action coach API starting", "addr", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}
