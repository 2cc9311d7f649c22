package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/morphic-dev/morphic/pkg/dom"
	"github.com/morphic-dev/morphic/pkg/middleware"
)

// RootFunc builds the root component host for a new session's document.
type RootFunc func(doc *dom.Document) *dom.Node

// Server is the HTTP/WebSocket server driving live morphic documents.
type Server struct {
	config   *Config
	root     RootFunc
	upgrader websocket.Upgrader

	sessions sync.Map // string -> *Session

	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a Server. The root function runs once per session to build
// that session's component tree.
func New(config *Config, root RootFunc) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	config.applyDefaults()

	s := &Server{
		config: config,
		root:   root,
		logger: config.Logger,
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  config.ReadBufferSize,
		WriteBufferSize: config.WriteBufferSize,
		CheckOrigin:     config.CheckOrigin,
	}
	return s
}

// Handler returns the server's HTTP handler, for mounting under another
// router or for tests.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	if s.config.Metrics {
		r.Use(middleware.Prometheus())
	}
	if s.config.Tracing {
		r.Use(middleware.OpenTelemetry())
	}

	r.Get("/", s.handlePage)
	r.Get("/ws", s.handleWebSocket)
	if s.config.StaticDir != "" {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(s.config.StaticDir)))
		r.Handle("/static/*", fs)
	}
	if s.config.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}
	return r
}

// Session returns the live session with the given ID.
func (s *Server) Session(id string) (*Session, error) {
	v, ok := s.sessions.Load(id)
	if !ok {
		return nil, ErrSessionNotFound(id)
	}
	return v.(*Session), nil
}

// SessionCount returns the number of live sessions.
func (s *Server) SessionCount() int {
	n := 0
	s.sessions.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}

// Run starts the server and blocks until the context is cancelled or an
// interrupt arrives, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "address", s.config.Address)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	case sig := <-sigCh:
		s.logger.Info("received signal", "signal", sig.String())
	}
	return s.Shutdown()
}

// Shutdown closes all sessions and stops the HTTP server.
func (s *Server) Shutdown() error {
	s.logger.Info("shutting down")

	s.sessions.Range(func(_, v any) bool {
		v.(*Session).Close()
		return true
	})

	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
