// Package server exposes tutorial sessions to a browser over websockets.
// Each connection gets its own engine and session id.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/lox/holdem-tutor/internal/game"
	"github.com/lox/holdem-tutor/internal/pacer"
)

// EngineFactory creates the engine for a new session
type EngineFactory func(logger *log.Logger) *game.Engine

// Server represents the WebSocket server
type Server struct {
	addr      string
	upgrader  websocket.Upgrader
	logger    *log.Logger
	newEngine EngineFactory
	clock     quartz.Clock
	botDelay  time.Duration

	mu          sync.RWMutex
	connections map[*Connection]bool
	httpServer  *http.Server
	ctx         context.Context
	cancel      context.CancelFunc
}

// Option configures a Server
type Option func(*Server)

// WithEngineFactory sets how session engines are built
func WithEngineFactory(f EngineFactory) Option {
	return func(s *Server) {
		s.newEngine = f
	}
}

// WithClock sets the clock used to pace bot turns
func WithClock(clock quartz.Clock) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

// WithBotDelay sets how long the bot waits before acting in automatic mode
func WithBotDelay(d time.Duration) Option {
	return func(s *Server) {
		s.botDelay = d
	}
}

// NewServer creates a new WebSocket server
func NewServer(addr string, logger *log.Logger, opts ...Option) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			// the tutor is served to a local browser
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:      logger.WithPrefix("server"),
		newEngine:   func(l *log.Logger) *game.Engine { return game.New(l) },
		clock:       quartz.NewReal(),
		botDelay:    1500 * time.Millisecond,
		connections: make(map[*Connection]bool),
		ctx:         ctx,
		cancel:      cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start serves until Stop is called
func (s *Server) Start() error {
	s.mu.Lock()
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	s.logger.Info("Starting WebSocket server", "addr", s.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop closes every connection and shuts the listener down
func (s *Server) Stop(ctx context.Context) error {
	s.cancel()

	s.mu.Lock()
	conns := make([]*Connection, 0, len(s.connections))
	for conn := range s.connections {
		conns = append(conns, conn)
	}
	srv := s.httpServer
	s.mu.Unlock()

	for _, conn := range conns {
		_ = conn.Close()
	}
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// SessionCount returns the number of open sessions
func (s *Server) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections)
}

// handleWebSocket upgrades the request and starts a session on it
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	conn := newConnection(s.ctx, ws, s.logger)
	engine := s.newEngine(s.logger)
	conn.session = newSession(engine, pacer.New(s.clock, s.botDelay, s.logger), s.logger, conn.SendMessage)

	s.mu.Lock()
	s.connections[conn] = true
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("Client connected", "session", conn.session.ID(), "total", total)

	conn.session.Handle(&Request{Type: MessageTypeState})
	conn.Start()

	go func() {
		<-conn.Done()
		s.mu.Lock()
		delete(s.connections, conn)
		total := len(s.connections)
		s.mu.Unlock()
		s.logger.Info("Client disconnected", "session", conn.session.ID(), "total", total)
	}()
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}
