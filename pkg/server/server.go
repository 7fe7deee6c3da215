package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	httpAdapter "github.com/aretw0/workshop/internal/adapters/http"
	"github.com/aretw0/workshop/internal/config"
	"github.com/aretw0/workshop/internal/logging"
)

var (
	// ErrAlreadyStarted is returned by Listen when the server has left StateStarting.
	ErrAlreadyStarted = errors.New("server already started")

	// ErrNotListening is returned by Serve before a successful Listen.
	ErrNotListening = errors.New("server is not listening")
)

// Server runs the workshop app on a single TCP listener.
type Server struct {
	cfg            config.Server
	handler        http.Handler
	metricsHandler http.Handler
	logger         *slog.Logger

	state atomic.Int32

	mu        sync.Mutex
	ln        net.Listener
	metricsLn net.Listener
}

// Option configures a Server.
type Option func(*Server)

// WithHandler replaces the default workshop handler.
func WithHandler(h http.Handler) Option {
	return func(s *Server) {
		s.handler = h
	}
}

// WithMetricsHandler sets the handler served on cfg.MetricsAddr.
// It is ignored when MetricsAddr is empty.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metricsHandler = h
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a Server in StateStarting. Nothing is bound until Listen.
func New(cfg config.Server, opts ...Option) *Server {
	s := &Server{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	if s.handler == nil {
		s.handler = httpAdapter.NewHandler(httpAdapter.WithLogger(s.logger))
	}
	return s
}

// State returns the current lifecycle state.
func (s *Server) State() State {
	return State(s.state.Load())
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// MetricsAddr returns the bound metrics address, or nil when metrics are disabled.
func (s *Server) MetricsAddr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.metricsLn == nil {
		return nil
	}
	return s.metricsLn.Addr()
}

// URL returns the address clients should use, e.g. http://localhost:3000.
// Wildcard hosts are reported as localhost.
func (s *Server) URL() string {
	host := s.cfg.Host
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}

	port := strconv.Itoa(s.cfg.Port)
	if addr, ok := s.Addr().(*net.TCPAddr); ok {
		port = strconv.Itoa(addr.Port)
	}
	return "http://" + net.JoinHostPort(host, port)
}

// Listen binds the application listener (and the metrics listener, if configured)
// and moves the server to StateListening.
func (s *Server) Listen() error {
	// Held across check, bind and store so concurrent callers cannot both bind.
	s.mu.Lock()
	if s.State() != StateStarting {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	if err := s.cfg.Validate(); err != nil {
		s.mu.Unlock()
		return err
	}

	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr(), err)
	}

	var metricsLn net.Listener
	if s.cfg.MetricsAddr != "" && s.metricsHandler != nil {
		metricsLn, err = net.Listen("tcp", s.cfg.MetricsAddr)
		if err != nil {
			ln.Close()
			s.mu.Unlock()
			return fmt.Errorf("failed to listen on metrics address %s: %w", s.cfg.MetricsAddr, err)
		}
	}

	s.ln = ln
	s.metricsLn = metricsLn
	s.state.Store(int32(StateListening))
	s.mu.Unlock()

	url := s.URL()
	s.logger.Info("Sample app listening at "+url, "url", url)
	if metricsLn != nil {
		s.logger.Info("Metrics available", "addr", metricsLn.Addr().String())
	}
	return nil
}

// Serve handles requests until ctx is cancelled, then shuts down gracefully
// within the configured timeout and moves to StateStopped.
func (s *Server) Serve(ctx context.Context) error {
	if s.State() != StateListening {
		return ErrNotListening
	}

	s.mu.Lock()
	ln, metricsLn := s.ln, s.metricsLn
	s.mu.Unlock()

	servers := []*http.Server{{Handler: s.handler}}
	listeners := []net.Listener{ln}
	if metricsLn != nil {
		servers = append(servers, &http.Server{Handler: s.metricsHandler})
		listeners = append(listeners, metricsLn)
	}

	// Channel to listen for errors coming from the listeners.
	serverErrors := make(chan error, len(servers))
	for i := range servers {
		srv, l := servers[i], listeners[i]
		go func() {
			serverErrors <- srv.Serve(l)
		}()
	}

	var serveErr error
	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			serveErr = err
			s.logger.Error("Server error", "error", err)
		}
	case <-ctx.Done():
		s.logger.Info("Start shutdown...", "reason", context.Cause(ctx))
	}

	s.shutdown(servers)
	s.state.Store(int32(StateStopped))
	s.logger.Info("Sample app stopped")
	return serveErr
}

// Run is Listen followed by Serve.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}

func (s *Server) shutdown(servers []*http.Server) {
	// Give outstanding requests a deadline for completion.
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			s.logger.Warn("Graceful shutdown did not complete", "timeout", s.cfg.ShutdownTimeout, "error", err)
			if err := srv.Close(); err != nil {
				s.logger.Error("Error killing server", "error", err)
			}
		}
	}
}
