// Package server runs the HTTP server that serves rendered menus.
package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/mchmarny/navmenu/pkg/metric"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = 9876

	// DefaultReadTimeout bounds reading a whole request, headers and body.
	// Zero or negative disables the limit. A finite value keeps slow clients
	// (slowloris) from holding connections open indefinitely.
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout bounds writing a response. Rendering a menu is
	// cheap, but the value must still cover the whole handler execution,
	// so it should not be lower than DefaultReadTimeout.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is how long a keep-alive connection may wait for its
	// next request. When zero, net/http falls back to the read timeout.
	DefaultIdleTimeout = 60 * time.Second

	// DefaultShutdownTimeout is the grace period in-flight requests get once
	// the context is canceled. Keep it below the orchestrator's kill delay
	// (Kubernetes terminationGracePeriodSeconds) so shutdown completes before
	// SIGKILL arrives.
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultMaxHeaderBytes caps the bytes read while parsing the request
	// line and headers. 1 MB is generous for browsers and still bounds
	// header based memory exhaustion.
	DefaultMaxHeaderBytes = 1 << 20 // 1 MB

	// HealthPath is where WithSimpleHealth registers its handler.
	HealthPath = "/healthz"

	// MetricsPath is where WithMetrics exposes the server registry.
	MetricsPath = "/metrics"
)

// Server defines the HTTP server that serves rendered menus together with
// its health and metrics endpoints. Implementations must shut down
// gracefully when the context passed to Serve is canceled.
type Server interface {
	// Serve starts the HTTP server and blocks until the context is canceled.
	// It returns an error if the listener cannot be created or the server
	// fails while running. Returns nil on a clean graceful shutdown.
	Serve(ctx context.Context) error

	// AddHandler registers handler for pattern on the server mux.
	// This method is thread-safe and can be called before or after Serve.
	AddHandler(pattern string, handler http.Handler)

	// Handler returns the request multiplexer, so handlers can be exercised
	// without binding a socket (for example with httptest).
	Handler() http.Handler

	// Registry returns the prometheus registry owned by this server.
	// Collectors registered here are exposed by WithMetrics.
	Registry() *prometheus.Registry

	// IsRunning returns true if the server is currently accepting connections.
	// This method is thread-safe and can be called concurrently.
	// Returns true only after the socket has been successfully bound.
	IsRunning() bool
}

// server is the internal implementation of the Server interface.
// It wraps the standard library http.Server with lifecycle management
// and a per-instance metrics registry.
type server struct {
	mux             *http.ServeMux       // HTTP request multiplexer
	port            int                  // Port to listen on
	readTimeout     time.Duration        // Maximum duration for reading requests
	writeTimeout    time.Duration        // Maximum duration for writing responses
	idleTimeout     time.Duration        // Maximum idle time for keep-alive connections
	shutdownTimeout time.Duration        // Grace period for shutdown
	maxHeaderBytes  int                  // Maximum header size in bytes
	errLog          *log.Logger          // Logger for net/http connection errors
	tlsConfig       *TLSConfig           // Optional TLS configuration
	mu              sync.RWMutex         // Protects running state and mux registration
	running         bool                 // Indicates if server is currently running
	registry        *prometheus.Registry // Registry exposed by WithMetrics
}

// TLSConfig contains the certificate and key file paths used for HTTPS.
type TLSConfig struct {
	CertFile string // Path to the PEM encoded certificate
	KeyFile  string // Path to the PEM encoded private key
}

// Option is a functional option for configuring the Server.
// New options can be added without breaking existing callers.
type Option func(*server)

// WithPort sets the port number for the HTTP server.
// If not specified, DefaultPort (9876) is used. Port 0 picks a free port.
func WithPort(port int) Option {
	return func(s *server) { s.port = port }
}

// WithReadTimeout sets the maximum duration for reading the entire request,
// headers and body included.
// If not specified, DefaultReadTimeout (10s) is used.
func WithReadTimeout(d time.Duration) Option {
	return func(s *server) { s.readTimeout = d }
}

// WithWriteTimeout sets the maximum duration before writes of the response
// time out. Keep it at or above the read timeout.
// If not specified, DefaultWriteTimeout (10s) is used.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *server) { s.writeTimeout = d }
}

// WithIdleTimeout sets how long a keep-alive connection waits for the next
// request. If not specified, DefaultIdleTimeout (60s) is used.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *server) { s.idleTimeout = d }
}

// WithShutdownTimeout sets the grace period for in-flight requests during
// shutdown. Keep it below Kubernetes terminationGracePeriodSeconds so the
// pod finishes before SIGKILL. If not specified, DefaultShutdownTimeout (5s)
// is used.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *server) { s.shutdownTimeout = d }
}

// WithMaxHeaderBytes sets the maximum number of bytes read from request
// headers. If not specified, DefaultMaxHeaderBytes (1 MB) is used.
func WithMaxHeaderBytes(n int) Option {
	return func(s *server) { s.maxHeaderBytes = n }
}

// WithErrorLog sets the logger net/http uses for connection level errors
// such as TLS handshake failures. If not specified, log.Default() is used.
func WithErrorLog(l *log.Logger) Option {
	return func(s *server) { s.errLog = l }
}

// WithHandler registers a custom HTTP handler for the specified pattern.
// Multiple handlers can be registered by passing this option multiple times.
//
// Example:
//
//	srv := server.New(server.WithHandler("/", menu.Handler(build)))
func WithHandler(pattern string, handler http.Handler) Option {
	return func(s *server) {
		s.mux.Handle(pattern, handler)
	}
}

// WithSimpleHealth adds a liveness endpoint at HealthPath that always
// returns 200 OK. Menus are built in memory, so there is no dependency
// worth checking.
//
// The endpoint returns:
//   - 200 OK with body "ok"
func WithSimpleHealth() Option {
	return func(s *server) {
		s.mux.HandleFunc(HealthPath, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
	}
}

// WithMetrics exposes the server registry at MetricsPath in the prometheus
// text format. Only collectors registered with Registry() are included, not
// the global default registry.
func WithMetrics() Option {
	return func(s *server) {
		s.mux.Handle(MetricsPath, metric.HandlerFor(s.registry))
	}
}

// WithTLS serves HTTPS using the given certificate and key.
//
//	srv := server.New(
//	    server.WithPort(8443),
//	    server.WithTLS(server.TLSConfig{CertFile: "cert.pem", KeyFile: "key.pem"}),
//	)
func WithTLS(cfg TLSConfig) Option {
	return func(s *server) {
		s.tlsConfig = &cfg
	}
}

// New creates a new HTTP server with the provided options.
// Each instance owns its own prometheus registry, so several servers (in
// tests for example) never collide on metric names.
//
// Default configuration:
//   - Port: 9876
//   - ReadTimeout: 10s
//   - WriteTimeout: 10s
//   - IdleTimeout: 60s
//   - ShutdownTimeout: 5s
//   - MaxHeaderBytes: 1 MB
//
// Example:
//
//	srv := server.New(
//	    server.WithPort(9876),
//	    server.WithMetrics(),
//	    server.WithSimpleHealth(),
//	)
func New(opts ...Option) Server {
	s := &server{
		port:            DefaultPort,
		readTimeout:     DefaultReadTimeout,
		writeTimeout:    DefaultWriteTimeout,
		idleTimeout:     DefaultIdleTimeout,
		shutdownTimeout: DefaultShutdownTimeout,
		maxHeaderBytes:  DefaultMaxHeaderBytes,
		mux:             http.NewServeMux(),
		registry:        prometheus.NewRegistry(),
		errLog:          log.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	slog.Info("server initialized",
		"port", s.port,
		"read_timeout", s.readTimeout,
		"write_timeout", s.writeTimeout,
		"tls", s.tlsConfig != nil)

	return s
}

// AddHandler registers an HTTP handler for the specified pattern.
// This method is thread-safe and can be called concurrently from multiple goroutines.
func (s *server) AddHandler(pattern string, handler http.Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mux.Handle(pattern, handler)
}

// Handler returns the underlying mux.
func (s *server) Handler() http.Handler {
	return s.mux
}

// Registry returns the registry created by New.
func (s *server) Registry() *prometheus.Registry {
	return s.registry
}

// IsRunning returns true if the server is currently running and accepting
// connections. It returns false before the socket is bound and after the
// server has stopped.
//
// Example:
//
//	go srv.Serve(ctx)
//	for !srv.IsRunning() {
//	    time.Sleep(10 * time.Millisecond)
//	}
func (s *server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.running
}

func (s *server) setRunning(v bool) {
	s.mu.Lock()
	s.running = v
	s.mu.Unlock()
}

// listen creates the listener first, so the server is only reported as
// running once the socket is bound. With TLS configured the listener is
// wrapped after the certificate loads; TLS 1.2 is the minimum version.
func (s *server) listen(addr string) (net.Listener, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to create listener: %w", err)
	}

	if s.tlsConfig == nil {
		slog.Info("starting server", "addr", addr)
		return listener, nil
	}

	cert, err := tls.LoadX509KeyPair(s.tlsConfig.CertFile, s.tlsConfig.KeyFile)
	if err != nil {
		listener.Close()
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}

	slog.Info("starting TLS server", "addr", addr)

	return tls.NewListener(listener, &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}), nil
}

// Serve starts the HTTP server and blocks until the context is canceled or
// an error occurs.
//
// Two goroutines run under an errgroup:
//  1. Server goroutine: serves on the pre-bound listener
//  2. Shutdown goroutine: waits for cancellation and calls Shutdown
//
// When the context is canceled (e.g., SIGTERM), the shutdown goroutine:
//   - Calls Shutdown() bounded by the shutdown timeout
//   - Lets in-flight requests complete within that grace period
//   - Logs the shutdown progress and duration
//
// This method returns:
//   - nil on a clean graceful shutdown
//   - An error if the listener cannot be created or the server fails
//
// http.ErrServerClosed is expected during shutdown and is not reported.
//
// Example running the server next to another service:
//
//	g, gCtx := errgroup.WithContext(ctx)
//	g.Go(func() error { return srv.Serve(gCtx) })
//	g.Go(func() error { return worker.Run(gCtx) })
//	if err := g.Wait(); err != nil {
//	    log.Fatal(err)
//	}
func (s *server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", s.port),
		Handler:        s.mux,
		ReadTimeout:    s.readTimeout,
		WriteTimeout:   s.writeTimeout,
		IdleTimeout:    s.idleTimeout,
		MaxHeaderBytes: s.maxHeaderBytes,
		ErrorLog:       s.errLog,
	}

	listener, err := s.listen(srv.Addr)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.setRunning(true)
		defer s.setRunning(false)

		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		slog.Info("shutting down server", "grace_period", s.shutdownTimeout)

		start := time.Now()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}

		slog.Info("server shutdown complete", "duration", time.Since(start))

		return nil
	})

	return g.Wait()
}
