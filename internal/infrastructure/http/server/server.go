package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/fasthttp/router"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Server serves the page document and metrics over fasthttp
type Server struct {
	server *fasthttp.Server
	Router *router.Router
	addr   string
	ln     net.Listener
	logger zerolog.Logger
}

// NewServer creates a server listening on port once started
func NewServer(name, port string, logger zerolog.Logger) *Server {
	s := &Server{
		Router: router.New(),
		addr:   net.JoinHostPort("", port),
		logger: logger,
	}
	s.Router.PanicHandler = s.handlePanic

	s.server = &fasthttp.Server{
		Handler:      s.Router.Handler,
		Name:         name,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// RegisterMetrics exposes the default Prometheus registry on /metrics
func (s *Server) RegisterMetrics() {
	s.Router.GET("/metrics", fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()))
}

// Handler returns the request handler, mainly for tests
func (s *Server) Handler() fasthttp.RequestHandler {
	return s.server.Handler
}

// Addr returns the bound address after Start, the configured one before
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.addr
}

// Start binds the port and serves in a separate goroutine.
// A bind failure is returned so the application does not start half-up.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.ln = ln

	s.logger.Info().
		Str("addr", ln.Addr().String()).
		Msg("Starting HTTP server")

	go func() {
		if err := s.server.Serve(ln); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server error")
		}
	}()

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down HTTP server")

	if err := s.server.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info().Msg("HTTP server stopped gracefully")
	return nil
}

func (s *Server) handlePanic(ctx *fasthttp.RequestCtx, v interface{}) {
	s.logger.Error().
		Interface("panic", v).
		Str("path", string(ctx.Path())).
		Msg("HTTP handler panicked")

	ctx.ResetBody()
	ctx.Error("internal server error", fasthttp.StatusInternalServerError)
}
