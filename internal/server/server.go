package server

import (
	"context"
	"net"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/MKhiriev/go-media-keeper/internal/config"
	"github.com/MKhiriev/go-media-keeper/internal/handler"
	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/MKhiriev/go-media-keeper/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers

	started atomic.Bool
	// ready is closed once the listener is bound; addr is set before that.
	ready chan struct{}
	addr  net.Addr

	logger *logger.Logger
}

// NewServer prepares the HTTP server. A nil workers set runs no background
// jobs.
func NewServer(handlers *handler.Handlers, w *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}
	if w == nil {
		w = workers.NewWorkers()
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    w,
		ready:      make(chan struct{}),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return errServerAlreadyRun
	}

	listener, err := s.httpServer.listen()
	if err != nil {
		return err
	}
	s.addr = listener.Addr()
	close(s.ready)

	workersCtx, stopWorkers := context.WithCancel(ctx)
	defer func() {
		stopWorkers()
		s.workers.Wait()
		s.logger.Info().Msg("server shut down gracefully")
	}()

	s.logger.Info().Int("workers", s.workers.Len()).Msg("starting background workers")
	s.workers.Run(workersCtx)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(listener)
	}()

	select {
	case err := <-serveErr:
		s.logger.Err(err).Msg("HTTP server stopped unexpectedly")
		return err
	case <-ctx.Done():
		s.logger.Info().Msg("stop requested, shutting down")
	}

	s.httpServer.shutdown()
	return <-serveErr
}
