package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/handler"
	"github.com/MKhiriev/go-contacts/internal/logger"
)

type server struct {
	httpServer Server
	gRPCServer Server
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT arrives and every
// server has shut down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Str("func", "*server.RunServer").Msg("error running server")
	}
}

func (s *server) Shutdown() {
	for _, srv := range s.started() {
		srv.Shutdown()
	}
}

func (s *server) started() []Server {
	var servers []Server
	if s.httpServer != nil {
		servers = append(servers, s.httpServer)
	}
	if s.gRPCServer != nil {
		servers = append(servers, s.gRPCServer)
	}
	return servers
}

// run serves until ctx is done, then shuts every server down and waits for
// their RunServer calls to return.
func (s *server) run(ctx context.Context) error {
	servers := s.started()
	if len(servers) == 0 {
		return errNoServersToRun
	}

	var wg sync.WaitGroup
	for _, srv := range servers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			srv.RunServer()
		}()
	}
	s.logger.Info().
		Bool("http", s.httpServer != nil).
		Bool("grpc", s.gRPCServer != nil).
		Msg("servers launched")

	<-ctx.Done()
	s.Shutdown()
	wg.Wait()

	s.logger.Info().Msg("servers shut down gracefully")
	return nil
}
