package server

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/footy-tipping/internal/config"
	"github.com/MKhiriev/footy-tipping/internal/handler"
	"github.com/MKhiriev/footy-tipping/internal/logger"
)

type server struct {
	transports []transport
	logger     *logger.Logger

	shutdownOnce sync.Once
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.transports = append(servers.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.transports = append(servers.transports, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(servers.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer blocks until ctx is done or one of the transports stops with an
// error. Either way every transport is shut down before it returns; the
// first transport error, if any, is returned.
func (s *server) RunServer(ctx context.Context) error {
	if len(s.transports) == 0 {
		return errNoServersToRun
	}

	errs := make(chan error, len(s.transports))
	var wg sync.WaitGroup
	for _, t := range s.transports {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := t.run(); err != nil {
				errs <- err
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-errs:
		s.logger.Err(runErr).Str("func", "*server.RunServer").Msg("transport stopped unexpectedly")
	}

	s.Shutdown()
	wg.Wait()

	s.logger.Info().Msg("server shut down gracefully")
	return errors.Join(runErr, drain(errs))
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		for _, t := range s.transports {
			t.shutdown()
		}
	})
}

func drain(errs chan error) error {
	var joined error
	for {
		select {
		case err := <-errs:
			joined = errors.Join(joined, err)
		default:
			return joined
		}
	}
}
