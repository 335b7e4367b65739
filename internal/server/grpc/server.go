package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/dmitrijs2005/gophauth/internal/api"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type authService interface {
	Register(ctx context.Context, name, email, password string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	VerifyAndRefresh(ctx context.Context, token string) (*services.VerifyResult, error)
}

type GRPCServer struct {
	addresses []string
	auth      authService
	logger    logging.Logger
}

func NewGRPCServer(addresses []string, l logging.Logger, as authService) *GRPCServer {
	return &GRPCServer{
		addresses: addresses,
		logger:    l.With("module", "grpc_server"),
		auth:      as,
	}
}

// newServer builds the gRPC server with interceptors, the auth service
// and the standard health service.
func (s *GRPCServer) newServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.recoveryInterceptor),
	)

	RegisterAuthServiceServer(srv, s)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv, hs
}

// Run listens on every configured address and serves until ctx is done.
// If any address cannot be bound nothing is served.
func (s *GRPCServer) Run(ctx context.Context) error {
	if len(s.addresses) == 0 {
		return errors.New("no bus endpoints configured")
	}

	listeners := make([]net.Listener, 0, len(s.addresses))
	for _, addr := range s.addresses {
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			for _, l := range listeners {
				_ = l.Close()
			}
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		listeners = append(listeners, lis)
	}

	return s.Serve(ctx, listeners...)
}

// Serve serves on the given listeners until ctx is done, then stops
// gracefully. A failing listener stops the others.
func (s *GRPCServer) Serve(ctx context.Context, listeners ...net.Listener) error {
	srv, hs := s.newServer()

	g, gctx := errgroup.WithContext(ctx)

	for _, lis := range listeners {
		s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())
		g.Go(func() error {
			if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				return fmt.Errorf("serve gRPC on %s: %w", lis.Addr(), err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
		return nil
	})

	return g.Wait()
}
