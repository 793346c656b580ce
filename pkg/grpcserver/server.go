package grpcserver

import (
	"context"
	"errors"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// StorefrontService is the name the storefront reports health under.
const StorefrontService = "storefront.v1.Storefront"

type Server struct {
	Server *grpc.Server
	health *health.Server
}

func New(opts ...grpc.ServerOption) *Server {
	s := grpc.NewServer(opts...)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	hs.SetServingStatus(StorefrontService, healthpb.HealthCheckResponse_NOT_SERVING)
	return &Server{
		Server: s,
		health: hs,
	}
}

func (s *Server) SetServing(service string, serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(service, status)
}

// Serve blocks until the server stops. A server stopped before or while
// serving returns nil.
func (s *Server) Serve(lis net.Listener) error {
	if err := s.Server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// Stop marks every service NOT_SERVING and drains in-flight calls. If ctx
// ends first the server is stopped hard.
func (s *Server) Stop(ctx context.Context) error {
	s.health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.Server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-ctx.Done():
		s.Server.Stop()
		<-stopped
		return ctx.Err()
	case <-stopped:
		return nil
	}
}
