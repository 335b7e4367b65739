package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/api"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	health      healthpb.HealthClient
}

// NewAuthClient creates a client for endpointURL. Extra dial options are
// appended after the defaults, so tests can swap the dialer.
func NewAuthClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, dialOpts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

// invoke calls one JSON-coded method. The content subtype is set per call so
// the health client keeps the proto codec.
func (s *GRPCClient) invoke(ctx context.Context, method string, in, out any) error {
	if err := s.conn.Invoke(ctx, method, in, out, grpc.CallContentSubtype(api.CodecName)); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, name, email, password string) (*api.AuthResult, error) {
	req := &api.RegisterRequest{Name: name, Email: email, Password: password}
	res := new(api.AuthResult)
	if err := s.invoke(ctx, api.FullMethodRegister, req, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*api.AuthResult, error) {
	req := &api.LoginRequest{Email: email, Password: password}
	res := new(api.AuthResult)
	if err := s.invoke(ctx, api.FullMethodLogin, req, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *GRPCClient) Verify(ctx context.Context, token string) (*api.VerifyResult, error) {
	req := &api.VerifyRequest{Token: token}
	res := new(api.VerifyResult)
	if err := s.invoke(ctx, api.FullMethodVerify, req, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Ping asks the health service about the auth service.
func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: api.ServiceName})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("%w: %s", ErrNotServing, resp.GetStatus())
	}
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// mapError turns transport trouble into ErrUnavailable and everything else
// into the *common.AuthError the service sent.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	}
	ae, _ := api.FromStatus(err)
	return ae
}
