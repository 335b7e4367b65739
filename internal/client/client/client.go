package client

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/api"
)

// Client is the RPC surface used by the CLI.
type Client interface {
	Register(ctx context.Context, name, email, password string) (*api.AuthResult, error)
	Login(ctx context.Context, email, password string) (*api.AuthResult, error)
	Verify(ctx context.Context, token string) (*api.VerifyResult, error)
	Ping(ctx context.Context) error
	Close() error
}

var _ Client = (*GRPCClient)(nil)
