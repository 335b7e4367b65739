package grpc

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/api"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newInterceptorServer() (*GRPCServer, *recLogger) {
	l := &recLogger{}
	return NewGRPCServer(nil, l, &fakeAuth{}), l
}

var testInfo = &grpc.UnaryServerInfo{FullMethod: api.FullMethodLogin}

func TestRecoveryInterceptor_PanicBecomesInternal(t *testing.T) {
	s, l := newInterceptorServer()

	resp, err := s.recoveryInterceptor(context.Background(), nil, testInfo, func(context.Context, any) (any, error) {
		panic("boom")
	})
	assert.Nil(t, resp)
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Equal(t, "Internal server error", status.Convert(err).Message())

	rec := l.last()
	assert.Equal(t, "error", rec.level)
	assert.Equal(t, "panic in handler", rec.msg)
}

func TestRecoveryInterceptor_PassThrough(t *testing.T) {
	s, l := newInterceptorServer()

	resp, err := s.recoveryInterceptor(context.Background(), "req", testInfo, func(_ context.Context, req any) (any, error) {
		return req, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "req", resp)
	assert.Empty(t, l.records)
}

func TestLoggingInterceptor_Levels(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
		code  string
	}{
		{"ok", nil, "info", "OK"},
		{"caller error", api.ToStatus(common.NewInvalidCredentials()), "warn", "Unauthenticated"},
		{"internal", api.ToStatus(common.NewInternal()), "error", "Internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, l := newInterceptorServer()

			_, err := s.loggingInterceptor(context.Background(), nil, testInfo, func(context.Context, any) (any, error) {
				return "resp", tt.err
			})
			assert.Equal(t, tt.err, err)

			rec := l.last()
			assert.Equal(t, tt.level, rec.level)
			assert.Equal(t, "rpc", rec.msg)
			require.GreaterOrEqual(t, len(rec.args), 4)
			assert.Equal(t, []any{"method", api.FullMethodLogin, "code", tt.code}, rec.args[:4])
		})
	}
}
