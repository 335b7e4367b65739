package grpc

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/api"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"google.golang.org/grpc"
)

// AuthServiceServer is the RPC surface. Method names follow the message
// patterns the service answers to.
type AuthServiceServer interface {
	RegisterUserAuth(context.Context, *api.RegisterRequest) (*api.AuthResult, error)
	LoginUserAuth(context.Context, *api.LoginRequest) (*api.AuthResult, error)
	VerifyUserAuth(context.Context, *api.VerifyRequest) (*api.VerifyResult, error)
}

var authServiceDesc = grpc.ServiceDesc{
	ServiceName: api.ServiceName,
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: api.PatternRegister, Handler: registerHandler},
		{MethodName: api.PatternLogin, Handler: loginHandler},
		{MethodName: api.PatternVerify, Handler: verifyHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gophauth/auth",
}

func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&authServiceDesc, srv)
}

// malformed payloads are a caller error, not a transport one
func decodeRequest(dec func(any) error, in any) error {
	if err := dec(in); err != nil {
		return api.ToStatus(common.NewValidation("malformed request payload"))
	}
	return nil
}

func registerHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(api.RegisterRequest)
	if err := decodeRequest(dec, in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServiceServer).RegisterUserAuth(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: api.FullMethodRegister}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServiceServer).RegisterUserAuth(ctx, req.(*api.RegisterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func loginHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(api.LoginRequest)
	if err := decodeRequest(dec, in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServiceServer).LoginUserAuth(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: api.FullMethodLogin}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServiceServer).LoginUserAuth(ctx, req.(*api.LoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func verifyHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(api.VerifyRequest)
	if err := decodeRequest(dec, in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServiceServer).VerifyUserAuth(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: api.FullMethodVerify}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServiceServer).VerifyUserAuth(ctx, req.(*api.VerifyRequest))
	}
	return interceptor(ctx, in, info, handler)
}
