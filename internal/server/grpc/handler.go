package grpc

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/api"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
)

func (s *GRPCServer) RegisterUserAuth(ctx context.Context, req *api.RegisterRequest) (*api.AuthResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, api.ToStatus(err)
	}

	result, err := s.auth.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return nil, api.ToStatus(err)
	}

	return toAuthResult(result), nil
}

func (s *GRPCServer) LoginUserAuth(ctx context.Context, req *api.LoginRequest) (*api.AuthResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, api.ToStatus(err)
	}

	result, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, api.ToStatus(err)
	}

	return toAuthResult(result), nil
}

func (s *GRPCServer) VerifyUserAuth(ctx context.Context, req *api.VerifyRequest) (*api.VerifyResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, api.ToStatus(err)
	}

	result, err := s.auth.VerifyAndRefresh(ctx, req.Token)
	if err != nil {
		return nil, api.ToStatus(err)
	}

	return &api.VerifyResult{User: toPublicUser(result.User), Token: result.Token}, nil
}

func toAuthResult(r *services.AuthResult) *api.AuthResult {
	return &api.AuthResult{
		OK:      r.OK,
		Message: r.Message,
		Data:    api.AuthData{User: toPublicUser(r.Data.User), Token: r.Data.Token},
	}
}

func toPublicUser(u services.PublicUser) api.PublicUser {
	return api.PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
