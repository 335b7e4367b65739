package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

// translateError maps any pipeline failure onto the caller-facing taxonomy.
// Typed errors pass through; token failures keep their kind; everything
// else is logged here and surfaces as a generic Internal error so that no
// store or library text reaches the caller.
func (s *AuthService) translateError(ctx context.Context, op string, err error) error {
	var authErr *common.AuthError
	switch {
	case errors.As(err, &authErr):
		return authErr
	case errors.Is(err, common.ErrTokenExpired):
		return common.NewTokenExpired()
	case errors.Is(err, common.ErrInvalidToken):
		return common.NewTokenInvalid()
	}

	s.logger.Error(ctx, "unexpected error", "op", op, "error", err)
	return common.NewInternal()
}
