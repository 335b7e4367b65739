// Package users is the credential store gateway: it looks up and creates
// user records by email. Every backend enforces email uniqueness itself and
// reports a rejected write as common.ErrorConflict.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

type Repository interface {
	// FindByEmail returns the record stored under email, or (nil, nil) when
	// there is none. Emails are compared byte for byte.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// Create persists user and returns it with ID and CreatedAt filled in.
	// A duplicate email yields common.ErrorConflict.
	Create(ctx context.Context, user *models.User) (*models.User, error)
}
