// Package services contains server-side business logic. AuthService runs
// the three credential pipelines exposed over RPC: registration, login and
// token verification with refresh.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/cryptox"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
)

const (
	MsgUserCreated = "User created!"
	MsgUserAuthOK  = "User auth successfully!"
)

// PublicUser is the outward view of a user record.
type PublicUser struct {
	ID    string
	Name  string
	Email string
}

type AuthData struct {
	User  PublicUser
	Token string
}

type AuthResult struct {
	OK      bool
	Message string
	Data    AuthData
}

type VerifyResult struct {
	User  PublicUser
	Token string
}

// AuthService is safe for concurrent use; it holds no per-request state.
type AuthService struct {
	users     users.Repository
	hasher    cryptox.PasswordHasher
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    logging.Logger
}

func NewAuthService(repo users.Repository, hasher cryptox.PasswordHasher, cfg *config.Config, logger logging.Logger) *AuthService {
	return &AuthService{
		users:     repo,
		hasher:    hasher,
		jwtSecret: []byte(cfg.SecretKey),
		tokenTTL:  cfg.TokenTTL,
		logger:    logger.With("module", "auth_service"),
	}
}

// Register creates a user and signs a token for it. A taken email yields
// an AlreadyExists error, including when a concurrent registration wins
// the race between lookup and insert.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, s.translateError(ctx, "register", err)
	}
	if existing != nil {
		return nil, common.NewAlreadyExists()
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, s.translateError(ctx, "register", err)
	}

	created, err := s.users.Create(ctx, &models.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.NewAlreadyExists()
		}
		return nil, s.translateError(ctx, "register", err)
	}

	user := publicUser(created)
	token, err := s.signToken(user)
	if err != nil {
		return nil, s.translateError(ctx, "register", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return &AuthResult{OK: true, Message: MsgUserCreated, Data: AuthData{User: user, Token: token}}, nil
}

// Login checks credentials. Unknown email and wrong password produce the
// same InvalidCredentials error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	found, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, s.translateError(ctx, "login", err)
	}
	if found == nil {
		return nil, common.NewInvalidCredentials()
	}
	if !s.hasher.Verify(password, found.PasswordHash) {
		return nil, common.NewInvalidCredentials()
	}

	user := publicUser(found)
	token, err := s.signToken(user)
	if err != nil {
		return nil, s.translateError(ctx, "login", err)
	}

	return &AuthResult{OK: true, Message: MsgUserAuthOK, Data: AuthData{User: user, Token: token}}, nil
}

// VerifyAndRefresh validates token and, on success, re-signs its identity
// with a full TTL. Every successful check refreshes.
func (s *AuthService) VerifyAndRefresh(ctx context.Context, token string) (*VerifyResult, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, s.translateError(ctx, "verify", err)
	}

	user := PublicUser{ID: claims.UserID, Name: claims.Name, Email: claims.Email}
	fresh, err := s.signToken(user)
	if err != nil {
		return nil, s.translateError(ctx, "verify", err)
	}

	return &VerifyResult{User: user, Token: fresh}, nil
}

func (s *AuthService) signToken(u PublicUser) (string, error) {
	return auth.GenerateToken(auth.TokenClaims{UserID: u.ID, Email: u.Email, Name: u.Name}, s.jwtSecret, s.tokenTTL)
}

func publicUser(u *models.User) PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
