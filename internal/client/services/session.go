// Package services holds the CLI's application services.
package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/api"
	"github.com/dmitrijs2005/gophauth/internal/client/client"
)

var ErrNotLoggedIn = errors.New("not logged in")

// Session is the identity the CLI currently holds.
type Session struct {
	User  api.PublicUser
	Token string
}

// SessionService wraps a client.Client and remembers the last token the
// service handed out. Register and Login replace it, Verify swaps it for the
// refreshed one, Logout forgets it. Safe for concurrent use.
type SessionService struct {
	client client.Client

	mu      sync.RWMutex
	current *Session
}

func NewSessionService(c client.Client) *SessionService {
	return &SessionService{client: c}
}

func (s *SessionService) Register(ctx context.Context, name, email, password string) (*api.AuthResult, error) {
	res, err := s.client.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	s.set(res.Data.User, res.Data.Token)
	return res, nil
}

func (s *SessionService) Login(ctx context.Context, email, password string) (*api.AuthResult, error) {
	res, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.set(res.Data.User, res.Data.Token)
	return res, nil
}

// Verify checks the held token. On success the refreshed token replaces it;
// a token the service rejects is dropped. Unavailability keeps the session.
func (s *SessionService) Verify(ctx context.Context) (*Session, error) {
	cur := s.Current()
	if cur == nil {
		return nil, ErrNotLoggedIn
	}

	res, err := s.client.Verify(ctx, cur.Token)
	if err != nil {
		if !errors.Is(err, client.ErrUnavailable) {
			s.Logout()
		}
		return nil, err
	}

	s.set(res.User, res.Token)
	return s.Current(), nil
}

// Current returns a copy of the session, or nil when logged out.
func (s *SessionService) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

func (s *SessionService) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

func (s *SessionService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *SessionService) Close() error {
	return s.client.Close()
}

func (s *SessionService) set(u api.PublicUser, token string) {
	s.mu.Lock()
	s.current = &Session{User: u, Token: token}
	s.mu.Unlock()
}
