package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/api"
	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type sessionService interface {
	Register(ctx context.Context, name, email, password string) (*api.AuthResult, error)
	Login(ctx context.Context, email, password string) (*api.AuthResult, error)
	Verify(ctx context.Context) (*services.Session, error)
	Current() *services.Session
	Logout()
	Ping(ctx context.Context) error
	Close() error
}

type App struct {
	config  *config.Config
	session sessionService
	reader  *bufio.Reader
	out     io.Writer

	modeMu sync.RWMutex
	mode   Mode
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewAuthClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  c,
		session: services.NewSessionService(apiClient),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.session.Close()
	a.Root(ctx)
}

func (a *App) Mode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		fmt.Fprintf(a.out, "Switched to %s mode\n", mode)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}

// requestContext bounds a single RPC by the configured timeout.
func (a *App) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

// checkOnline pings the service once and updates the mode.
func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.session.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
