package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/common"
)

// getSimpleText and getPassword are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email and password and creates an account.
// On success the returned token becomes the current session.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	res, err := a.session.Register(ctx, name, email, string(password))
	if err != nil {
		return a.report(err)
	}

	a.setMode(ModeOnline)
	fmt.Fprintln(a.out, res.Message)
	fmt.Fprintf(a.out, "Logged in as %s <%s>\n", res.Data.User.Name, res.Data.User.Email)
	return nil
}

// Login prompts for credentials and authenticates.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	res, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		return a.report(err)
	}

	a.setMode(ModeOnline)
	fmt.Fprintln(a.out, res.Message)
	fmt.Fprintf(a.out, "Logged in as %s <%s>\n", res.Data.User.Name, res.Data.User.Email)
	return nil
}

// Verify checks the current token with the service and keeps the refreshed
// one.
func (a *App) Verify(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	cur, err := a.session.Verify(ctx)
	if err != nil {
		return a.report(err)
	}

	fmt.Fprintf(a.out, "Token is valid for %s <%s>, refreshed\n", cur.User.Name, cur.User.Email)
	return nil
}

func (a *App) WhoAmI(context.Context) error {
	cur := a.session.Current()
	if cur == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return services.ErrNotLoggedIn
	}
	fmt.Fprintf(a.out, "id:    %s\nname:  %s\nemail: %s\n", cur.User.ID, cur.User.Name, cur.User.Email)
	return nil
}

func (a *App) Logout(context.Context) error {
	a.session.Logout()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// report prints err for the user and returns it unchanged.
func (a *App) report(err error) error {
	var ae *common.AuthError
	switch {
	case errors.Is(err, client.ErrUnavailable):
		a.setMode(ModeOffline)
		fmt.Fprintln(a.out, "Server unavailable, try again later")
	case errors.Is(err, services.ErrNotLoggedIn):
		fmt.Fprintln(a.out, "Not logged in")
	case errors.As(err, &ae):
		fmt.Fprintf(a.out, "Error: %s\n", ae.Message)
	default:
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
	return err
}
