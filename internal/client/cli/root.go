package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	if cur := a.session.Current(); cur != nil {
		s = cur.User.Email + " "
	}
	if m := a.Mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root runs the REPL until the user leaves or ctx is done.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to gophauth CLI (type 'help' for commands)")

	a.checkOnline(ctx)
	if a.config != nil && a.config.OnlineCheckInterval > 0 {
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
