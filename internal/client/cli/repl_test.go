package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error {
	f.calls = append(f.calls, "register")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Verify(context.Context) error { f.calls = append(f.calls, "verify"); return nil }
func (f *fakeExec) WhoAmI(context.Context) error { f.calls = append(f.calls, "whoami"); return nil }
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

// capturePrint records printlnFn output for the duration of the test.
func capturePrint(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			parts = append(parts, v.(string))
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := capturePrint(t)

	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"",
		"verify",
		"whoami",
		"logout",
		"register",
		"foobar",
		"exit",
		"login",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{"login", "verify", "whoami", "logout", "register"}, exec.calls)
	assert.Contains(t, *out, "Available commands: register, login, exit")
	assert.Contains(t, *out, "Available commands: verify, whoami, logout, register, login, exit")
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "Bye!")
	assert.Contains(t, *out, "gophauth status> ")
}

func TestRunREPL_QuitAndEOF(t *testing.T) {
	capturePrint(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("quit\nlogin\n")))
	assert.Empty(t, exec.calls)

	exec = &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("login")))
	assert.Equal(t, []string{"login"}, exec.calls)

	exec = &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("")))
	assert.Empty(t, exec.calls)
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	capturePrint(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("login\n")))
	assert.Empty(t, exec.calls)
}
