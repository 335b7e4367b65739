package grpc

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
)

type logRecord struct {
	level string
	msg   string
	args  []any
}

type recLogger struct {
	mu      sync.Mutex
	records []logRecord
}

func (l *recLogger) add(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, logRecord{level: level, msg: msg, args: args})
}

func (l *recLogger) Debug(_ context.Context, msg string, args ...any) { l.add("debug", msg, args) }
func (l *recLogger) Info(_ context.Context, msg string, args ...any)  { l.add("info", msg, args) }
func (l *recLogger) Warn(_ context.Context, msg string, args ...any)  { l.add("warn", msg, args) }
func (l *recLogger) Error(_ context.Context, msg string, args ...any) { l.add("error", msg, args) }
func (l *recLogger) With(...any) logging.Logger                      { return l }

func (l *recLogger) last() logRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.records) == 0 {
		return logRecord{}
	}
	return l.records[len(l.records)-1]
}

type fakeAuth struct {
	regOut *services.AuthResult
	regErr error

	loginOut *services.AuthResult
	loginErr error

	verifyOut *services.VerifyResult
	verifyErr error

	panicWith any

	gotName, gotEmail, gotPassword, gotToken string
}

func (f *fakeAuth) Register(_ context.Context, name, email, password string) (*services.AuthResult, error) {
	if f.panicWith != nil {
		panic(f.panicWith)
	}
	f.gotName, f.gotEmail, f.gotPassword = name, email, password
	return f.regOut, f.regErr
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*services.AuthResult, error) {
	f.gotEmail, f.gotPassword = email, password
	return f.loginOut, f.loginErr
}

func (f *fakeAuth) VerifyAndRefresh(_ context.Context, token string) (*services.VerifyResult, error) {
	f.gotToken = token
	return f.verifyOut, f.verifyErr
}
