package common

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies failures returned to RPC callers.
type ErrorKind string

const (
	KindAlreadyExists      ErrorKind = "AlreadyExists"
	KindInvalidCredentials ErrorKind = "InvalidCredentials"
	KindTokenExpired       ErrorKind = "TokenExpired"
	KindTokenInvalid       ErrorKind = "TokenInvalid"
	KindValidation         ErrorKind = "ValidationFailed"
	KindInternal           ErrorKind = "Internal"
)

// Caller-facing messages. Credential failures share one message so that
// "no such user" and "wrong password" cannot be told apart.
const (
	MsgUserAlreadyExists  = "User already exists"
	MsgInvalidCredentials = "Invalid credentials"
	MsgTokenExpired       = "Token expired"
	MsgTokenInvalid       = "Invalid token"
	MsgInternal           = "Internal server error"
)

// AuthError is the structured failure delivered over the RPC channel.
// Code mirrors an HTTP status so callers can map it to their own surface.
type AuthError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Status returns the textual HTTP status for Code, e.g. "Bad Request".
func (e *AuthError) Status() string {
	return http.StatusText(e.Code)
}

// Is reports whether target is an *AuthError of the same kind.
func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func NewAlreadyExists() *AuthError {
	return &AuthError{Kind: KindAlreadyExists, Message: MsgUserAlreadyExists, Code: http.StatusBadRequest}
}

func NewInvalidCredentials() *AuthError {
	return &AuthError{Kind: KindInvalidCredentials, Message: MsgInvalidCredentials, Code: http.StatusBadRequest}
}

func NewTokenExpired() *AuthError {
	return &AuthError{Kind: KindTokenExpired, Message: MsgTokenExpired, Code: http.StatusUnauthorized}
}

func NewTokenInvalid() *AuthError {
	return &AuthError{Kind: KindTokenInvalid, Message: MsgTokenInvalid, Code: http.StatusUnauthorized}
}

func NewValidation(message string) *AuthError {
	return &AuthError{Kind: KindValidation, Message: message, Code: http.StatusBadRequest}
}

func NewInternal() *AuthError {
	return &AuthError{Kind: KindInternal, Message: MsgInternal, Code: http.StatusInternalServerError}
}
