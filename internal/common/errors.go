// Package common defines shared sentinel errors and the typed AuthError used
// across the server, the RPC layer and the client. Callers should use
// errors.Is for sentinels and errors.As for *AuthError.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("conflict")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
