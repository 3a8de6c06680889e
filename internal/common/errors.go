// Package common defines the closed set of sentinel errors shared across the
// service layers. Callers match them with errors.Is; nothing in the codebase
// discriminates errors by message text.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors. ErrInvalidCredentials covers both "no such user"
	// and "wrong password" so account existence never leaks. ErrConflict is
	// deliberately vague about which field collided.
	ErrValidation         = errors.New("all fields are required")
	ErrConflict           = errors.New("username or email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternal           = errors.New("internal error")

	// Token errors. Only ErrNoToken and ErrInvalidToken cross the transport
	// boundary; expired and malformed are collapsed into ErrInvalidToken
	// before a response is written.
	ErrNoToken        = errors.New("no token")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")

	// ErrHashFormat means a stored password hash could not be decoded.
	ErrHashFormat = errors.New("malformed password hash")
)
