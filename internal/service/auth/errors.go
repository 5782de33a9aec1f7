package auth

import "errors"

// Sentinel errors returned by token verification. Callers check these with
// errors.Is; the API layer maps them to HTTP 401 responses.
var (
	// ErrInvalidToken indicates the identity service rejected the token or
	// could not be reached to confirm it.
	ErrInvalidToken = errors.New("invalid or unverifiable token")

	// ErrEmptyToken indicates no bearer token was supplied.
	ErrEmptyToken = errors.New("token cannot be empty")
)
