// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Classified store failures. Anything else a store returns is an
// unclassified storage error wrapped with context.
var (
	// ErrDuplicateEmail indicates the email is already registered to another user.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrUserNotFound indicates no user row matched the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrWrongPassword indicates the supplied password digest did not match the stored one.
	ErrWrongPassword = errors.New("wrong password")

	// ErrDeckNotFound indicates no deck row matched the lookup.
	ErrDeckNotFound = errors.New("deck not found")

	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("not found")
)
