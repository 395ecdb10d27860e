// Package ident generates the opaque string identifiers used as primary
// keys across all relations.
package ident

import "github.com/google/uuid"

// New returns a new unique identifier. The value is a random UUID
// rendered as a string; callers treat it as opaque.
func New() string {
	return uuid.NewString()
}
