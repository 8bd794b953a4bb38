// Package utils provides general-purpose helpers shared across the service:
// typed context keys, identifier pseudonymization, JSON response writing,
// session token signing, trace id generation and the outbound HTTP client.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// PseudonymCtxKey is the key under which the session middleware stores the
// pseudonymous id of the current user.
//
//	ctx := context.WithValue(ctx, utils.PseudonymCtxKey, "3f2a9c1b0d4e")
var PseudonymCtxKey = contextKey("pseudonymousID")

// GetPseudonymFromContext returns the pseudonymous id bound to the current
// session. ok is false when no session is bound or the value is empty.
func GetPseudonymFromContext(ctx context.Context) (string, bool) {
	pseudonym, ok := ctx.Value(PseudonymCtxKey).(string)
	if !ok || pseudonym == "" {
		return "", false
	}
	return pseudonym, true
}

// WithPseudonym returns a copy of ctx carrying pseudonym as the current user.
func WithPseudonym(ctx context.Context, pseudonym string) context.Context {
	return context.WithValue(ctx, PseudonymCtxKey, pseudonym)
}
