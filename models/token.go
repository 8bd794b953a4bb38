package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a session JWT.
//
// PseudonymousID is a cached copy of the "sub" claim. SignedString holds
// the compact serialized form sent to clients.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	PseudonymousID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
