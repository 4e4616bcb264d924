package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload issued on register and login.
//
// UserID is serialized as the numeric "sub" claim and shadows the
// string Subject of the embedded [jwt.RegisteredClaims].
type Claims struct {
	UserID int64  `json:"sub"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Token is a signed access token together with the claims it carries.
type Token struct {
	// SignedString is the compact JWS representation
	// (base64url-encoded header.payload.signature).
	SignedString string

	Claims Claims
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	UserID int64
	Email  string
}
