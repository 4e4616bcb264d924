package utils

import "errors"

// Token verification failure kinds returned by [ValidateAndParseJWTToken].
// The HTTP layer collapses all of them into a single 401 response.
var (
	// ErrTokenMalformed: the string is not a well-formed JWS.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrTokenSignatureInvalid: wrong key or a non-HMAC signing method.
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	// ErrTokenExpired: the exp claim is in the past.
	ErrTokenExpired = errors.New("token is expired")
	// ErrTokenClaimsInvalid: the payload does not carry a numeric sub and a
	// string email, or a time/issuer claim does not hold.
	ErrTokenClaimsInvalid = errors.New("token claims are invalid")
)

var (
	errEmptySignKey               = errors.New("token sign key is empty")
	errInvalidAuthorizationHeader = errors.New("invalid authorization header")
)
