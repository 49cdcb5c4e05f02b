package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenKind distinguishes the two bearer credentials issued by the token
// mint. The kind claim is mandatory: an access token is accepted only by
// protected resource operations, a refresh token only by the refresh
// operation.
type TokenKind string

const (
	// TokenKindAccess is the short-lived credential authorizing protected
	// API calls. Expires one hour after issuance.
	TokenKindAccess TokenKind = "access"

	// TokenKindRefresh is the long-lived credential whose only power is to
	// mint a new access token. Expires thirty days after issuance.
	TokenKindRefresh TokenKind = "refresh"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.),
// extended with the kind claim that separates access from refresh tokens.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID is a cached copy of the "sub" (subject) claim: the lowercase UUID of
// the user the token was issued for.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// Kind is the intended-use claim, either "access" or "refresh".
	Kind TokenKind `json:"kind"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// UserID is the subject extracted from the "sub" claim.
	// Excluded from JSON serialization; it is an internal server-side cache.
	UserID string `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim. An empty string means the claim was never set; validated tokens
// always carry a non-empty subject.
func (t *Token) GetUserID() (string, error) {
	return t.GetSubject()
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
