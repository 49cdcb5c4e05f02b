package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/fitstack/workout-server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Error kinds surfaced by ValidateAndParseJWTToken. Callers match them with
// [errors.Is]; the HTTP layer converts all of them to 401 responses.
var (
	// ErrTokenExpired is returned when the exp claim lies in the past.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenMalformed is returned when the token cannot be parsed or its
	// claims fail validation for any reason other than expiry or signature.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenBadSignature is returned when the signature does not verify
	// against the configured signing key.
	ErrTokenBadSignature = errors.New("token signature is invalid")

	// ErrTokenWrongKind is returned when a structurally valid token carries
	// a kind claim different from the one the caller expected, e.g. a
	// refresh token presented to a protected resource endpoint.
	ErrTokenWrongKind = errors.New("unexpected token kind")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token bound to a user.
//
// The token includes the standard claims
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user's UUID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// plus the mandatory kind claim that separates access tokens from refresh
// tokens. All parameters are required; an error is returned if any of them
// are empty or zero.
func GenerateJWTToken(issuer, subject string, kind models.TokenKind, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || subject == "" || kind == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	token := models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Kind: kind,
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, &token)
	tokenString, err := jwtToken.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	token.Token = jwtToken
	token.SignedString = tokenString
	token.UserID = subject

	return token, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check against the wall clock
//   - Kind claim check against expectedKind
//   - Subject (sub) claim presence
//
// Failures are normalised to the sentinel errors declared in this package:
// [ErrTokenExpired], [ErrTokenBadSignature], [ErrTokenWrongKind], and
// [ErrTokenMalformed] for everything else.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, expectedKind models.TokenKind) (models.Token, error) {
	claims := &models.Token{}
	parsedToken, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Token{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return models.Token{}, ErrTokenBadSignature
		default:
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
		}
	}

	if claims.Kind != expectedKind {
		return models.Token{}, ErrTokenWrongKind
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", ErrTokenMalformed)
	}

	claims.Token = parsedToken
	claims.SignedString = tokenString
	claims.UserID = subject

	return *claims, nil
}
