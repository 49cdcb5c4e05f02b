package utils

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidDigest is returned by VerifyPassword when the stored digest is
// not a well-formed bcrypt string. Callers must treat it as an
// authentication failure, not an internal error.
var ErrInvalidDigest = errors.New("invalid password digest")

// passwordHashCost is the bcrypt work factor applied to new digests.
// bcrypt.DefaultCost is 10, the minimum required here; verification accepts
// digests of any supported cost so the factor can be raised later without
// invalidating stored credentials.
const passwordHashCost = bcrypt.DefaultCost

// dummyDigest is a valid bcrypt digest of a throwaway password. The login
// flow verifies the supplied password against it when no user record exists,
// so that the response time does not reveal whether the email is registered.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// prehashPassword reduces a password of any length to a fixed 44-byte
// base64 string before bcrypt sees it. bcrypt rejects inputs over 72 bytes,
// while passwords up to 100 characters are accepted at registration; the
// SHA-256 step keeps every accepted password fully significant. base64
// encoding avoids NUL bytes in the bcrypt input.
func prehashPassword(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

// HashPassword derives a salted, adaptive one-way digest of password using
// bcrypt over a SHA-256 prehash. The salt is generated per call from a
// cryptographic source and the returned string is self-describing: it
// encodes algorithm, cost, salt, and digest.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword(prehashPassword(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword compares password against a stored bcrypt digest in
// constant time. It tolerates digests of any supported cost.
//
// Returns (false, nil) on a simple mismatch and (false, ErrInvalidDigest)
// when the stored digest is malformed.
func VerifyPassword(password, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), prehashPassword(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrInvalidDigest, err)
	}
}

// VerifyDummyPassword burns the same amount of CPU as a real password check.
// Called on login when the email does not resolve to a user record, keeping
// the invalid-credentials response indistinguishable in timing.
func VerifyDummyPassword(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyDigest), prehashPassword(password))
}
