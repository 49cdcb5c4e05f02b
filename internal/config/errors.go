package config

import "errors"

var (
	ErrNoJWTSecretKey  = errors.New("token signing key is required: set JWT_SECRET_KEY or -jwt-secret-key")
	ErrNoDatabaseDSN   = errors.New("database DSN is required: set DATABASE_URL or -d")
	ErrInvalidDuration = errors.New("token lifetimes must be positive durations")
)
