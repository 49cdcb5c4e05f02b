package config

import "errors"

// validate checks that the merged configuration contains everything the
// server cannot run without. All problems are reported at once via
// errors.Join so the operator fixes them in one pass.
func (c *StructuredConfig) validate() error {
	var err error

	if c.App.JWTSecretKey == "" {
		err = errors.Join(err, ErrNoJWTSecretKey)
	}

	if c.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrNoDatabaseDSN)
	}

	if c.App.AccessTokenTTL <= 0 || c.App.RefreshTokenTTL <= 0 {
		err = errors.Join(err, ErrInvalidDuration)
	}

	return err
}

// IsDevelopment reports whether the application runs with the development
// profile enabled.
func (c *StructuredConfig) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}
