package service

import (
	"context"

	"github.com/fitstack/workout-server/models"
)

// AuthResult is returned by Register and Login: the persisted user together
// with a freshly minted access/refresh token pair.
type AuthResult struct {
	User         models.User
	AccessToken  models.Token
	RefreshToken models.Token
}

// AuthService implements the register/login/profile/refresh contracts on top
// of the credential store, the password hasher, and the token mint.
type AuthService interface {
	// Register validates the payload, creates the account, and mints both
	// tokens. Fails with *validators.ValidationError on schema violations
	// and store.ErrEmailAlreadyExists on a duplicate email.
	Register(ctx context.Context, req models.RegisterRequest) (AuthResult, error)

	// Login authenticates by email and password. Fails with
	// ErrInvalidCredentials for unknown email, wrong password, and
	// deactivated account alike.
	Login(ctx context.Context, req models.LoginRequest) (AuthResult, error)

	// Profile returns the user record for a subject extracted from a
	// verified access token. Fails with store.ErrUserNotFound if the user
	// has been removed since token issuance.
	Profile(ctx context.Context, userID string) (models.User, error)

	// CreateToken mints a signed token of the given kind for the user.
	CreateToken(ctx context.Context, userID string, kind models.TokenKind) (models.Token, error)

	// ParseToken validates a raw token string against the expected kind and
	// returns the decoded token. Failures surface as the utils token
	// sentinel errors.
	ParseToken(ctx context.Context, tokenString string, expectedKind models.TokenKind) (models.Token, error)
}

// ExerciseService implements the grouped/by-muscle/muscle-list catalog
// queries.
type ExerciseService interface {
	// GetGrouped partitions the catalog by the lowercased first primary
	// muscle of each exercise ("other" for exercises without primary
	// muscles) and returns the partition plus the total exercise count.
	GetGrouped(ctx context.Context) (map[string][]models.Exercise, int, error)

	// GetMuscleGroups returns the sorted, deduplicated set of lowercased
	// muscle names appearing in any exercise's primary muscles.
	GetMuscleGroups(ctx context.Context) ([]string, error)

	// GetByMuscleGroup returns the exercises whose primary muscles contain
	// the given muscle (case-insensitive, full-token match). An empty slice
	// is a valid result.
	GetByMuscleGroup(ctx context.Context, muscle string) ([]models.Exercise, error)
}
