package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/fitstack/workout-server/models"
)

// UserRepository is the credential store: it owns the email-uniqueness
// invariant and is the only component that reads or writes password digests.
type UserRepository interface {
	// CreateUser atomically inserts a new user. Returns
	// [ErrEmailAlreadyExists] when another user with the same normalized
	// email exists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail performs a case-insensitive lookup. Returns
	// [ErrUserNotFound] when no user matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID performs an exact-match lookup by user ID. Returns
	// [ErrUserNotFound] when no user matches.
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// ExerciseRepository reads the exercise catalog. The catalog is populated by
// an out-of-scope process and is never mutated at runtime; all methods
// return fully materialized value records in deterministic (by id) order.
type ExerciseRepository interface {
	// GetAll returns every exercise in the catalog ordered by id.
	GetAll(ctx context.Context) ([]models.Exercise, error)

	// GetByPrimaryMuscle returns the exercises whose primary_muscles list
	// contains the given muscle, matched case-insensitively on the full
	// token. An empty slice is a valid result.
	GetByPrimaryMuscle(ctx context.Context, muscle string) ([]models.Exercise, error)
}
