package store

import (
	"github.com/fitstack/workout-server/internal/logger"
)

// Repositories bundles the persistence-layer implementations handed to the
// service layer at startup.
type Repositories struct {
	UserRepository     UserRepository
	ExerciseRepository ExerciseRepository
}

// NewRepositories constructs every repository on top of the shared database
// handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db, logger),
		ExerciseRepository: NewExerciseRepository(db, logger),
	}
}
