package service

import (
	"github.com/fitstack/workout-server/internal/config"
	"github.com/fitstack/workout-server/internal/logger"
	"github.com/fitstack/workout-server/internal/store"
)

// Services bundles the domain services handed to the transport layer.
type Services struct {
	AuthService     AuthService
	ExerciseService ExerciseService
}

// NewServices constructs all services on top of the repositories and the
// application configuration.
func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	logger.Info().Msg("creating services...")

	return &Services{
		AuthService:     NewAuthService(repositories.UserRepository, cfg, logger),
		ExerciseService: NewExerciseService(repositories.ExerciseRepository, logger),
	}
}
