package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fitstack/workout-server/internal/logger"
	"github.com/fitstack/workout-server/internal/store"
	"github.com/fitstack/workout-server/models"
)

// otherMuscleGroup is the synthetic grouping key for exercises whose
// primary_muscles list is empty.
const otherMuscleGroup = "other"

// exerciseService is the concrete implementation of ExerciseService.
// It reads the catalog through an ExerciseRepository and applies the
// grouping rules in memory; the catalog is small and read-only.
type exerciseService struct {
	exerciseRepository store.ExerciseRepository
	logger             *logger.Logger
}

// NewExerciseService constructs an ExerciseService on top of the given
// repository.
func NewExerciseService(exerciseRepository store.ExerciseRepository, logger *logger.Logger) ExerciseService {
	return &exerciseService{
		exerciseRepository: exerciseRepository,
		logger:             logger,
	}
}

// GetGrouped partitions the catalog: each exercise lands under the
// lowercased value of its first primary muscle, or under "other" when it has
// none. Every exercise appears in exactly one bucket and bucket order
// follows the catalog's id order, so the result is a deterministic partition
// of the whole catalog.
func (s *exerciseService) GetGrouped(ctx context.Context) (map[string][]models.Exercise, int, error) {
	log := logger.FromContext(ctx)

	exercises, err := s.exerciseRepository.GetAll(ctx)
	if err != nil {
		log.Err(err).Msg("fetching exercise catalog failed")
		return nil, 0, fmt.Errorf("fetching exercise catalog failed: %w", err)
	}

	grouped := make(map[string][]models.Exercise)
	for _, exercise := range exercises {
		key := otherMuscleGroup
		if len(exercise.PrimaryMuscles) > 0 {
			key = strings.ToLower(exercise.PrimaryMuscles[0])
		}
		grouped[key] = append(grouped[key], exercise)
	}

	return grouped, len(exercises), nil
}

// GetMuscleGroups returns the distinct lowercased muscle names appearing in
// any exercise's primary muscles, sorted ascending. Exercises without
// primary muscles contribute nothing — in particular the synthetic "other"
// key of GetGrouped never appears here.
func (s *exerciseService) GetMuscleGroups(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	exercises, err := s.exerciseRepository.GetAll(ctx)
	if err != nil {
		log.Err(err).Msg("fetching exercise catalog failed")
		return nil, fmt.Errorf("fetching exercise catalog failed: %w", err)
	}

	seen := make(map[string]struct{})
	for _, exercise := range exercises {
		for _, muscle := range exercise.PrimaryMuscles {
			seen[strings.ToLower(muscle)] = struct{}{}
		}
	}

	groups := make([]string, 0, len(seen))
	for muscle := range seen {
		groups = append(groups, muscle)
	}
	sort.Strings(groups)

	return groups, nil
}

// GetByMuscleGroup returns every exercise whose primary muscles contain the
// requested muscle. Unlike GetGrouped this matches any position in the list,
// not only the first entry; the two lookup rules are deliberately different.
// An empty result is valid and is not an error.
func (s *exerciseService) GetByMuscleGroup(ctx context.Context, muscle string) ([]models.Exercise, error) {
	log := logger.FromContext(ctx)

	exercises, err := s.exerciseRepository.GetByPrimaryMuscle(ctx, muscle)
	if err != nil {
		log.Err(err).Str("muscle_group", muscle).Msg("fetching exercises by muscle group failed")
		return nil, fmt.Errorf("fetching exercises by muscle group failed: %w", err)
	}

	return exercises, nil
}
