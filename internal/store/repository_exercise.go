package store

import (
	"context"
	"fmt"

	"github.com/fitstack/workout-server/internal/logger"
	"github.com/fitstack/workout-server/models"
	"github.com/lib/pq"
)

// exerciseRepository is the PostgreSQL-backed implementation of
// [ExerciseRepository]. The exercises table pre-exists and is populated out
// of band; this repository only ever reads from it.
type exerciseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewExerciseRepository constructs an [ExerciseRepository] backed by the
// provided database connection and logger.
func NewExerciseRepository(db *DB, logger *logger.Logger) ExerciseRepository {
	logger.Debug().Msg("creating exercise repository")
	return &exerciseRepository{
		db:     db,
		logger: logger,
	}
}

// GetAll returns the whole catalog ordered by id.
func (r *exerciseRepository) GetAll(ctx context.Context) ([]models.Exercise, error) {
	query, args, err := selectExercises().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryExercises(ctx, query, args...)
}

// GetByPrimaryMuscle returns the exercises whose primary_muscles contain the
// given muscle, matched case-insensitively on the full token.
func (r *exerciseRepository) GetByPrimaryMuscle(ctx context.Context, muscle string) ([]models.Exercise, error) {
	query, args, err := wherePrimaryMuscleContains(selectExercises(), muscle).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryExercises(ctx, query, args...)
}

// queryExercises executes a catalog SELECT and materializes every row.
// Array columns are decoded with pq.Array so no driver proxies leak past
// the repository boundary.
func (r *exerciseRepository) queryExercises(ctx context.Context, query string, args ...any) ([]models.Exercise, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*exerciseRepository.queryExercises").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	exercises := make([]models.Exercise, 0)
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Equipment, &e.Instructions,
			pq.Array(&e.Images), pq.Array(&e.PrimaryMuscles), pq.Array(&e.SecondaryMuscles),
		); err != nil {
			log.Err(err).Str("func", "*exerciseRepository.queryExercises").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		exercises = append(exercises, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return exercises, nil
}
