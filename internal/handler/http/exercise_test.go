package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitstack/workout-server/internal/logger"
	"github.com/fitstack/workout-server/internal/service"
	"github.com/fitstack/workout-server/models"
)

// ─────────────────────────────────────────────
// Mock ExerciseService
// ─────────────────────────────────────────────

// mockExerciseService implements service.ExerciseService for unit tests.
// Each method field can be overridden per test case.
type mockExerciseService struct {
	getGroupedFn       func(ctx context.Context) (map[string][]models.Exercise, int, error)
	getMuscleGroupsFn  func(ctx context.Context) ([]string, error)
	getByMuscleGroupFn func(ctx context.Context, muscle string) ([]models.Exercise, error)
}

func (m *mockExerciseService) GetGrouped(ctx context.Context) (map[string][]models.Exercise, int, error) {
	return m.getGroupedFn(ctx)
}

func (m *mockExerciseService) GetMuscleGroups(ctx context.Context) ([]string, error) {
	return m.getMuscleGroupsFn(ctx)
}

func (m *mockExerciseService) GetByMuscleGroup(ctx context.Context, muscle string) ([]models.Exercise, error) {
	return m.getByMuscleGroupFn(ctx, muscle)
}

// newHandlerWithExercises builds a Handler with the given ExerciseService mock.
func newHandlerWithExercises(t *testing.T, exercises service.ExerciseService) *Handler {
	t.Helper()
	svcs := &service.Services{
		ExerciseService: exercises,
	}
	return NewHandler(svcs, logger.Nop())
}

// muscleGroupRequest builds a GET request routed through chi so that
// chi.URLParam can resolve the {name} parameter.
func muscleGroupRequest(name string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/exercises/muscle-group/"+name, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("name", name)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// groupedExercises
// ─────────────────────────────────────────────

// TestGroupedExercises_Success verifies the grouped response shape and totals.
func TestGroupedExercises_Success(t *testing.T) {
	exercises := &mockExerciseService{
		getGroupedFn: func(_ context.Context) (map[string][]models.Exercise, int, error) {
			return map[string][]models.Exercise{
				"chest": {{ID: "ex-1", Name: "Bench Press"}},
				"other": {{ID: "ex-2", Name: "Jumping Jacks"}},
			}, 2, nil
		},
	}

	h := newHandlerWithExercises(t, exercises)
	req := httptest.NewRequest(http.MethodGet, "/api/exercises/grouped", nil)
	rec := httptest.NewRecorder()

	h.groupedExercises(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Exercises retrieved successfully", body["message"])
	assert.Equal(t, float64(2), body["total_muscle_groups"])
	assert.Equal(t, float64(2), body["total_exercises"])

	grouped, ok := body["exercises"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, grouped, "chest")
	assert.Contains(t, grouped, "other")
}

// TestGroupedExercises_EmptyCatalog verifies the "No exercises found" message
// with an empty mapping and 200 status.
func TestGroupedExercises_EmptyCatalog(t *testing.T) {
	exercises := &mockExerciseService{
		getGroupedFn: func(_ context.Context) (map[string][]models.Exercise, int, error) {
			return map[string][]models.Exercise{}, 0, nil
		},
	}

	h := newHandlerWithExercises(t, exercises)
	req := httptest.NewRequest(http.MethodGet, "/api/exercises/grouped", nil)
	rec := httptest.NewRecorder()

	h.groupedExercises(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "No exercises found", body["message"])
	assert.Empty(t, body["exercises"])
	assert.Equal(t, float64(0), body["total_exercises"])
}

// TestGroupedExercises_StoreError verifies the 500 mapping.
func TestGroupedExercises_StoreError(t *testing.T) {
	exercises := &mockExerciseService{
		getGroupedFn: func(_ context.Context) (map[string][]models.Exercise, int, error) {
			return nil, 0, assert.AnError
		},
	}

	h := newHandlerWithExercises(t, exercises)
	req := httptest.NewRequest(http.MethodGet, "/api/exercises/grouped", nil)
	rec := httptest.NewRecorder()

	h.groupedExercises(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Internal server error", body["error"])
	assert.Equal(t, "Failed to fetch exercises", body["message"])
}

// ─────────────────────────────────────────────
// muscleGroups
// ─────────────────────────────────────────────

// TestMuscleGroups_Success verifies the sorted list and count.
func TestMuscleGroups_Success(t *testing.T) {
	exercises := &mockExerciseService{
		getMuscleGroupsFn: func(_ context.Context) ([]string, error) {
			return []string{"biceps", "chest", "quadriceps"}, nil
		},
	}

	h := newHandlerWithExercises(t, exercises)
	req := httptest.NewRequest(http.MethodGet, "/api/exercises/muscle-groups", nil)
	rec := httptest.NewRecorder()

	h.muscleGroups(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Muscle groups retrieved successfully", body["message"])
	assert.Equal(t, []any{"biceps", "chest", "quadriceps"}, body["muscle_groups"])
	assert.Equal(t, float64(3), body["count"])
}

// TestMuscleGroups_StoreError verifies the 500 mapping.
func TestMuscleGroups_StoreError(t *testing.T) {
	exercises := &mockExerciseService{
		getMuscleGroupsFn: func(_ context.Context) ([]string, error) {
			return nil, assert.AnError
		},
	}

	h := newHandlerWithExercises(t, exercises)
	req := httptest.NewRequest(http.MethodGet, "/api/exercises/muscle-groups", nil)
	rec := httptest.NewRecorder()

	h.muscleGroups(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to fetch muscle groups", decodeBody(t, rec)["message"])
}

// ─────────────────────────────────────────────
// exercisesByMuscleGroup
// ─────────────────────────────────────────────

// TestExercisesByMuscleGroup_Success verifies the contains-lookup response
// and that the requested name is echoed verbatim.
func TestExercisesByMuscleGroup_Success(t *testing.T) {
	exercises := &mockExerciseService{
		getByMuscleGroupFn: func(_ context.Context, muscle string) ([]models.Exercise, error) {
			assert.Equal(t, "Chest", muscle)
			return []models.Exercise{{ID: "ex-1", Name: "Bench Press"}}, nil
		},
	}

	h := newHandlerWithExercises(t, exercises)
	rec := httptest.NewRecorder()

	h.exercisesByMuscleGroup(rec, muscleGroupRequest("Chest"))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Exercises for Chest retrieved successfully", body["message"])
	assert.Equal(t, "Chest", body["muscle_group"])
	assert.Equal(t, float64(1), body["count"])
}

// TestExercisesByMuscleGroup_Empty verifies that an unknown muscle group is
// answered with 200 and an empty list, not 404.
func TestExercisesByMuscleGroup_Empty(t *testing.T) {
	exercises := &mockExerciseService{
		getByMuscleGroupFn: func(_ context.Context, _ string) ([]models.Exercise, error) {
			return []models.Exercise{}, nil
		},
	}

	h := newHandlerWithExercises(t, exercises)
	rec := httptest.NewRecorder()

	h.exercisesByMuscleGroup(rec, muscleGroupRequest("nonexistent"))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "No exercises found for muscle group: nonexistent", body["message"])
	assert.Equal(t, float64(0), body["count"])
	assert.Empty(t, body["exercises"])
}

// TestExercisesByMuscleGroup_StoreError verifies the 500 mapping.
func TestExercisesByMuscleGroup_StoreError(t *testing.T) {
	exercises := &mockExerciseService{
		getByMuscleGroupFn: func(_ context.Context, _ string) ([]models.Exercise, error) {
			return nil, assert.AnError
		},
	}

	h := newHandlerWithExercises(t, exercises)
	rec := httptest.NewRecorder()

	h.exercisesByMuscleGroup(rec, muscleGroupRequest("chest"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to fetch exercises for muscle group", decodeBody(t, rec)["message"])
}

// ─────────────────────────────────────────────
// health
// ─────────────────────────────────────────────

// TestHealth verifies the public health endpoint payload.
func TestHealth(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.health(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "Workout API is running", body["message"])
}
