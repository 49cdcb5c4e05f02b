package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fitstack/workout-server/internal/logger"
	"github.com/fitstack/workout-server/internal/utils"
	"github.com/fitstack/workout-server/models"
)

func (h *Handler) groupedExercises(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	grouped, total, err := h.services.ExerciseService.GetGrouped(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred fetching grouped exercises")
		utils.WriteJSON(w, models.ErrorResponse{
			Error:   "Internal server error",
			Message: "Failed to fetch exercises",
		}, http.StatusInternalServerError)
		return
	}

	message := "Exercises retrieved successfully"
	if total == 0 {
		message = "No exercises found"
	}

	utils.WriteJSON(w, models.GroupedExercisesResponse{
		Message:           message,
		Exercises:         grouped,
		TotalMuscleGroups: len(grouped),
		TotalExercises:    total,
	}, http.StatusOK)
}

func (h *Handler) muscleGroups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	groups, err := h.services.ExerciseService.GetMuscleGroups(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred fetching muscle groups")
		utils.WriteJSON(w, models.ErrorResponse{
			Error:   "Internal server error",
			Message: "Failed to fetch muscle groups",
		}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MuscleGroupsResponse{
		Message:      "Muscle groups retrieved successfully",
		MuscleGroups: groups,
		Count:        len(groups),
	}, http.StatusOK)
}

func (h *Handler) exercisesByMuscleGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	muscleGroup := chi.URLParam(r, "name")

	exercises, err := h.services.ExerciseService.GetByMuscleGroup(ctx, muscleGroup)
	if err != nil {
		log.Err(err).Str("muscle_group", muscleGroup).Msg("unexpected error occurred fetching exercises by muscle group")
		utils.WriteJSON(w, models.ErrorResponse{
			Error:   "Internal server error",
			Message: "Failed to fetch exercises for muscle group",
		}, http.StatusInternalServerError)
		return
	}

	message := fmt.Sprintf("Exercises for %s retrieved successfully", muscleGroup)
	if len(exercises) == 0 {
		message = fmt.Sprintf("No exercises found for muscle group: %s", muscleGroup)
	}

	utils.WriteJSON(w, models.MuscleGroupExercisesResponse{
		Message:     message,
		MuscleGroup: muscleGroup,
		Exercises:   exercises,
		Count:       len(exercises),
	}, http.StatusOK)
}
