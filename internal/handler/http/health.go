package http

import (
	"net/http"

	"github.com/fitstack/workout-server/internal/utils"
	"github.com/fitstack/workout-server/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:  "healthy",
		Message: "Workout API is running",
	}, http.StatusOK)
}
