package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fitstack/workout-server/internal/utils"
	"github.com/fitstack/workout-server/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes requiring an access token
	router.Group(func(r chi.Router) {
		r.Use(h.auth(models.TokenKindAccess))

		r.Get("/api/auth/profile", h.profile)
		r.Get("/api/exercises/grouped", h.groupedExercises)
		r.Get("/api/exercises/muscle-groups", h.muscleGroups)
		r.Get("/api/exercises/muscle-group/{name}", h.exercisesByMuscleGroup)
	})

	// the refresh endpoint accepts only refresh tokens
	router.Group(func(r chi.Router) {
		r.Use(h.auth(models.TokenKindRefresh))

		r.Post("/api/auth/refresh", h.refresh)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.ErrorResponse{Error: "Resource not found"}, http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.ErrorResponse{Error: "Method not allowed"}, http.StatusMethodNotAllowed)
	})

	return router
}
