package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fitstack/workout-server/internal/logger"
	"github.com/fitstack/workout-server/internal/service"
	"github.com/fitstack/workout-server/internal/store"
	"github.com/fitstack/workout-server/internal/utils"
	"github.com/fitstack/workout-server/internal/validators"
	"github.com/fitstack/workout-server/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON format"}, http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		var validationErr *validators.ValidationError
		switch {
		case errors.As(err, &validationErr):
			log.Err(err).Msg("registration payload failed validation")
			utils.WriteJSON(w, models.ErrorResponse{
				Error:   "Validation error",
				Details: validationErr.Fields,
			}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			utils.WriteJSON(w, models.ErrorResponse{Error: "User with this email already exists"}, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Internal server error"}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.AuthResponse{
		Message:      "User registered successfully",
		User:         result.User,
		AccessToken:  result.AccessToken.SignedString,
		RefreshToken: result.RefreshToken.SignedString,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON format"}, http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		var validationErr *validators.ValidationError
		switch {
		case errors.As(err, &validationErr):
			log.Err(err).Msg("login payload failed validation")
			utils.WriteJSON(w, models.ErrorResponse{
				Error:   "Validation error",
				Details: validationErr.Fields,
			}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid email or password")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid email or password"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Internal server error"}, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("id", result.User.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{
		Message:      "Login successful",
		User:         result.User,
		AccessToken:  result.AccessToken.SignedString,
		RefreshToken: result.RefreshToken.SignedString,
	}, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Internal server error"}, http.StatusInternalServerError)
		return
	}

	user, err := h.services.AuthService.Profile(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Str("id", userID).Msg("user not found")
			utils.WriteJSON(w, models.ErrorResponse{Error: "User not found"}, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred fetching profile")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Internal server error"}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.ProfileResponse{
		Message: "Profile retrieved successfully",
		User:    user,
	}, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Internal server error"}, http.StatusInternalServerError)
		return
	}

	accessToken, err := h.services.AuthService.CreateToken(ctx, userID, models.TokenKindAccess)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Internal server error"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.RefreshResponse{
		Message:     "Token refreshed successfully",
		AccessToken: accessToken.SignedString,
	}, http.StatusOK)
}
