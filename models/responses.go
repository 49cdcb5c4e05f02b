// SPDX-License-Identifier: Apache-2.0

package models

// AuthResponse is returned by the register and login endpoints. It carries
// the persisted user (password digest excluded by the User JSON tags) and a
// freshly minted access/refresh token pair.
type AuthResponse struct {
	Message      string `json:"message"`
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ProfileResponse is returned by GET /api/auth/profile.
type ProfileResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// RefreshResponse is returned by POST /api/auth/refresh. Only a new access
// token is minted; the presented refresh token keeps its original expiry.
type RefreshResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}

// GroupedExercisesResponse maps each muscle group to the exercises whose
// first primary muscle names it. Every exercise appears under exactly one
// key; exercises without primary muscles land under the synthetic "other"
// key. Keys serialize in ascending order.
type GroupedExercisesResponse struct {
	Message           string                `json:"message"`
	Exercises         map[string][]Exercise `json:"exercises"`
	TotalMuscleGroups int                   `json:"total_muscle_groups"`
	TotalExercises    int                   `json:"total_exercises"`
}

// MuscleGroupsResponse lists the distinct lowercased muscle names appearing
// in any exercise's primary muscles, sorted ascending.
type MuscleGroupsResponse struct {
	Message      string   `json:"message"`
	MuscleGroups []string `json:"muscle_groups"`
	Count        int      `json:"count"`
}

// MuscleGroupExercisesResponse lists the exercises whose primary muscles
// contain the requested muscle group. An empty list is a valid response.
type MuscleGroupExercisesResponse struct {
	Message     string     `json:"message"`
	MuscleGroup string     `json:"muscle_group"`
	Exercises   []Exercise `json:"exercises"`
	Count       int        `json:"count"`
}

// HealthResponse is returned by the public GET /health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body. Details is populated only for
// validation failures and maps field names to their violation messages.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}
