// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fitstack/workout-server/internal/config"
	"github.com/fitstack/workout-server/internal/logger"
	"github.com/fitstack/workout-server/internal/mock"
	"github.com/fitstack/workout-server/internal/store"
	"github.com/fitstack/workout-server/internal/utils"
	"github.com/fitstack/workout-server/internal/validators"
	"github.com/fitstack/workout-server/models"
)

// newTestAuthSvc — helper wiring an authService over a mocked UserRepository.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	mockUsers := mock.NewMockUserRepository(ctrl)

	cfg := config.App{
		JWTSecretKey:    "test-secret-key",
		TokenIssuer:     "workout-server-test",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 720 * time.Hour,
	}

	return NewAuthService(mockUsers, cfg, logger.Nop()), mockUsers
}

// validRegisterRequest is the canonical well-formed registration payload.
func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Email:       "Alice@Example.com",
		Password:    "secret1",
		FirstName:   "Alice",
		LastName:    "Smith",
		DateOfBirth: "1990-01-01",
		Gender:      "female",
	}
}

// storedUser builds a persisted user with a real bcrypt digest of password.
func storedUser(t *testing.T, password string) models.User {
	t.Helper()
	digest, err := utils.HashPassword(password)
	require.NoError(t, err)
	return models.User{
		ID:             uuid.NewString(),
		Email:          "alice@example.com",
		PasswordDigest: digest,
		FirstName:      "Alice",
		LastName:       "Smith",
		Gender:         models.GenderFemale,
		IsActive:       true,
	}
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	req := validRegisterRequest()

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			// email is normalized before it reaches the store
			assert.Equal(t, "alice@example.com", u.Email)

			// the plaintext never reaches the store, only a verifiable digest
			ok, verr := utils.VerifyPassword(req.Password, u.PasswordDigest)
			require.NoError(t, verr)
			assert.True(t, ok)

			_, uerr := uuid.Parse(u.ID)
			assert.NoError(t, uerr, "user id should be a fresh UUID")
			assert.True(t, u.IsActive)
			assert.False(t, u.CreatedAt.IsZero())
			assert.Equal(t, u.CreatedAt, u.UpdatedAt)
			return u, nil
		},
	)

	result, err := svc.Register(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", result.User.Email)
	assert.Equal(t, models.TokenKindAccess, result.AccessToken.Kind)
	assert.Equal(t, models.TokenKindRefresh, result.RefreshToken.Kind)
	assert.NotEmpty(t, result.AccessToken.SignedString)
	assert.NotEmpty(t, result.RefreshToken.SignedString)

	// both tokens are bound to the new user
	assert.Equal(t, result.User.ID, result.AccessToken.UserID)
	assert.Equal(t, result.User.ID, result.RefreshToken.UserID)
}

func TestAuthService_Register_MaxLengthPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// 100 characters: the longest accepted password, longer than bcrypt's
	// 72-byte raw input limit.
	req := validRegisterRequest()
	req.Password = strings.Repeat("p", 100)

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			ok, verr := utils.VerifyPassword(req.Password, u.PasswordDigest)
			require.NoError(t, verr)
			assert.True(t, ok)
			return u, nil
		},
	)

	result, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken.SignedString)
}

func TestAuthService_Register_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// no expectations on the repository: invalid payloads never reach it
	req := models.RegisterRequest{
		Email:    "not-an-email",
		Password: "short",
		Gender:   "robot",
	}

	_, err := svc.Register(ctx, req)
	require.Error(t, err)

	var verr *validators.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")
	assert.Contains(t, verr.Fields, "first_name")
	assert.Contains(t, verr.Fields, "last_name")
	assert.Contains(t, verr.Fields, "date_of_birth")
	assert.Contains(t, verr.Fields, "gender")
}

func TestAuthService_Register_EmailConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(ctx, validRegisterRequest())
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Register_FutureDateOfBirth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := validRegisterRequest()
	req.DateOfBirth = time.Now().AddDate(1, 0, 0).Format(models.DateLayout)

	_, err := svc.Register(ctx, req)
	require.Error(t, err)

	var verr *validators.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Date of birth cannot be in the future."}, verr.Fields["date_of_birth"])
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	user := storedUser(t, "secret1")

	// uppercase input resolves via the lowercased lookup
	mockUsers.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(user, nil)

	result, err := svc.Login(ctx, models.LoginRequest{Email: "Alice@Example.com", Password: "secret1"})
	require.NoError(t, err)

	assert.Equal(t, user.ID, result.User.ID)
	assert.Equal(t, models.TokenKindAccess, result.AccessToken.Kind)
	assert.Equal(t, models.TokenKindRefresh, result.RefreshToken.Kind)
	assert.Equal(t, user.ID, result.AccessToken.UserID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "ghost@example.com").
		Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	user := storedUser(t, "secret1")

	mockUsers.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(user, nil)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "wrong-password"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	user := storedUser(t, "secret1")
	user.IsActive = false

	mockUsers.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(user, nil)

	// a correct password on a deactivated account is indistinguishable from
	// a wrong one
	_, err := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "secret1"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_MalformedStoredDigest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	user := storedUser(t, "secret1")
	user.PasswordDigest = "not-a-bcrypt-digest"

	mockUsers.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(user, nil)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "secret1"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Login(ctx, models.LoginRequest{Email: "not-an-email"})
	require.Error(t, err)

	var verr *validators.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")
}

// ── Profile ──────────────────────────────────────────────────────────────────

func TestAuthService_Profile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	user := storedUser(t, "secret1")

	mockUsers.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)

	got, err := svc.Profile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_Profile_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByID(ctx, "gone").
		Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Profile(ctx, "gone")
	require.ErrorIs(t, err, store.ErrUserNotFound)
}

// ── CreateToken / ParseToken ─────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	for _, kind := range []models.TokenKind{models.TokenKindAccess, models.TokenKindRefresh} {
		t.Run(string(kind), func(t *testing.T) {
			token, err := svc.CreateToken(ctx, "user-1", kind)
			require.NoError(t, err)
			require.NotEmpty(t, token.SignedString)

			parsed, err := svc.ParseToken(ctx, token.SignedString, kind)
			require.NoError(t, err)
			assert.Equal(t, "user-1", parsed.UserID)
			assert.Equal(t, kind, parsed.Kind)
		})
	}
}

func TestAuthService_ParseToken_WrongKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	refresh, err := svc.CreateToken(ctx, "user-1", models.TokenKindRefresh)
	require.NoError(t, err)

	// a refresh token never opens a protected resource
	_, err = svc.ParseToken(ctx, refresh.SignedString, models.TokenKindAccess)
	require.ErrorIs(t, err, utils.ErrTokenWrongKind)

	access, err := svc.CreateToken(ctx, "user-1", models.TokenKindAccess)
	require.NoError(t, err)

	// and an access token never refreshes
	_, err = svc.ParseToken(ctx, access.SignedString, models.TokenKindRefresh)
	require.ErrorIs(t, err, utils.ErrTokenWrongKind)
}

func TestAuthService_ParseToken_BadSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	forged, err := utils.GenerateJWTToken("workout-server-test", "user-1", models.TokenKindAccess, time.Hour, "attacker-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, forged.SignedString, models.TokenKindAccess)
	require.ErrorIs(t, err, utils.ErrTokenBadSignature)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.ParseToken(ctx, "definitely.not.a-jwt", models.TokenKindAccess)
	require.ErrorIs(t, err, utils.ErrTokenMalformed)
}
