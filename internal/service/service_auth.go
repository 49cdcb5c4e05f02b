package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fitstack/workout-server/internal/config"
	"github.com/fitstack/workout-server/internal/logger"
	"github.com/fitstack/workout-server/internal/store"
	"github.com/fitstack/workout-server/internal/utils"
	"github.com/fitstack/workout-server/internal/validators"
	"github.com/fitstack/workout-server/models"
	"github.com/google/uuid"
)

// authService is the concrete implementation of AuthService.
// It composes the credential store, the bcrypt password hasher, and the JWT
// token mint into the register/login/profile/refresh contracts.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks registration and login payloads and reports
	// field-error maps instead of single failures.
	validator *validators.UserValidator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// accessTokenTTL controls how long an access token remains valid.
	accessTokenTTL time.Duration

	// refreshTokenTTL controls how long a refresh token remains valid.
	refreshTokenTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		validator:       validators.NewUserValidator(),
		tokenSignKey:    cfg.JWTSecretKey,
		tokenIssuer:     cfg.TokenIssuer,
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
		logger:          logger,
	}
}

// Register creates a new user account.
//
// The payload is validated field by field; the email is normalized to
// lowercase, the password digested via bcrypt, and the record inserted with
// a fresh UUID and current UTC timestamps. On success both an access and a
// refresh token are minted for the new user.
//
// Returns:
//   - *validators.ValidationError when the payload violates the schema.
//   - store.ErrEmailAlreadyExists (wrapped) when the email is taken; the
//     unique index decides the winner of two concurrent registrations.
//   - A wrapped storage or mint error for anything unexpected.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (AuthResult, error) {
	log := logger.FromContext(ctx)

	dateOfBirth, verr := a.validator.ValidateRegister(req)
	if verr != nil {
		log.Error().Any("fields", verr.Fields).Msg("registration payload failed validation")
		return AuthResult{}, verr
	}

	digest, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return AuthResult{}, fmt.Errorf("password hashing failed: %w", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:             uuid.NewString(),
		Email:          strings.ToLower(req.Email),
		PasswordDigest: digest,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DateOfBirth:    dateOfBirth,
		Gender:         req.Gender,
		CreatedAt:      now,
		UpdatedAt:      now,
		IsActive:       true,
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.mintTokenPair(ctx, created)
}

// Login authenticates an existing user.
//
// Unknown email, deactivated account, and wrong password all produce
// ErrInvalidCredentials with no distinguishing detail. When the email does
// not resolve to a record, a dummy digest is still verified so the response
// time does not reveal whether the address is registered.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (AuthResult, error) {
	log := logger.FromContext(ctx)

	if verr := a.validator.ValidateLogin(req); verr != nil {
		log.Error().Any("fields", verr.Fields).Msg("login payload failed validation")
		return AuthResult{}, verr
	}

	user, err := a.userRepository.FindUserByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			utils.VerifyDummyPassword(req.Password)
			return AuthResult{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by email failed")
		return AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := utils.VerifyPassword(req.Password, user.PasswordDigest)
	if err != nil {
		// A malformed stored digest is an authentication failure, not an
		// internal error.
		log.Err(err).Str("id", user.ID).Msg("stored password digest is malformed")
		return AuthResult{}, ErrInvalidCredentials
	}
	if !ok || !user.IsActive {
		return AuthResult{}, ErrInvalidCredentials
	}

	return a.mintTokenPair(ctx, user)
}

// Profile returns the user record for an authenticated subject.
func (a *authService) Profile(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// CreateToken issues a signed JWT of the given kind for the user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after the TTL
// matching its kind.
func (a *authService) CreateToken(ctx context.Context, userID string, kind models.TokenKind) (models.Token, error) {
	ttl := a.accessTokenTTL
	if kind == models.TokenKindRefresh {
		ttl = a.refreshTokenTTL
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, kind, ttl, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string against the expected
// kind. The utils sentinel errors (expired, malformed, bad signature, wrong
// kind) pass through so the transport layer can log the exact cause; all of
// them map to 401 at the boundary.
func (a *authService) ParseToken(ctx context.Context, tokenString string, expectedKind models.TokenKind) (models.Token, error) {
	return utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, expectedKind)
}

// mintTokenPair issues both tokens for an authenticated or freshly created
// user.
func (a *authService) mintTokenPair(ctx context.Context, user models.User) (AuthResult, error) {
	access, err := a.CreateToken(ctx, user.ID, models.TokenKindAccess)
	if err != nil {
		return AuthResult{}, err
	}

	refresh, err := a.CreateToken(ctx, user.ID, models.TokenKindRefresh)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: user, AccessToken: access, RefreshToken: refresh}, nil
}
