package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/apozdeyev/article-board/internal/config"
	"github.com/apozdeyev/article-board/internal/logger"
	"github.com/apozdeyev/article-board/internal/store"
	"github.com/apozdeyev/article-board/internal/utils"
	"github.com/apozdeyev/article-board/internal/validation"
	"github.com/apozdeyev/article-board/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account from a validated registration request.
//
// The password is bcrypt-hashed before anything touches the repository; the
// plaintext never leaves this function. Uniqueness is checked up front so the
// common duplicate case gets a clean error, and the database unique
// constraints remain the final authority under concurrent registration.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - store.ErrUserAlreadyExists if the email or username is taken.
//   - A wrapped error if hashing or persistence fails.
func (a *authService) Register(ctx context.Context, request validation.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByEmailOrUsername(ctx, request.Email, request.Username)
	if err == nil {
		log.Warn().Str("email", request.Email).Str("username", request.Username).Msg("registration rejected: user already exists")
		return models.User{}, store.ErrUserAlreadyExists
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Msg("user uniqueness check failed")
		return models.User{}, fmt.Errorf("user uniqueness check failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: passwordHash,
	}

	createdUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// Login authenticates an existing user.
//
// It looks the account up by email and compares the supplied password against
// the stored bcrypt hash. An unknown email and a wrong password both collapse
// to ErrInvalidCredentials so a caller cannot probe which emails are
// registered.
func (a *authService) Login(ctx context.Context, request validation.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("email", request.Email).Msg("login failed: unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(request.Password, foundUser.PasswordHash) {
		log.Warn().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("login failed: wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
