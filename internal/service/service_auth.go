package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/app"
	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

// authService is the concrete implementation of AuthService.
// It looks users up by their credentials and manages the JWT token
// lifecycle.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login returns the user whose userName and email both match.
//
// Returns:
//   - ErrValidation if userName or email is empty.
//   - ErrBadCredentials if no user matches the pair.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Login(ctx context.Context, userName, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	if userName == "" {
		return models.User{}, newValidationError("userName", app.MsgMissingUserName)
	}
	if email == "" {
		return models.User{}, newValidationError("email", app.MsgMissingEmail)
	}

	user, err := a.userRepository.FindUserByCredentials(ctx, userName, email)
	if errors.Is(err, store.ErrNotFound) {
		log.Warn().Str("user_name", userName).Msg("login with unknown credentials")
		return models.User{}, ErrBadCredentials
	}
	if err != nil {
		log.Err(err).Str("user_name", userName).Msg("user search by credentials failed")
		return models.User{}, fmt.Errorf("user search by credentials failed: %w", err)
	}

	return user, nil
}

// CreateToken issues a signed JWT whose identity is the user's userName.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserName, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
