package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/enzg/one-big-key-sub004/internal/config"
	"github.com/enzg/one-big-key-sub004/internal/logger"
	"github.com/enzg/one-big-key-sub004/internal/store"
	"github.com/enzg/one-big-key-sub004/internal/utils"
	"github.com/enzg/one-big-key-sub004/models"
)

// authService handles relay account registration, credential verification
// and JWT lifecycle. Passwords are hashed with HMAC-SHA256 before storage or
// comparison; the account salt minted at registration feeds the client-side
// encryption password and never changes afterwards.
type authService struct {
	userRepository store.UserRepository
	saltGenerator  *utils.UUIDGenerator

	// hashKey is the HMAC secret used when hashing passwords. Must match
	// the value used at registration time.
	hashKey string

	// tokenSignKey signs and verifies JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
func NewAuthService(userRepository store.UserRepository, cfg config.App, log *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		saltGenerator:  utils.NewUUIDGenerator(),
		hashKey:        cfg.PasswordHashKey,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         log,
	}
}

// RegisterUser creates a relay account. A fresh account salt is minted here
// and returned to the client, which derives all encryption passwords from it.
//
// Returns ErrInvalidDataProvided on missing fields and ErrLoginAlreadyTaken
// on a duplicate login.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user.Password = utils.HashString(user.Password, a.hashKey)
	user.AccountSalt = a.saltGenerator.Generate()

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrLoginAlreadyExists) {
			return models.User{}, ErrLoginAlreadyTaken
		}
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	registeredUser.Password = ""
	return registeredUser, nil
}

// Login authenticates an existing account and returns its record, account
// salt included, so a new device can rebuild its credential.
//
// Returns ErrInvalidDataProvided on missing fields and ErrInvalidCredentials
// on an unknown login or a wrong password; the two cases are deliberately
// indistinguishable to the caller.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, user.Login)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("login", user.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if !utils.VerifyHashString(user.Password, foundUser.Password, a.hashKey) {
		log.Warn().
			Int64("id", foundUser.UserID).
			Str("login", foundUser.Login).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	foundUser.Password = ""
	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user, carrying the configured
// issuer and expiring after the configured duration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
