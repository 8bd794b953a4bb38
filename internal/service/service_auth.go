// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-medcare/internal/config"
	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/internal/store"
	"github.com/MKhiriev/go-medcare/internal/utils"
	"github.com/MKhiriev/go-medcare/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It derives pseudonymous ids, stores bcrypt password hashes and issues
// session JWTs.
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

	bcryptCost int
	now        func() time.Time

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
		bcryptCost:     bcrypt.DefaultCost,
		now:            time.Now,
		logger:         logger,
	}
}

// Register creates a new account for the request identifier.
//
// Only the pseudonymous id is stored. A password, when given, is kept as a
// bcrypt hash.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if the identifier is empty.
//   - A wrapped store.ErrIdentityAlreadyExists if the account exists.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	raw := req.Raw()
	if raw == "" {
		log.Error().Str("func", "*authService.Register").Msg("no identifier provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrMissingIdentity)
	}

	user := models.User{
		PseudonymousID: utils.Anonymize(raw),
		DisplayName:    strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		CreatedAt:      a.now().UTC(),
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
		if err != nil {
			log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
			return models.User{}, fmt.Errorf("error hashing password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	registered, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("pseudonymous_id", user.PseudonymousID).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registered, nil
}

// Login authenticates the request identifier.
//
// An unknown identifier without a password is registered on the spot
// (passwordless login). Accounts holding a password hash require the
// matching password; accounts without one accept any request.
//
// Returns the user or:
//   - ErrMissingIdentity if the identifier is empty.
//   - ErrInvalidCredentials on an unknown identifier with a password or a
//     password mismatch.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	raw := req.Raw()
	if raw == "" {
		return models.User{}, ErrMissingIdentity
	}
	pseudonym := utils.Anonymize(raw)

	found, err := a.userRepository.FindUserByPseudonym(ctx, pseudonym)
	if errors.Is(err, store.ErrNoUserWasFound) {
		if req.Password != "" {
			log.Warn().Str("pseudonymous_id", pseudonym).Msg("login with password for unknown user")
			return models.User{}, ErrInvalidCredentials
		}
		return a.upsert(ctx, pseudonym)
	}
	if err != nil {
		log.Err(err).Str("pseudonymous_id", pseudonym).Msg("user search by pseudonym failed")
		return models.User{}, fmt.Errorf("user search by pseudonym failed: %w", err)
	}

	if !found.HasPassword() {
		return found, nil
	}

	if err = bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Str("pseudonymous_id", pseudonym).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return found, nil
}

// upsert creates a passwordless account. A concurrent login may win the
// insert; the existing row is returned then.
func (a *authService) upsert(ctx context.Context, pseudonym string) (models.User, error) {
	created, err := a.userRepository.CreateUser(ctx, models.User{
		PseudonymousID: pseudonym,
		CreatedAt:      a.now().UTC(),
	})
	if errors.Is(err, store.ErrIdentityAlreadyExists) {
		created, err = a.userRepository.FindUserByPseudonym(ctx, pseudonym)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("passwordless login failed: %w", err)
	}
	return created, nil
}

// CreateToken issues a signed JWT whose subject is the user's pseudonymous id.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.PseudonymousID, a.tokenDuration, a.tokenSignKey)
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
