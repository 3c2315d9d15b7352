// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/footy-tipping/internal/config"
	"github.com/MKhiriev/footy-tipping/internal/logger"
	"github.com/MKhiriev/footy-tipping/internal/utils"
	"github.com/MKhiriev/footy-tipping/models"
)

// tokenService is the HS256 implementation of TokenService.
// All state is read-only after construction.
type tokenService struct {
	// signKey is the HMAC secret used to sign and verify tokens.
	signKey string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// now is the clock used for issuance and expiry checks.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the application config.
// A zero TokenDuration falls back to config.DefaultTokenDuration.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return newTokenService(cfg, time.Now, logger)
}

func newTokenService(cfg config.App, now func() time.Time, logger *logger.Logger) *tokenService {
	duration := cfg.TokenDuration
	if duration <= 0 {
		duration = config.DefaultTokenDuration
	}

	return &tokenService{
		signKey:       cfg.TokenSignKey,
		tokenDuration: duration,
		now:           now,
		logger:        logger,
	}
}

// GenerateToken issues a token for user that expires tokenDuration from now.
func (s *tokenService) GenerateToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(user.ID, s.now(), s.tokenDuration, s.signKey)
	if err != nil {
		s.logger.Err(err).Str("func", "*tokenService.GenerateToken").Int64("user_id", user.ID).Msg("error signing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ValidateToken fails closed: every parse or claim error yields (0, false).
func (s *tokenService) ValidateToken(tokenString string) (int64, bool) {
	if tokenString == "" {
		return 0, false
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.now)
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "*tokenService.ValidateToken").Msg("token rejected")
		return 0, false
	}

	return token.UserID, true
}
