package service

import (
	"fmt"

	"github.com/MKhiriev/footy-tipping/internal/config"
	"github.com/MKhiriev/footy-tipping/internal/crypto"
	"github.com/MKhiriev/footy-tipping/internal/logger"
	"github.com/MKhiriev/footy-tipping/internal/store"
)

type Services struct {
	TokenService   TokenService
	UserService    UserService
	AppInfoService AppInfoService
}

// NewServices wires the server-side services. The user service is wrapped
// with request validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	tokens := NewTokenService(cfg.App, logger)
	users := NewUserService(storages, crypto.NewPasswordHasher(cfg.App.BcryptCost), tokens, logger)

	return &Services{
		TokenService:   tokens,
		UserService:    NewUserValidationService().Wrap(users),
		AppInfoService: appInfo,
	}, nil
}
