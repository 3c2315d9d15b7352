package service

import (
	"context"

	"github.com/MKhiriev/footy-tipping/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and validates bearer tokens.
type TokenService interface {
	// GenerateToken issues a signed token whose "id" claim holds user.ID.
	GenerateToken(user models.User) (models.Token, error)
	// ValidateToken returns the user id carried by a valid token. Any
	// failure (bad signature, wrong algorithm, expired, missing claims)
	// yields ok == false.
	ValidateToken(tokenString string) (userID int64, ok bool)
}

// UserService implements account management.
type UserService interface {
	Authenticate(ctx context.Context, req models.AuthenticateRequest) (models.AuthenticateResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	Update(ctx context.Context, id int64, req models.UpdateRequest) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
