package service

import (
	"context"

	"github.com/MKhiriev/footy-tipping/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientUserService defines the client-side contract for account management.
// It keeps the signed-in session in memory and on disk and replays its token
// on every authenticated call.
type ClientUserService interface {
	// RestoreSession loads the session saved by a previous run. Returns
	// ErrNotLoggedIn when there is none and ErrSessionExpired (after
	// forgetting it) when its token has expired.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Register creates an account on the server. It does not sign in.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login authenticates against the server and persists the session.
	Login(ctx context.Context, req models.AuthenticateRequest) (models.Session, error)

	// Logout forgets the session locally. The server keeps no session state.
	Logout(ctx context.Context) error

	// CurrentSession returns the in-memory session; it is empty when signed out.
	CurrentSession() models.Session

	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	Update(ctx context.Context, id int64, req models.UpdateRequest) error
	Delete(ctx context.Context, id int64) error

	// ServerVersion returns the version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
