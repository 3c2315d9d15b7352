package store

import (
	"context"

	"github.com/MKhiriev/footy-tipping/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionStorage persists the client's signed-in session between runs.
type SessionStorage interface {
	// LoadSession returns the stored session or ErrLocalSessionNotFound.
	LoadSession(ctx context.Context) (models.Session, error)
	// SaveSession replaces the stored session.
	SaveSession(ctx context.Context, session models.Session) error
	// ClearSession forgets the stored session. Clearing an absent session is not an error.
	ClearSession(ctx context.Context) error
}
