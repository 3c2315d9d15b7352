package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/footy-tipping/internal/adapter"
	"github.com/MKhiriev/footy-tipping/internal/logger"
	"github.com/MKhiriev/footy-tipping/internal/store"
	"github.com/MKhiriev/footy-tipping/internal/utils"
	"github.com/MKhiriev/footy-tipping/models"
)

type clientUserService struct {
	adapter  adapter.ServerAdapter
	sessions store.SessionStorage
	now      func() time.Time

	mu      sync.RWMutex
	session models.Session
}

func NewClientUserService(serverAdapter adapter.ServerAdapter, sessions store.SessionStorage) ClientUserService {
	return &clientUserService{adapter: serverAdapter, sessions: sessions, now: time.Now}
}

func (c *clientUserService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := c.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	// The client cannot verify the signature; the expiry is read only to
	// avoid a round trip that would certainly fail.
	claims, err := utils.ParseUnverifiedClaims(session.Token)
	if err != nil || claims.ExpiresAt == nil || !c.now().Before(claims.ExpiresAt.Time) {
		logger.FromContext(ctx).Info().Str("func", "*clientUserService.RestoreSession").Msg("saved session expired")
		if clearErr := c.sessions.ClearSession(ctx); clearErr != nil {
			return models.Session{}, fmt.Errorf("clear session: %w", clearErr)
		}
		return models.Session{}, ErrSessionExpired
	}

	c.setSession(session)
	return session, nil
}

func (c *clientUserService) Register(ctx context.Context, req models.RegisterRequest) error {
	return mapAdapterError(c.adapter.Register(ctx, req))
}

func (c *clientUserService) Login(ctx context.Context, req models.AuthenticateRequest) (models.Session, error) {
	resp, err := c.adapter.Authenticate(ctx, req)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	session := models.Session{User: resp.User(), Token: resp.Token}
	if err = c.sessions.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	c.setSession(session)
	return session, nil
}

func (c *clientUserService) Logout(ctx context.Context) error {
	c.setSession(models.Session{})
	return c.sessions.ClearSession(ctx)
}

func (c *clientUserService) CurrentSession() models.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

func (c *clientUserService) GetAll(ctx context.Context) ([]models.User, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}

	users, err := c.adapter.GetAll(ctx)
	if err != nil {
		return nil, c.handleError(ctx, err)
	}
	return users, nil
}

func (c *clientUserService) GetByID(ctx context.Context, id int64) (models.User, error) {
	if err := c.requireSession(); err != nil {
		return models.User{}, err
	}

	user, err := c.adapter.GetByID(ctx, id)
	if err != nil {
		return models.User{}, c.handleError(ctx, err)
	}
	return user, nil
}

// Update also refreshes the saved session when the signed-in user edits
// their own profile.
func (c *clientUserService) Update(ctx context.Context, id int64, req models.UpdateRequest) error {
	if err := c.requireSession(); err != nil {
		return err
	}

	if err := c.adapter.Update(ctx, id, req); err != nil {
		return c.handleError(ctx, err)
	}

	session := c.CurrentSession()
	if session.User.ID != id {
		return nil
	}

	req.Apply(&session.User)
	if err := c.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	c.setSession(session)
	return nil
}

// Delete signs out when the signed-in user deletes their own account.
func (c *clientUserService) Delete(ctx context.Context, id int64) error {
	if err := c.requireSession(); err != nil {
		return err
	}

	if err := c.adapter.Delete(ctx, id); err != nil {
		return c.handleError(ctx, err)
	}

	if c.CurrentSession().User.ID == id {
		return c.Logout(ctx)
	}
	return nil
}

func (c *clientUserService) ServerVersion(ctx context.Context) (string, error) {
	version, err := c.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}

func (c *clientUserService) setSession(session models.Session) {
	c.mu.Lock()
	c.session = session
	c.mu.Unlock()

	c.adapter.SetToken(session.Token)
}

func (c *clientUserService) requireSession() error {
	if c.CurrentSession().IsEmpty() {
		return ErrNotLoggedIn
	}
	return nil
}

// handleError signs out when the server rejected the token.
func (c *clientUserService) handleError(ctx context.Context, err error) error {
	if errors.Is(err, adapter.ErrUnauthorized) {
		if logoutErr := c.Logout(ctx); logoutErr != nil {
			logger.FromContext(ctx).Err(logoutErr).Str("func", "*clientUserService.handleError").Msg("error clearing session")
		}
	}
	return mapAdapterError(err)
}
