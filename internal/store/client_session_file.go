package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/footy-tipping/models"
)

var ErrLocalSessionNotFound = errors.New("local session not found")

type fileSessionStorage struct {
	path string

	mu sync.Mutex
}

type localPersistedSession struct {
	Session models.Session `json:"session"`
	SavedAt time.Time      `json:"saved_at"`
}

// NewFileSessionStorage returns a SessionStorage backed by the JSON file at
// path. The file is created on the first save with owner-only permissions.
func NewFileSessionStorage(path string) (SessionStorage, error) {
	if path == "" {
		return nil, errors.New("empty session file path")
	}

	return &fileSessionStorage{path: path}, nil
}

func (s *fileSessionStorage) LoadSession(ctx context.Context) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Session{}, ErrLocalSessionNotFound
		}
		return models.Session{}, fmt.Errorf("read session file: %w", err)
	}

	var st localPersistedSession
	if err = json.Unmarshal(data, &st); err != nil {
		return models.Session{}, fmt.Errorf("decode session file: %w", err)
	}
	if st.Session.IsEmpty() {
		return models.Session{}, ErrLocalSessionNotFound
	}

	return st.Session, nil
}

func (s *fileSessionStorage) SaveSession(ctx context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(localPersistedSession{Session: session, SavedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

func (s *fileSessionStorage) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}

	return nil
}
