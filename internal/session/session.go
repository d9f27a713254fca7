// Package session owns the single authenticated identity of the portal
// instance. The session survives restarts through a JSON file in the state
// directory; there are no tokens and no expiry — it lasts until logout or
// until the file is removed externally.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"hospital-portal/internal/api"
	"hospital-portal/internal/model"
	"hospital-portal/pkg/logging"
)

// sessionFile is the fixed storage key for the persisted session record.
const sessionFile = "hos_user.json"

var ErrInvalidCredentials = errors.New("invalid credentials")

type Store struct {
	client   *api.Client
	stateDir string
	logger   *logging.Logger

	mu      sync.RWMutex
	current *model.User
}

func NewStore(client *api.Client, stateDir string, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{client: client, stateDir: stateDir, logger: logger}
}

// Login looks the user up by email and compares the password literally.
// On success the full record becomes the current session and is persisted.
func (s *Store) Login(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.client.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u.Password != password {
		return nil, ErrInvalidCredentials
	}

	s.mu.Lock()
	s.current = u
	s.mu.Unlock()

	if err := s.persist(u); err != nil {
		// The login itself stands; only the restore point is lost.
		s.logger.Warn("persist session", "err", err)
	}
	return u, nil
}

// Logout clears the session and removes the restore point.
func (s *Store) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("remove session file", "err", err)
	}
}

// Restore loads the persisted record at startup. Absent or malformed data
// leaves the session empty; malformed data is dropped, not surfaced.
func (s *Store) Restore() {
	b, err := os.ReadFile(s.path())
	if err != nil {
		return
	}
	var u model.User
	if err := json.Unmarshal(b, &u); err != nil || u.ID == "" {
		s.logger.Debug("dropping malformed session file")
		return
	}

	s.mu.Lock()
	s.current = &u
	s.mu.Unlock()
}

// Current returns the authenticated user, or nil when logged out. The
// returned value is a copy; mutating it does not affect the session.
func (s *Store) Current() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

func (s *Store) persist(u *model.User) error {
	if err := os.MkdirAll(s.stateDir, 0o755); err != nil {
		return err
	}
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), b, 0o600)
}

func (s *Store) path() string {
	return filepath.Join(s.stateDir, sessionFile)
}
