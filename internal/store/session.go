package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/trvanh/storefront/internal/storage"
	apperrors "github.com/trvanh/storefront/pkg/errors"
)

// Profile is the persisted shopper identity.
type Profile struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	FirstName    string  `json:"first_name,omitempty"`
	LastName     string  `json:"last_name,omitempty"`
	ShoppingPref *string `json:"shopping_preference,omitempty"`
}

// SessionStore holds the current sign-in state, hydrated once at
// construction and written back on every change.
type SessionStore struct {
	adapter storage.Adapter
	logger  *slog.Logger

	mu      sync.Mutex
	profile *Profile

	subs notifier
}

func NewSessionStore(ctx context.Context, adapter storage.Adapter, logger *slog.Logger) *SessionStore {
	s := &SessionStore{
		adapter: adapter,
		logger:  logger,
	}

	var p Profile
	if storage.LoadJSON(ctx, adapter, storage.KeyUser, &p, logger) && p.ID != "" {
		s.profile = &p
	}
	return s
}

// Login replaces any existing session with the given profile. An empty
// ID gets a generated one; Email is required.
func (s *SessionStore) Login(ctx context.Context, p Profile) (Profile, error) {
	if p.Email == "" {
		return Profile{}, apperrors.InvalidInput("email is required")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	s.mu.Lock()
	s.profile = &p
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.subs.notify()
	s.logger.InfoContext(ctx, "user logged in", slog.String("user_id", p.ID))
	return p, nil
}

// Logout clears the session. Calling it while signed out is a no-op.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	if s.profile == nil {
		s.mu.Unlock()
		return
	}
	id := s.profile.ID
	s.profile = nil
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.subs.notify()
	s.logger.InfoContext(ctx, "user logged out", slog.String("user_id", id))
}

// Current returns the signed-in profile, or false when signed out.
func (s *SessionStore) Current() (Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return Profile{}, false
	}
	return *s.profile, true
}

func (s *SessionStore) IsLoggedIn() bool {
	_, ok := s.Current()
	return ok
}

// Subscribe registers fn to run after every session change.
func (s *SessionStore) Subscribe(fn func()) (cancel func()) {
	return s.subs.subscribe(fn)
}

func (s *SessionStore) persistLocked(ctx context.Context) {
	var p Profile
	if s.profile != nil {
		p = *s.profile
	}
	storage.SaveJSON(ctx, s.adapter, storage.KeyUser, p, s.logger)
}
