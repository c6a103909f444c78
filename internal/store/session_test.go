package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trvanh/storefront/internal/storage/memory"
	apperrors "github.com/trvanh/storefront/pkg/errors"
)

func newSessionStore(t *testing.T) (*SessionStore, *memory.Adapter) {
	t.Helper()
	adapter := memory.New()
	return NewSessionStore(context.Background(), adapter, testLogger()), adapter
}

func TestLogin(t *testing.T) {
	s, _ := newSessionStore(t)

	p, err := s.Login(context.Background(), Profile{
		Email:     "shopper@example.com",
		FirstName: "Linh",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.True(t, s.IsLoggedIn())

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "shopper@example.com", current.Email)
}

func TestLogin_KeepsProvidedID(t *testing.T) {
	s, _ := newSessionStore(t)

	p, err := s.Login(context.Background(), Profile{ID: "user-42", Email: "a@b.c"})

	require.NoError(t, err)
	assert.Equal(t, "user-42", p.ID)
}

func TestLogin_EmailRequired(t *testing.T) {
	s, _ := newSessionStore(t)

	_, err := s.Login(context.Background(), Profile{FirstName: "Linh"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	assert.False(t, s.IsLoggedIn())
}

func TestLogout(t *testing.T) {
	s, _ := newSessionStore(t)
	ctx := context.Background()

	_, err := s.Login(ctx, Profile{Email: "a@b.c"})
	require.NoError(t, err)

	s.Logout(ctx)

	assert.False(t, s.IsLoggedIn())
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestLogout_WhileSignedOutIsNoOp(t *testing.T) {
	s, _ := newSessionStore(t)

	var calls int
	cancel := s.Subscribe(func() { calls++ })
	defer cancel()

	s.Logout(context.Background())

	assert.Equal(t, 0, calls)
}

func TestSessionPersistence_RoundTripNewStore(t *testing.T) {
	adapter := memory.New()
	ctx := context.Background()
	s := NewSessionStore(ctx, adapter, testLogger())

	pref := "running"
	_, err := s.Login(ctx, Profile{Email: "a@b.c", ShoppingPref: &pref})
	require.NoError(t, err)

	fresh := NewSessionStore(ctx, adapter, testLogger())

	require.True(t, fresh.IsLoggedIn())
	current, _ := fresh.Current()
	assert.Equal(t, "a@b.c", current.Email)
	require.NotNil(t, current.ShoppingPref)
	assert.Equal(t, "running", *current.ShoppingPref)
}

func TestSessionPersistence_LogoutSurvivesRestart(t *testing.T) {
	adapter := memory.New()
	ctx := context.Background()
	s := NewSessionStore(ctx, adapter, testLogger())

	_, err := s.Login(ctx, Profile{Email: "a@b.c"})
	require.NoError(t, err)
	s.Logout(ctx)

	fresh := NewSessionStore(ctx, adapter, testLogger())

	assert.False(t, fresh.IsLoggedIn())
}

func TestSessionSubscribe(t *testing.T) {
	s, _ := newSessionStore(t)
	ctx := context.Background()

	var calls int
	cancel := s.Subscribe(func() { calls++ })
	defer cancel()

	_, err := s.Login(ctx, Profile{Email: "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	s.Logout(ctx)
	assert.Equal(t, 2, calls)
}
