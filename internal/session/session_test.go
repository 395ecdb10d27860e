package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/example/flashdeck/internal/errs"
	"github.com/example/flashdeck/pkg/models"
)

func TestSaveAndLoad(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "session.json"))

	account := &models.Account{ID: "u-1", Email: "a@b.com", DisplayName: "Ann"}
	require.NoError(t, store.Save(account))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, account, loaded)
}

func TestLoadWithoutSession(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))

	_, err := store.Load()
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSaveOverwrites(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, store.Save(&models.Account{ID: "u-1", Email: "a@b.com", DisplayName: "Ann"}))
	require.NoError(t, store.Save(&models.Account{ID: "u-2", Email: "b@b.com", DisplayName: "Bob"}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "u-2", loaded.ID)
}

func TestClear(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, store.Save(&models.Account{ID: "u-1", Email: "a@b.com", DisplayName: "Ann"}))
	require.NoError(t, store.Clear())

	_, err := store.Load()
	require.ErrorIs(t, err, errs.ErrNotFound)

	// Clearing an absent session is a no-op.
	require.NoError(t, store.Clear())
}
