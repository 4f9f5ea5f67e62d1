package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotasker/internal/session"
)

func TestFileStoreStartsAnonymous(t *testing.T) {
	store := session.NewFileStore(filepath.Join(t.TempDir(), "token"))
	assert.Empty(t, store.Token())
}

func TestFileStoreSetPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := session.NewFileStore(path)

	require.NoError(t, store.Set("abc123"))
	assert.Equal(t, "abc123", store.Token())

	// A fresh store seeds from the file, like a process restart.
	reloaded := session.NewFileStore(path)
	assert.Equal(t, "abc123", reloaded.Token())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileStoreClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := session.NewFileStore(path)
	require.NoError(t, store.Set("abc123"))

	require.NoError(t, store.Clear())
	assert.Empty(t, store.Token())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreClearWhenAnonymous(t *testing.T) {
	store := session.NewFileStore(filepath.Join(t.TempDir(), "token"))
	assert.NoError(t, store.Clear())
}

func TestFileStoreSeedTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("abc123\n"), 0600))

	store := session.NewFileStore(path)
	assert.Equal(t, "abc123", store.Token())
}

func TestMemoryStore(t *testing.T) {
	store := session.NewMemory("")
	assert.Empty(t, store.Token())

	require.NoError(t, store.Set("tok"))
	assert.Equal(t, "tok", store.Token())

	require.NoError(t, store.Clear())
	assert.Empty(t, store.Token())
}
