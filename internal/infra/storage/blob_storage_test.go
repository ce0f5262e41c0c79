package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobStorage_Save(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewBlobStorage(ctx, "file://"+dir)
	require.NoError(t, err)
	defer store.Close()

	key, err := store.Save(ctx, "adjuntos/conductor/foto.jpg", "image/jpeg", []byte("evidencia"))
	require.NoError(t, err)
	assert.Equal(t, "adjuntos/conductor/foto.jpg", key)

	contents, err := os.ReadFile(filepath.Join(dir, "adjuntos", "conductor", "foto.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("evidencia"), contents)
}

func TestNewBlobStorage_UnknownScheme(t *testing.T) {
	store, err := NewBlobStorage(context.Background(), "bogus://bucket")
	assert.Nil(t, store)
	assert.Error(t, err)
}
