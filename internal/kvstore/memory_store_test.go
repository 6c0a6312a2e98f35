package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Set("key", `{"a":1}`))

	v, err := s.Get("key")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, v)
}

func TestMemoryStore_GetMissingKey(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get("yok")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Set("key", "v"))
	require.NoError(t, s.Delete("key"))

	_, err := s.Get("key")
	assert.ErrorIs(t, err, ErrNotFound)

	// Olmayan anahtarı silmek hata değil
	assert.NoError(t, s.Delete("key"))
}

func TestMemoryStore_Overwrite(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Set("key", "eski"))
	require.NoError(t, s.Set("key", "yeni"))

	v, err := s.Get("key")
	require.NoError(t, err)
	assert.Equal(t, "yeni", v)
}
