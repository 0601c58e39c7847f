package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	type record struct {
		ID  string `json:"id"`
		Qty int    `json:"qty"`
	}

	in := []record{{ID: "a", Qty: 2}, {ID: "b", Qty: 1}}
	require.NoError(t, store.Save(KeyCartItems, in))

	var out []record
	require.NoError(t, store.Load(KeyCartItems, &out))
	assert.Equal(t, in, out)
}

func TestLoadMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var out []string
	assert.Error(t, store.Load("never.written", &out))
}

func TestLoadCorruptValue(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyCartItems+".json"), []byte("{not json"), 0o644))

	var out []string
	assert.Error(t, store.Load(KeyCartItems, &out))
}

func TestSaveReplacesPreviousValue(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("k", []int{1, 2, 3}))
	require.NoError(t, store.Save("k", []int{4}))

	var out []int
	require.NoError(t, store.Load("k", &out))
	assert.Equal(t, []int{4}, out)
}
