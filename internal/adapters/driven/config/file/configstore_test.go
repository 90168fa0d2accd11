package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("embedding.provider", "ollama"))
	require.NoError(t, store.Set("embedding.dimensions", 768))
	require.NoError(t, store.Set("storage.verbose", true))

	assert.Equal(t, "ollama", store.GetString("embedding.provider"))
	assert.Equal(t, 768, store.GetInt("embedding.dimensions"))
	assert.True(t, store.GetBool("storage.verbose"))
}

func TestConfigStore_MissingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("absent")
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString("absent"))
	assert.Equal(t, 0, store.GetInt("absent"))
	assert.False(t, store.GetBool("absent"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("blob.connection", "UseDevelopmentStorage=true"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "UseDevelopmentStorage=true", reopened.GetString("blob.connection"))
}

func TestConfigStore_LoadsNestedTOMLAsDotKeys(t *testing.T) {
	dir := t.TempDir()
	content := "[embedding]\nprovider = \"openai\"\nmodel = \"text-embedding-3-small\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "openai", store.GetString("embedding.provider"))
	assert.Equal(t, "text-embedding-3-small", store.GetString("embedding.model"))
}

func TestConfigStore_Path(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}
