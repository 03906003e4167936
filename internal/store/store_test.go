package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jlehtis/kuitti-csv/internal/logging"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestAliasStoreLoadAndResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "merchants.yaml")
	writeFile(t, path, "K-MARKET TOOLONTORI: K-market Töölöntori\nS-MARKET SOKOS HELSINKI: S-Market Sokos\n")

	s := NewAliasStore(path, &logging.MockLogger{})
	require.NoError(t, s.Load())

	canonical, ok := s.Resolve("K-MARKET TOOLONTORI")
	assert.True(t, ok)
	assert.Equal(t, "K-market Töölöntori", canonical)

	_, ok = s.Resolve("Unknown Store")
	assert.False(t, ok)
}

func TestAliasStoreMissingFileIsNotAnError(t *testing.T) {
	s := NewAliasStore(filepath.Join(t.TempDir(), "nope.yaml"), &logging.MockLogger{})
	require.NoError(t, s.Load())

	_, ok := s.Resolve("anything")
	assert.False(t, ok)
}

func TestAliasStoreInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "merchants.yaml")
	writeFile(t, path, ":\n  - not a mapping\n")

	s := NewAliasStore(path, &logging.MockLogger{})
	assert.Error(t, s.Load())
}

func TestAliasStoreSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "merchants.yaml")

	s := NewAliasStore(path, &logging.MockLogger{})
	s.Add("K-MARKET TOOLONTORI", "K-market Töölöntori")
	require.NoError(t, s.Save())

	reloaded := NewAliasStore(path, &logging.MockLogger{})
	require.NoError(t, reloaded.Load())
	canonical, ok := reloaded.Resolve("K-MARKET TOOLONTORI")
	assert.True(t, ok)
	assert.Equal(t, "K-market Töölöntori", canonical)
}
