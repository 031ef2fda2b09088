package archive_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stow/internal/adapters/archive"
	"go.trai.ch/stow/internal/core/domain"
)

func newStore() *archive.Store {
	return archive.NewStore(archive.NewCodec())
}

// writePayload creates a small package directory to compress.
func writePayload(t *testing.T, identifier string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "payload")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	content := "name: " + identifier + "\nversion: 0.0.0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.MetadataFileName), []byte(content), 0o600))
	return dir
}

func TestStore_WriteThenList(t *testing.T) {
	cache := t.TempDir()
	store := newStore()
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, cache, "left-pad", "1.3.0", writePayload(t, "left-pad")))
	require.NoError(t, store.Write(ctx, cache, "@acme/utils", "2.0.1", writePayload(t, "@acme/utils")))

	set, err := store.List(cache)
	require.NoError(t, err)
	assert.Equal(t, domain.ArchiveSet{
		"left-pad":    "1.3.0",
		"@acme/utils": "2.0.1",
	}, set)
}

func TestStore_ListEmptyAndMissingCache(t *testing.T) {
	store := newStore()

	set, err := store.List(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, set)

	set, err = store.List(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestStore_ListSkipsUndecodableEntries(t *testing.T) {
	cache := t.TempDir()
	store := newStore()

	require.NoError(t, store.Write(context.Background(), cache, "left-pad", "1.3.0", writePayload(t, "left-pad")))
	require.NoError(t, os.WriteFile(filepath.Join(cache, "README.md"), []byte("not an archive"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(cache, "noversion.tgz"), []byte("x"), 0o600))

	set, err := store.List(cache)
	require.NoError(t, err)
	assert.Equal(t, domain.ArchiveSet{"left-pad": "1.3.0"}, set)
}

func TestStore_Remove(t *testing.T) {
	cache := t.TempDir()
	store := newStore()

	require.NoError(t, store.Write(context.Background(), cache, "left-pad", "1.3.0", writePayload(t, "left-pad")))
	require.NoError(t, store.Remove(cache, "left-pad", "1.3.0"))

	set, err := store.List(cache)
	require.NoError(t, err)
	assert.Empty(t, set)

	// Removing a missing archive is an error.
	require.Error(t, store.Remove(cache, "left-pad", "1.3.0"))
}

func TestStore_ExtractAll_FiltersByPredicate(t *testing.T) {
	// Archives for {x, y} but only x included: y's directory must not appear.
	cache := t.TempDir()
	store := newStore()
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, cache, "x", "1.0.0", writePayload(t, "x")))
	require.NoError(t, store.Write(ctx, cache, "y", "1.0.0", writePayload(t, "y")))

	dest := t.TempDir()
	extracted, err := store.ExtractAll(ctx, cache, dest, func(id string) bool { return id == "x" })
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, extracted)

	_, err = os.Stat(filepath.Join(dest, "x", domain.MetadataFileName))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dest, "y"))
	assert.True(t, os.IsNotExist(err))
}

func TestStore_ExtractAll_ReplacesExistingDirectory(t *testing.T) {
	cache := t.TempDir()
	store := newStore()
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, cache, "pkg", "1.0.0", writePayload(t, "pkg")))

	dest := t.TempDir()
	stale := filepath.Join(dest, "pkg", "stale.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o750))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o600))

	_, err := store.ExtractAll(ctx, cache, dest, func(string) bool { return true })
	require.NoError(t, err)

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "pre-existing content must be replaced, not merged")
	_, err = os.Stat(filepath.Join(dest, "pkg", domain.MetadataFileName))
	require.NoError(t, err)
}

func TestStore_ExtractAll_ScopedDestination(t *testing.T) {
	cache := t.TempDir()
	store := newStore()
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, cache, "@acme/utils", "2.0.1", writePayload(t, "@acme/utils")))

	dest := t.TempDir()
	extracted, err := store.ExtractAll(ctx, cache, dest, func(string) bool { return true })
	require.NoError(t, err)
	assert.Equal(t, []string{"@acme/utils"}, extracted)

	_, err = os.Stat(filepath.Join(dest, "@acme", "utils", domain.MetadataFileName))
	require.NoError(t, err)
}

func TestStore_ExtractAll_DeterministicOrder(t *testing.T) {
	cache := t.TempDir()
	store := newStore()
	ctx := context.Background()

	for _, id := range []string{"zeta", "alpha", "@acme/utils"} {
		require.NoError(t, store.Write(ctx, cache, id, "1.0.0", writePayload(t, id)))
	}

	extracted, err := store.ExtractAll(ctx, cache, t.TempDir(), func(string) bool { return true })
	require.NoError(t, err)
	assert.Equal(t, []string{"@acme/utils", "alpha", "zeta"}, extracted)
}
