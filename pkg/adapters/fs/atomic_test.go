package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "notes.json")

		require.NoError(t, writeFileAtomic(filename, []byte("[]"), 0644))

		got, err := os.ReadFile(filename)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(got))
	})

	t.Run("Overwrites Existing File", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "notes.json")
		require.NoError(t, os.WriteFile(filename, []byte("a much longer initial payload"), 0644))

		require.NoError(t, writeFileAtomic(filename, []byte("short"), 0644))

		got, err := os.ReadFile(filename)
		require.NoError(t, err)
		assert.Equal(t, "short", string(got), "old bytes must not survive")
	})

	t.Run("Leaves No Temp Files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, writeFileAtomic(filepath.Join(dir, "notes.json"), []byte("{}"), 0644))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasPrefix(e.Name(), TempFilePrefix), "leftover %s", e.Name())
		}
		assert.Len(t, entries, 1)
	})

	t.Run("Respects Permissions", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "perm.json")
		require.NoError(t, writeFileAtomic(filename, []byte("secret"), 0600))

		info, err := os.Stat(filename)
		require.NoError(t, err)
		// Windows only honours the write bit; just log it.
		t.Logf("File permissions: %v", info.Mode())
	})

	t.Run("Keeps Existing Mode", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("Windows has no unix permission bits")
		}
		filename := filepath.Join(t.TempDir(), "notes.json")
		require.NoError(t, os.WriteFile(filename, []byte("[]"), 0600))
		require.NoError(t, os.Chmod(filename, 0600))

		require.NoError(t, writeFileAtomic(filename, []byte("[{}]"), 0644))

		info, err := os.Stat(filename)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("Fails if Directory Missing", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "missing_folder", "notes.json")
		assert.Error(t, writeFileAtomic(filename, []byte("fail"), 0644))
	})
}
