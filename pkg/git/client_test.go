package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if !IsInstalled() {
		t.Skip("git not installed")
	}
}

func TestClient_Lock(t *testing.T) {
	tmpDir := t.TempDir()
	client := NewClient(tmpDir, nil)

	unlock, err := client.Lock()
	require.NoError(t, err)

	lockPath := filepath.Join(tmpDir, LockFile)
	_, err = os.Stat(lockPath)
	assert.NoError(t, err, "lock file not created")

	t.Run("Contention Times Out", func(t *testing.T) {
		other := NewClient(tmpDir, nil)
		other.LockTimeout = 30 * time.Millisecond
		_, err := other.Lock()
		assert.Error(t, err)
	})

	unlock()

	_, err = os.Stat(lockPath)
	assert.True(t, os.IsNotExist(err), "lock file not removed after unlock")
}

func TestClient_Init(t *testing.T) {
	requireGit(t)
	tmpDir := t.TempDir()
	client := NewClient(tmpDir, nil)

	assert.False(t, client.IsRepo())
	require.NoError(t, client.Init())

	_, err := os.Stat(filepath.Join(tmpDir, ".git"))
	assert.NoError(t, err, ".git directory not created")
	assert.True(t, client.IsRepo())
}

func TestClient_CommitAndHistory(t *testing.T) {
	requireGit(t)
	tmpDir := t.TempDir()
	client := NewClient(tmpDir, nil)
	require.NoError(t, client.Init())

	file := filepath.Join(tmpDir, "notes_data.json")
	require.NoError(t, os.WriteFile(file, []byte("[]\n"), 0644))

	status, err := client.Status("notes_data.json")
	require.NoError(t, err)
	assert.Contains(t, status, "notes_data.json")

	require.NoError(t, client.Add("notes_data.json"))
	require.NoError(t, client.Commit("notes: first save"))

	status, err = client.Status("notes_data.json")
	require.NoError(t, err)
	assert.Empty(t, status)

	history, err := client.History(5, "notes_data.json")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Contains(t, history[0], "notes: first save")
}
