package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDataPath(t *testing.T) {
	t.Parallel()

	tempRoot := os.TempDir()
	devBase := filepath.Join(tempRoot, DevDir)
	inTemp := filepath.Join(tempRoot, "case", "mine.json")

	tests := []struct {
		name      string
		userPath  string
		forceTemp bool
		expected  string
	}{
		{"Normal Mode - Empty", "", false, "notes_data.json"},
		{"Normal Mode - Specific Path", "/some/path/notes.json", false, "/some/path/notes.json"},
		{"Dev Mode - Empty Path", "", true, filepath.Join(devBase, "notes_data.json")},
		{"Dev Mode - Current Dir", ".", true, filepath.Join(devBase, "notes_data.json")},
		{"Dev Mode - Relative Name", "work.json", true, filepath.Join(devBase, "work.json")},
		{"Dev Mode - Clean Name", "../bad/path.yaml", true, filepath.Join(devBase, "path.yaml")},
		{"Dev Mode - Exception for Temp Dir", inTemp, true, inTemp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveDataPath(tt.userPath, tt.forceTemp))
		})
	}
}

func TestIsDevRun(t *testing.T) {
	assert.True(t, IsDevRun(), "test binaries count as dev runs")
}
