package platform

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/noteapp/pkg/adapters/fs"
)

// DevDir is the directory under os.TempDir that holds sandboxed data files.
const DevDir = "noteapp-dev"

// IsDevRun reports whether the process was built by `go run` or `go test`.
// Both build binaries in temporary directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(os.TempDir())) {
		return true
	}
	return strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe")
}

// ResolveDataPath returns where the data file really lives. With forceTemp,
// a path outside the temp directory is re-rooted under DevDir, keeping only
// its base name.
func ResolveDataPath(userPath string, forceTemp bool) string {
	if !forceTemp {
		if userPath == "" {
			return fs.DefaultFile
		}
		return userPath
	}

	cleanUserPath := filepath.Clean(userPath)
	if userPath != "" && filepath.IsAbs(cleanUserPath) {
		rel, err := filepath.Rel(os.TempDir(), cleanUserPath)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return cleanUserPath
		}
	}

	name := filepath.Base(cleanUserPath)
	if userPath == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		name = fs.DefaultFile
	}
	return filepath.Join(os.TempDir(), DevDir, name)
}
