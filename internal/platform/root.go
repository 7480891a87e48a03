package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindDataFile looks upwards from startDir for a file called name and returns
// its absolute path.
func FindDataFile(startDir, name string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if isFile(filepath.Join(dir, name)) {
			return filepath.Join(dir, name), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%s not found above %s", name, abs)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
