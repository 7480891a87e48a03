package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// TempFilePrefix marks the staging files of writeFileAtomic; the watcher
// ignores them.
const TempFilePrefix = ".noteapp-tmp-"

// writeFileAtomic replaces filename with data through a staging file in the
// same directory, so readers see either the old or the new notes. perm only
// applies when filename does not exist yet; an existing file keeps its mode.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	mode, err := targetMode(filename, perm)
	if err != nil {
		return err
	}

	dir := filepath.Dir(filename)
	staged, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("staging %s: %w", filename, err)
	}
	stagedName := staged.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(stagedName)
		}
	}()

	if err := fill(staged, data, mode); err != nil {
		return fmt.Errorf("staging %s: %w", filename, err)
	}
	if err := os.Rename(stagedName, filename); err != nil {
		return fmt.Errorf("replacing %s: %w", filename, err)
	}
	committed = true

	syncDir(dir)
	return nil
}

func targetMode(filename string, perm os.FileMode) (os.FileMode, error) {
	info, err := os.Stat(filename)
	switch {
	case err == nil:
		return info.Mode().Perm(), nil
	case errors.Is(err, fs.ErrNotExist):
		return perm, nil
	default:
		return 0, fmt.Errorf("inspecting %s: %w", filename, err)
	}
}

// fill writes, flushes and closes f, leaving it with the given mode.
func fill(f *os.File, data []byte, mode os.FileMode) error {
	_, err := f.Write(data)
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(f.Name(), mode)
	}
	return err
}

// syncDir persists the rename. Not every platform can fsync a directory, so
// failures are ignored.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}
