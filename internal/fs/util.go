package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/akeil/notion/internal/logging"
)

// Move moves a file from src to dst.
// It tries os.Rename() first and falls back on "copy and delete".
//
// If src cannot be deleted after a successful copy,
// NO error is returned and src remains as it was.
func Move(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	// Rename may have failed when moving across file systems
	// so try again w/ copy & delete.
	logging.Debug("Rename failed for %v -> %v, fall back on copy and delete", src, dst)
	r, err := os.Open(src)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, r)
	if err != nil {
		w.Close()
		return err
	}
	err = w.Close()
	if err != nil {
		return err
	}

	// A bit untidy, but we carry on even if we fail to clean up behind us.
	ignoredErr := os.Remove(src)
	if ignoredErr != nil {
		logging.Error("Failed to remove file %v", src)
	}

	return nil
}

// WriteFile writes to a temporary file next to path and moves it into
// place once write returns without error.
// An existing file at path is left untouched if writing fails.
func WriteFile(path string, write func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	err = write(tmp)
	if err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	err = tmp.Close()
	if err != nil {
		os.Remove(tmpPath)
		return err
	}

	err = Move(tmpPath, path)
	if err != nil {
		os.Remove(tmpPath)
		return err
	}
	logging.Debug("Wrote %v", path)
	return nil
}

// EnsureFile creates an empty file at path, including missing parent
// directories, unless it already exists.
// Returns true if the file was created.
func EnsureFile(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, err
	}

	err = os.MkdirAll(filepath.Dir(path), 0700)
	if err != nil {
		return false, err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return false, err
	}
	logging.Info("Created %v", path)
	return true, f.Close()
}
