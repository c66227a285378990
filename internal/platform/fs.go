package platform

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/natefinch/atomic"
)

// Permission constants for generated files and directories.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// WriteFile atomically replaces path with data. The content is written to a
// temporary file in the same directory and renamed over the target, so readers
// never observe a partially written file. Newly created files get FilePerm;
// existing files keep their mode.
func WriteFile(path string, data []byte) error {
	_, statErr := os.Stat(path)
	existed := statErr == nil

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if !existed {
		if err := setFileMode(path); err != nil {
			return fmt.Errorf("setting permissions on %s: %w", path, err)
		}
	}
	return nil
}

// setFileMode gives a freshly renamed temp file FilePerm instead of the
// 0600 it was created with. Windows has no Unix permission bits.
func setFileMode(path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, FilePerm)
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// HasSubdirs reports whether dir contains at least one directory entry.
// A missing dir has none.
func HasSubdirs(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			return true, nil
		}
	}
	return false, nil
}

// PruneEmptyParents walks upward from dir to stop (inclusive), removing each
// directory that no longer contains any subdirectory. It stops at the first
// directory that still holds one. Stray files in a pruned directory are
// removed with it. dir must be stop or a descendant of stop.
func PruneEmptyParents(dir, stop string) error {
	dir = filepath.Clean(dir)
	stop = filepath.Clean(stop)

	for {
		rel, err := filepath.Rel(stop, dir)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return fmt.Errorf("%s is not inside %s", dir, stop)
		}

		busy, err := HasSubdirs(dir)
		if err != nil {
			return err
		}
		if busy {
			return nil
		}
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing %s: %w", dir, err)
		}

		if dir == stop {
			return nil
		}
		dir = filepath.Dir(dir)
	}
}
