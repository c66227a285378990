package typeslocal

import (
	"errors"
	"fmt"
)

// ErrFilesystem matches every *FilesystemError via errors.Is.
var ErrFilesystem = errors.New("filesystem operation failed")

// ErrNoModules is returned when Create or Remove is called without names.
var ErrNoModules = errors.New("no module names given")

// FilesystemError reports a failed stub or config write. Modules processed
// earlier in the same call are not rolled back.
type FilesystemError struct {
	Op     string // "create", "remove" or "write"
	Module string // empty for config writes
	Path   string
	Err    error
}

func (e *FilesystemError) Error() string {
	if e.Module == "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s stub %s: %v", e.Op, e.Module, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

func (e *FilesystemError) Is(target error) bool { return target == ErrFilesystem }
