package stub

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidModuleName is returned for names that cannot be used as a
// directory below the stub root or as a path alias key.
var ErrInvalidModuleName = errors.New("invalid module name")

// ValidateModuleName checks that name is usable as a stub directory and alias
// key. Plain names ("mkdirp") and scoped names ("@scope/pkg") are accepted.
func ValidateModuleName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidModuleName)
	}
	if strings.ContainsRune(name, '\\') {
		return fmt.Errorf("%w %q: backslashes are not allowed", ErrInvalidModuleName, name)
	}
	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("%w %q: whitespace and control characters are not allowed", ErrInvalidModuleName, name)
		}
	}

	segments := strings.Split(name, "/")
	for _, s := range segments {
		if s == "" || s == "." || s == ".." {
			return fmt.Errorf("%w %q: empty or relative path segment", ErrInvalidModuleName, name)
		}
	}

	scoped := strings.HasPrefix(name, "@")
	switch {
	case scoped && len(segments) != 2:
		return fmt.Errorf("%w %q: scoped names must look like @scope/name", ErrInvalidModuleName, name)
	case scoped && segments[0] == "@":
		return fmt.Errorf("%w %q: scope is empty", ErrInvalidModuleName, name)
	case !scoped && len(segments) != 1:
		return fmt.Errorf("%w %q: only scoped names may contain '/'", ErrInvalidModuleName, name)
	case strings.HasPrefix(segments[len(segments)-1], "@"):
		return fmt.Errorf("%w %q: package name may not start with '@'", ErrInvalidModuleName, name)
	}
	return nil
}
