package tsconfig

import (
	"errors"
	"fmt"
)

// ErrConfigRead matches every *ConfigReadError via errors.Is.
var ErrConfigRead = errors.New("cannot read project configuration")

// ConfigReadError reports a tsconfig.json that is missing, unreadable, or not
// a valid JSON object of the expected shape.
type ConfigReadError struct {
	Path string
	Err  error
}

func (e *ConfigReadError) Error() string {
	return fmt.Sprintf("reading project config %s: %v", e.Path, e.Err)
}

func (e *ConfigReadError) Unwrap() error { return e.Err }

func (e *ConfigReadError) Is(target error) bool { return target == ErrConfigRead }
