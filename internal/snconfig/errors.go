package snconfig

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is returned when a config file exists but cannot be decoded.
	ErrMalformed = errors.New("error loading config from file")
	// ErrNoDefaultAvailable is returned when no config file exists and the type has no defaults.
	ErrNoDefaultAvailable = errors.New("unable to load config from file and there are no default values for this config; " +
		"consider implementing DefaultConfig for this type")
	// ErrInvalidName is returned when a config name cannot be mapped to a file directly under the root.
	ErrInvalidName = errors.New("invalid config name")
)

// MalformedError describes a config file that could not be read or decoded.
type MalformedError struct {
	Name string
	Path string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrMalformed, e.Path, e.Err)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// Is reports ErrMalformed as a match so callers can use errors.Is.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}
