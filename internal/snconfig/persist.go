package snconfig

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// Config is implemented by every persisted configuration type. ConfigName is
// called on the zero value of the type parameter, so implement it on a value
// receiver and use the non-pointer type as T. A ConfigName that panics on the
// zero value (typically a pointer receiver reading a field) yields
// ErrInvalidName.
type Config interface {
	ConfigName() string
}

// configName calls c.ConfigName, turning a panic into ErrInvalidName.
func configName(c Config) (name string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: ConfigName panicked on %T: %v", ErrInvalidName, c, r)
		}
	}()
	return c.ConfigName(), nil
}

// Defaulter marks a config type as default-capable. Load falls back to
// DefaultConfig when no file exists.
type Defaulter[T any] interface {
	DefaultConfig() T
}

// Name returns the normalized config name of T.
func Name[T Config]() (string, error) {
	var zero T
	name, err := configName(zero)
	if err != nil {
		return "", err
	}
	return normalizeName(name)
}

// HasDefault reports whether T provides compiled-in defaults.
func HasDefault[T Config]() bool {
	var zero T
	_, ok := any(zero).(Defaulter[T])
	return ok
}

// Path returns the file path backing T in s.
func Path[T Config](s *Store) (string, error) {
	name, err := Name[T]()
	if err != nil {
		return "", err
	}
	return s.PathFor(name)
}

// Exists reports whether a config file for T is present in s.
func Exists[T Config](s *Store) (bool, error) {
	path, err := Path[T](s)
	if err != nil {
		return false, err
	}
	if _, err := s.fs.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat config file: %w", err)
	}
	return true, nil
}

// Load reads T from its config file. When the file cannot be opened, Load
// returns T's defaults, or ErrNoDefaultAvailable if T has none. Top-level
// fields missing from the file take their default values; fields present in
// the file replace the default entirely. Load never creates files.
func Load[T Config](s *Store) (T, error) {
	var zero T
	name, err := Name[T]()
	if err != nil {
		return zero, err
	}
	path, err := s.PathFor(name)
	if err != nil {
		return zero, err
	}

	defaulter, hasDefault := any(zero).(Defaulter[T])

	file, err := s.fs.Open(path)
	if err != nil {
		if hasDefault {
			return defaulter.DefaultConfig(), nil
		}
		return zero, fmt.Errorf("%w (config %q)", ErrNoDefaultAvailable, name)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return zero, &MalformedError{Name: name, Path: path, Err: err}
	}

	value := zero
	if err := s.codec.Unmarshal(data, &value); err != nil {
		return zero, &MalformedError{Name: name, Path: path, Err: err}
	}
	if hasDefault {
		if err := fillMissing(s.codec, data, &value, defaulter.DefaultConfig()); err != nil {
			return zero, &MalformedError{Name: name, Path: path, Err: err}
		}
	}
	return value, nil
}

// SaveIfNotExists writes v to its config file unless the file already exists,
// in which case nothing is written and v is returned unchanged.
func SaveIfNotExists[T Config](s *Store, v T) (T, error) {
	name, err := configName(v)
	if err != nil {
		return v, err
	}
	path, err := s.PathFor(name)
	if err != nil {
		return v, err
	}

	data, err := s.codec.Marshal(v)
	if err != nil {
		return v, fmt.Errorf("encode config: %w", err)
	}

	w, err := s.fs.CreateExclusive(path, s.perm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return v, nil
		}
		return v, fmt.Errorf("create config file: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		_ = s.fs.Remove(path)
		return v, fmt.Errorf("write config file: %w", err)
	}
	if err := w.Close(); err != nil {
		_ = s.fs.Remove(path)
		return v, fmt.Errorf("close config file: %w", err)
	}

	return v, nil
}

// SaveDefaultsIfNotExists loads T and saves the result if no file exists yet.
// With no file present this writes T's defaults; otherwise it leaves the file
// untouched.
func SaveDefaultsIfNotExists[T Config](s *Store) error {
	cfg, err := Load[T](s)
	if err != nil {
		return err
	}
	if _, err := SaveIfNotExists(s, cfg); err != nil {
		return err
	}
	return nil
}
