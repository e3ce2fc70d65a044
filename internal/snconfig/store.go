package snconfig

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// RootEnvVar names the environment variable holding the config root directory.
	RootEnvVar = "SUPERNOVA_CONFIG_PATH"

	defaultRoot     = "."
	defaultName     = "base"
	fileNamePrefix  = "sn-config-"
	defaultFileMode = fs.FileMode(0o644)
)

// Store resolves config file locations and holds the collaborators used to
// read and write them. A Store keeps no loaded values.
type Store struct {
	root  func() string
	codec Codec
	fs    FileSystem
	perm  fs.FileMode
}

// Option configures a Store.
type Option func(*Store)

// WithCodec overrides the default JSON codec.
func WithCodec(codec Codec) Option {
	return func(s *Store) {
		if codec != nil {
			s.codec = codec
		}
	}
}

// WithFileSystem overrides the filesystem, primarily for tests.
func WithFileSystem(fsys FileSystem) Option {
	return func(s *Store) {
		if fsys != nil {
			s.fs = fsys
		}
	}
}

// WithFileMode sets the permissions used when creating config files.
func WithFileMode(perm fs.FileMode) Option {
	return func(s *Store) {
		s.perm = perm
	}
}

// NewStore creates a Store rooted at root. An empty root means the current
// working directory.
func NewStore(root string, opts ...Option) *Store {
	if root == "" {
		root = defaultRoot
	}
	return newStore(func() string { return root }, opts)
}

// NewEnvStore creates a Store whose root is read from SUPERNOVA_CONFIG_PATH
// on every operation.
func NewEnvStore(opts ...Option) *Store {
	return newStore(RootFromEnv, opts)
}

func newStore(root func() string, opts []Option) *Store {
	s := &Store{
		root:  root,
		codec: JSONCodec{},
		fs:    OSFileSystem{},
		perm:  defaultFileMode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RootFromEnv returns the config root from the environment, defaulting to ".".
func RootFromEnv() string {
	if root := strings.TrimSpace(os.Getenv(RootEnvVar)); root != "" {
		return root
	}
	return defaultRoot
}

// Root returns the directory configs are currently resolved against.
func (s *Store) Root() string {
	return s.root()
}

// Codec returns the codec used for config files.
func (s *Store) Codec() Codec {
	return s.codec
}

// FileName returns the base file name for a config name.
func (s *Store) FileName(name string) (string, error) {
	name, err := normalizeName(name)
	if err != nil {
		return "", err
	}
	return fileNamePrefix + name + "." + s.codec.Extension(), nil
}

// PathFor returns the full path of the file backing the named config.
func (s *Store) PathFor(name string) (string, error) {
	file, err := s.FileName(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root(), file), nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return defaultName, nil
	}
	if name == "." || strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return name, nil
}
