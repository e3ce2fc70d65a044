package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/multierr"

	"github.com/eugenenazirov/supernova/internal/snconfig"
)

var (
	// ErrDuplicateName indicates two config types claim the same config name.
	ErrDuplicateName = errors.New("config name already registered")
	// ErrUnknownConfig is returned for names that were never registered.
	ErrUnknownConfig = errors.New("unknown config")
)

// Entry exposes a registered config type without its Go type.
type Entry struct {
	Name       string
	HasDefault bool

	load         func(*snconfig.Store) (any, error)
	saveDefaults func(*snconfig.Store) error
	exists       func(*snconfig.Store) (bool, error)
}

// Registry maps config names to the operations of their config types and
// guards access with a RWMutex.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds T under its config name.
func Register[T snconfig.Config](r *Registry) error {
	name, err := snconfig.Name[T]()
	if err != nil {
		return err
	}

	entry := Entry{
		Name:       name,
		HasDefault: snconfig.HasDefault[T](),
		load: func(s *snconfig.Store) (any, error) {
			return snconfig.Load[T](s)
		},
		saveDefaults: snconfig.SaveDefaultsIfNotExists[T],
		exists:       snconfig.Exists[T],
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	r.entries[name] = entry
	return nil
}

// MustRegister is like Register but panics on error. Intended for wiring at
// program start.
func MustRegister[T snconfig.Config](r *Registry) {
	if err := Register[T](r); err != nil {
		panic(err)
	}
}

// Names returns the registered config names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	return entry, ok
}

func (r *Registry) lookup(name string) (Entry, error) {
	entry, ok := r.Lookup(name)
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownConfig, name)
	}
	return entry, nil
}

// Load loads the named config from s.
func (r *Registry) Load(s *snconfig.Store, name string) (any, error) {
	entry, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	return entry.load(s)
}

// Exists reports whether the named config has a file in s.
func (r *Registry) Exists(s *snconfig.Store, name string) (bool, error) {
	entry, err := r.lookup(name)
	if err != nil {
		return false, err
	}
	return entry.exists(s)
}

// SaveDefaults materializes the named config in s unless a file exists.
func (r *Registry) SaveDefaults(s *snconfig.Store, name string) error {
	entry, err := r.lookup(name)
	if err != nil {
		return err
	}
	return entry.saveDefaults(s)
}

// SaveAllDefaults runs SaveDefaults for every registered config. A failing
// config does not stop the rest; all failures are returned combined.
func (r *Registry) SaveAllDefaults(s *snconfig.Store) error {
	var errs error
	for _, name := range r.Names() {
		if err := r.SaveDefaults(s, name); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errs
}
