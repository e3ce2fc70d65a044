package application

import (
	"bytes"
	"fmt"
	"io"
	"text/tabwriter"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/eugenenazirov/supernova/internal/config"
	"github.com/eugenenazirov/supernova/internal/decode"
	"github.com/eugenenazirov/supernova/internal/registry"
	"github.com/eugenenazirov/supernova/internal/snconfig"
)

// App encapsulates the config store, the registered config types and logging.
type App struct {
	store    *snconfig.Store
	registry *registry.Registry
	format   snconfig.Codec
	logger   *zap.Logger
}

// DefaultRegistry returns a registry holding every config type shipped with supernova.
func DefaultRegistry() *registry.Registry {
	reg := registry.New()
	registry.MustRegister[decode.Config](reg)
	return reg
}

// New initializes the application from the provided configuration. A nil
// registry means DefaultRegistry; opts are applied to the config store after
// the codec selected by cfg.
func New(cfg config.Config, logger *zap.Logger, reg *registry.Registry, opts ...snconfig.Option) (*App, error) {
	codec, ok := snconfig.CodecByName(cfg.Codec)
	if !ok {
		return nil, fmt.Errorf("unsupported codec %q", cfg.Codec)
	}
	format, ok := snconfig.CodecByName(cfg.Format)
	if !ok {
		return nil, fmt.Errorf("unsupported output format %q", cfg.Format)
	}
	if reg == nil {
		reg = DefaultRegistry()
	}

	return &App{
		store:    snconfig.NewStore(cfg.ConfigRoot, append([]snconfig.Option{snconfig.WithCodec(codec)}, opts...)...),
		registry: reg,
		format:   format,
		logger:   logger,
	}, nil
}

// Init writes defaults for every registered config that has no file yet.
// Existing files are left untouched.
func (a *App) Init() error {
	names := a.registry.Names()
	existed := make(map[string]bool, len(names))
	for _, name := range names {
		ok, err := a.registry.Exists(a.store, name)
		if err != nil {
			return err
		}
		existed[name] = ok
	}

	errs := a.registry.SaveAllDefaults(a.store)
	if errs != nil {
		errs = fmt.Errorf("save defaults: %w", errs)
	}

	for _, name := range names {
		path, err := a.store.PathFor(name)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		fields := []zap.Field{zap.String("name", name), zap.String("path", path)}

		if existed[name] {
			a.logger.Info("config kept", fields...)
			continue
		}
		ok, err := a.registry.Exists(a.store, name)
		switch {
		case err != nil:
			a.logger.Error("config state unknown", append(fields, zap.Error(err))...)
			errs = multierr.Append(errs, fmt.Errorf("check %s: %w", name, err))
		case ok:
			a.logger.Info("config created", fields...)
		default:
			a.logger.Warn("config not created", fields...)
		}
	}

	return errs
}

// Show writes the named config to w in the configured output format.
func (a *App) Show(w io.Writer, name string) error {
	value, err := a.registry.Load(a.store, name)
	if err != nil {
		return err
	}

	data, err := a.format.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}

	a.logger.Debug("config loaded", zap.String("name", name), zap.String("root", a.store.Root()))
	_, err = w.Write(data)
	return err
}

// List writes a table of the registered configs and their files to w.
func (a *App) List(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDEFAULT\tEXISTS\tPATH")

	for _, name := range a.registry.Names() {
		entry, _ := a.registry.Lookup(name)
		path, err := a.store.PathFor(name)
		if err != nil {
			return err
		}
		exists, err := a.registry.Exists(a.store, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%t\t%t\t%s\n", name, entry.HasDefault, exists, path)
	}

	return tw.Flush()
}

// Path returns the file path backing the named config.
func (a *App) Path(name string) (string, error) {
	if _, ok := a.registry.Lookup(name); !ok {
		return "", fmt.Errorf("%w: %s", registry.ErrUnknownConfig, name)
	}
	return a.store.PathFor(name)
}

// Store returns the config store used by the application.
func (a *App) Store() *snconfig.Store {
	return a.store
}
