package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/supernova/internal/snconfig"
)

const (
	defaultLogLevel    = "info"
	defaultLogEncoding = "console"
	defaultFormat      = "json"
	defaultCodec       = "json"
)

// Config aggregates runtime settings for the supernova CLI.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	ConfigRoot  string `yaml:"config_root"`
	Codec       string `yaml:"codec"`
	Format      string `yaml:"format"`
	LogLevel    string `yaml:"log_level"`
	LogEncoding string `yaml:"log_encoding"`
}

// yamlConfig represents the YAML settings file structure.
type yamlConfig struct {
	ConfigRoot string      `yaml:"config_root"`
	Codec      string      `yaml:"codec"`
	Format     string      `yaml:"format"`
	Logging    yamlLogging `yaml:"logging"`
}

// yamlLogging represents the logging section in YAML.
type yamlLogging struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile  string
	ConfigRoot  *string
	Codec       *string
	Format      *string
	LogLevel    *string
	LogEncoding *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Apply environment variables
	applyEnvConfig(&cfg)

	// Load from YAML file if specified
	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		ConfigRoot:  ".",
		Codec:       defaultCodec,
		Format:      defaultFormat,
		LogLevel:    defaultLogLevel,
		LogEncoding: defaultLogEncoding,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	setIfNotEmpty(&cfg.ConfigRoot, yamlCfg.ConfigRoot)
	setIfNotEmpty(&cfg.Codec, yamlCfg.Codec)
	setIfNotEmpty(&cfg.Format, yamlCfg.Format)
	setIfNotEmpty(&cfg.LogLevel, yamlCfg.Logging.Level)
	setIfNotEmpty(&cfg.LogEncoding, yamlCfg.Logging.Encoding)
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	cfg.ConfigRoot = snconfig.RootFromEnv()
	setIfNotEmpty(&cfg.Codec, os.Getenv("SUPERNOVA_CODEC"))
	setIfNotEmpty(&cfg.Format, os.Getenv("SUPERNOVA_FORMAT"))
	setIfNotEmpty(&cfg.LogLevel, os.Getenv("SUPERNOVA_LOG_LEVEL"))
	setIfNotEmpty(&cfg.LogEncoding, os.Getenv("SUPERNOVA_LOG_ENCODING"))
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	for dst, src := range map[*string]*string{
		&cfg.ConfigRoot:  overrides.ConfigRoot,
		&cfg.Codec:       overrides.Codec,
		&cfg.Format:      overrides.Format,
		&cfg.LogLevel:    overrides.LogLevel,
		&cfg.LogEncoding: overrides.LogEncoding,
	} {
		if src != nil {
			setIfNotEmpty(dst, *src)
		}
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if _, ok := snconfig.CodecByName(cfg.Codec); !ok {
		return fmt.Errorf("codec must be json or yaml, got %q", cfg.Codec)
	}
	if _, ok := snconfig.CodecByName(cfg.Format); !ok {
		return fmt.Errorf("format must be json or yaml, got %q", cfg.Format)
	}
	switch cfg.LogEncoding {
	case "json", "console":
	default:
		return fmt.Errorf("log encoding must be json or console, got %q", cfg.LogEncoding)
	}
	return nil
}

func setIfNotEmpty(dst *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*dst = value
	}
}
