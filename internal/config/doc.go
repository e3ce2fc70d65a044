// Package config loads runtime settings for the supernova CLI from multiple
// sources (YAML file, environment variables, CLI flags) with precedence:
// CLI flags > YAML config > Environment variables > Defaults. The config root
// defaults to SUPERNOVA_CONFIG_PATH, or the working directory when unset.
package config
