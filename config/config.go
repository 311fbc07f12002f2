// Package config reads the netatype command configuration.
//
// Values come from, in increasing priority: built-in defaults, an optional
// config file (any format viper understands, chosen by extension) and NETA_*
// environment variables ("creation.max_depth" is NETA_CREATION_MAX_DEPTH).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/go-playground/validator.v9"

	"github.com/katalvlaran/neta/log"
	"github.com/katalvlaran/neta/neta"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "NETA"

// ErrInvalidConfig indicates a configuration that failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the netatype configuration.
type Config struct {
	LogLevel string   `mapstructure:"log_level" validate:"required"`
	Creation Creation `mapstructure:"creation"`
}

// Creation holds the defaults for generating NETA descriptions.
type Creation struct {
	MaxDepth           int  `mapstructure:"max_depth" validate:"min=0"`
	IncludeRootElement bool `mapstructure:"include_root_element"`
}

// Default returns the built-in configuration.
func Default() *Config {
	c, err := decode(newViper())
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads the configuration file at path. An empty path uses only defaults
// and the environment.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("Load(%q): %w", path, err)
		}
		log.Debugf("config: read %s", v.ConfigFileUsed())
	}

	c, err := decode(v)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}
	return c, nil
}

// ViperSetDefaults sets the default values on v.
func ViperSetDefaults(v *viper.Viper) {
	keys := map[string]interface{}{
		"log_level":                     "info",
		"creation.max_depth":            0,
		"creation.include_root_element": false,
	}
	for k, value := range keys {
		v.SetDefault(k, value)
	}
}

// CreateOptions translates the creation settings into neta.Create options.
func (c *Config) CreateOptions() []neta.CreateOption {
	opts := []neta.CreateOption{neta.WithMaxDepth(c.Creation.MaxDepth)}
	if c.Creation.IncludeRootElement {
		opts = append(opts, neta.WithIncludeRootElement())
	}
	return opts
}

// Apply sets the configured level on the package logger and its modules.
func (c *Config) Apply() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("Apply: %w", err)
	}
	if err = log.SetLevel(level); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	ViperSetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		log.Debugf("config: unmarshaling failed: %v", err)
		return nil, err
	}
	if err := validator.New().Struct(c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return c, nil
}
