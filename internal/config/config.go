// Copyright (c) 2026 Keymaster Team
// otpentry - one-time password entry for the terminal
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads otpentry settings from defaults, otpentry.yaml,
// OTPENTRY_* environment variables and command-line flags using Viper, and
// writes default config files with go-yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type Config struct {
	Length   int    `mapstructure:"length" yaml:"length"`
	Masked   bool   `mapstructure:"masked" yaml:"masked"`
	Language string `mapstructure:"language" yaml:"language"`
	LogFile  string `mapstructure:"log-file" yaml:"log-file,omitempty"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose"`
}

var ErrInvalidLength = errors.New("length must be at least 1")

// Defaults returns the built-in values used when nothing else is set.
func Defaults() map[string]any {
	return map[string]any{
		"length":   6,
		"masked":   false,
		"language": "en",
		"verbose":  false,
	}
}

func (c Config) Validate() error {
	if c.Length < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidLength, c.Length)
	}
	return nil
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "otpentry")
		default: // Linux, macOS, etc.
			configDir = "/etc/otpentry"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "otpentry")
	}

	return filepath.Join(configDir, "otpentry.yaml"), nil
}

// LoadConfig resolves T from, in rising precedence: defaults, the first
// otpentry.yaml found (user dir, system dir, working dir) or configFile when
// given, OTPENTRY_* environment variables and the changed flags of cmd.
// A missing otpentry.yaml is not an error.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("otpentry")
	v.SetConfigType("yaml")

	// an explicit file has the highest precedence among files
	if configFile != nil && *configFile != "" {
		v.SetConfigFile(*configFile)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	v.SetEnvPrefix("otpentry")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}

// WriteConfigFile stores c as YAML in the user (or system) config location
// and returns the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := getConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}

	return path, nil
}

// ConfigExists reports whether the user (or, with system set, the
// system-wide) config file is present.
func ConfigExists(system bool) bool {
	path, err := getConfigPath(system)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}
