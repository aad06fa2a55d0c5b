package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/coinbase/basicsig-go/pkg/basicsig/logging"
)

const envPrefix = "BASICSIG"

// Config is the resolved CLI configuration. Values come, in increasing order
// of precedence, from defaults, the config file, BASICSIG_* environment
// variables and command-line flags.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Encoding string `mapstructure:"encoding"`
}

// overrides holds flag values that were explicitly set on the command line.
type overrides map[string]string

func loadConfig(path string, flags overrides) (*Config, error) {
	v := viper.New()
	v.SetDefault("log_level", "info")
	v.SetDefault("encoding", "hex")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		absPath, err := securePath(path)
		if err != nil {
			return nil, fmt.Errorf("secure path: %w", err)
		}
		v.SetConfigFile(absPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	for key, value := range flags {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	switch c.Encoding {
	case "hex", "base64":
		return nil
	default:
		return fmt.Errorf("encoding must be hex or base64, got %q", c.Encoding)
	}
}

func (c *Config) level() (slog.Level, error) {
	return logging.ParseLevel(c.LogLevel)
}

// decode parses a binary argument in the configured encoding.
func (c *Config) decode(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if c.Encoding == "base64" {
		return base64.StdEncoding.DecodeString(s)
	}
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}

// encode renders binary output in the configured encoding.
func (c *Config) encode(b []byte) string {
	if c.Encoding == "base64" {
		return base64.StdEncoding.EncodeToString(b)
	}
	return hex.EncodeToString(b)
}

// securePath validates that a file path doesn't escape the working directory.
// This prevents path traversal when loading user-specified files.
func securePath(path string) (string, error) {
	clean := filepath.Clean(path)
	absPath, err := filepath.Abs(clean)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}
	base, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	rel, err := filepath.Rel(base, absPath)
	if err != nil {
		return "", fmt.Errorf("relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %q escapes working directory", path)
	}
	return absPath, nil
}
