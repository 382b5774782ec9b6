// Package config holds the dev server settings.
package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Environment variables read by FromEnv.
const (
	EnvAddr     = "JOKEPAGE_ADDR"
	EnvWasmDir  = "JOKEPAGE_WASM_DIR"
	EnvLogLevel = "JOKEPAGE_LOG_LEVEL"
)

// Defaults.
const (
	DefaultAddr     = ":8080"
	DefaultWasmDir  = "build"
	DefaultLogLevel = "info"
)

// Config is the server configuration.
type Config struct {
	// Addr is the listen address.
	Addr string
	// WasmDir holds main.wasm and wasm_exec.js.
	WasmDir string
	// LogLevel is a logrus level name.
	LogLevel string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:     DefaultAddr,
		WasmDir:  DefaultWasmDir,
		LogLevel: DefaultLogLevel,
	}
}

// FromEnv returns Default overlaid with any set environment variables.
func FromEnv() Config {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) Config {
	cfg := Default()
	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup(EnvWasmDir); ok && v != "" {
		cfg.WasmDir = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	return cfg
}

// Validate checks that every field is usable.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("config: listen address is empty")
	}
	if c.WasmDir == "" {
		return fmt.Errorf("config: wasm directory is empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
