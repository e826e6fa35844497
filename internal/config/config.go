/*
Package config holds the settings of command hangul.

Settings are read from the environment. An optional .env file is loaded
first; variables already set in the environment take precedence over
values in the file.

   HANGUL_MODE     compose | decompose        (default compose)
   HANGUL_COMPAT   accept and render compatibility jamo (default true)
   HANGUL_TRACE    error | info | debug       (default error)

Command line flags override these values.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables.
const (
	EnvMode   = "HANGUL_MODE"
	EnvCompat = "HANGUL_COMPAT"
	EnvTrace  = "HANGUL_TRACE"
)

// ErrUnknownMode is returned for a mode other than "compose" or "decompose".
var ErrUnknownMode = errors.New("config: unknown mode")

// ErrUnknownTraceLevel is returned for a trace level other than "error",
// "info" or "debug".
var ErrUnknownTraceLevel = errors.New("config: unknown trace level")

// Mode is the direction of the conversion.
type Mode int

// Modes of command hangul.
const (
	Compose Mode = iota
	Decompose
)

func (m Mode) String() string {
	switch m {
	case Compose:
		return "compose"
	case Decompose:
		return "decompose"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a mode name to a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "compose":
		return Compose, nil
	case "decompose":
		return Decompose, nil
	}
	return Compose, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Config holds the settings.
type Config struct {
	Mode   Mode
	Compat bool   // compatibility jamo
	Trace  string // trace level name
}

// Load reads the configuration. files are .env files to load; without
// arguments, Load looks for a file .env in the current directory. Missing
// files are not an error.
func Load(files ...string) (*Config, error) {
	for _, f := range envFiles(files) {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: cannot load %s: %w", f, err)
		}
	}
	cfg := &Config{}
	var err error
	if cfg.Mode, err = ParseMode(getEnv(EnvMode, "compose")); err != nil {
		return nil, fmt.Errorf("%s: %w", EnvMode, err)
	}
	if cfg.Compat, err = getEnvAsBool(EnvCompat, true); err != nil {
		return nil, err
	}
	if cfg.Trace, err = CheckTraceLevel(getEnv(EnvTrace, "error")); err != nil {
		return nil, fmt.Errorf("%s: %w", EnvTrace, err)
	}
	return cfg, nil
}

func envFiles(files []string) []string {
	if len(files) == 0 {
		return []string{".env"}
	}
	return files
}

// CheckTraceLevel validates a trace level name and returns it in lower case.
func CheckTraceLevel(name string) (string, error) {
	level := strings.ToLower(strings.TrimSpace(name))
	switch level {
	case "error", "info", "debug":
		return level, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTraceLevel, name)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue, fmt.Errorf("config: %s is not a boolean: %q", key, value)
	}
	return b, nil
}
