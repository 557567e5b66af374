// Package config resolves the server settings from defaults, the
// environment (optionally seeded from a .env file) and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Addr     string
	LogLevel logrus.Level
	Solver   string
	Locales  string
	Language string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:     ":8080",
		LogLevel: logrus.InfoLevel,
		Solver:   "sat",
		Locales:  "./locales",
		Language: "en_US",
	}
}

// LoadDotEnv loads .env files into the process environment. A missing
// file is not an error.
func LoadDotEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Load resolves the configuration from the environment (through lookup)
// and args. Flags win over the environment.
func Load(args []string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	level := cfg.LogLevel.String()
	env := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	env("AKARI_ADDR", &cfg.Addr)
	env("AKARI_LOG_LEVEL", &level)
	env("AKARI_SOLVER", &cfg.Solver)
	env("AKARI_LOCALES", &cfg.Locales)
	env("AKARI_LANG", &cfg.Language)

	fs := flag.NewFlagSet("akari-web", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&level, "log-level", level, "debug|info|warn|error")
	fs.StringVar(&cfg.Solver, "solver", cfg.Solver, "solver to use: sat|backtrack")
	fs.StringVar(&cfg.Locales, "locales", cfg.Locales, "message catalog directory")
	fs.StringVar(&cfg.Language, "lang", cfg.Language, "message language")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return Config{}, fmt.Errorf("log level: %w", err)
	}
	cfg.LogLevel = lvl
	switch strings.ToLower(cfg.Solver) {
	case "sat", "backtrack", "backtracking":
		cfg.Solver = strings.ToLower(cfg.Solver)
	default:
		return Config{}, fmt.Errorf("unknown solver %q", cfg.Solver)
	}
	return cfg, nil
}
