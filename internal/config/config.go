// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package config loads runtime configuration layered defaults → optional
// YAML file → CLI flags (highest precedence), via github.com/knadh/koanf.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Config is the runtime's resolved configuration.
type Config struct {
	// GrammarPath is loaded from the grammar_path key. No subcommand reads
	// it: every subcommand takes its grammar path as an argument.
	GrammarPath string `koanf:"grammar_path"`

	// LogFormat is "text" or "json".
	LogFormat string `koanf:"log_format"`

	// RegistryEnabled toggles the optional Postgres-backed script run
	// registry; the interpreter runs standalone with zero external
	// services when this is false.
	RegistryEnabled bool `koanf:"registry_enabled"`

	// RegistryDSN is the Postgres connection string, consulted only when
	// RegistryEnabled is true.
	RegistryDSN string `koanf:"registry_dsn"`
}

func defaults() map[string]any {
	return map[string]any{
		"grammar_path":     "",
		"log_format":       "text",
		"registry_enabled": false,
		"registry_dsn":     "",
	}
}

// Load builds a Config from built-in defaults, an optional YAML file at
// path (skipped if path is empty or the file doesn't exist), and flags
// (highest precedence).
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, oops.Code("CONFIG_INVALID").Wrap(err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, oops.Code("CONFIG_INVALID").With("path", path).Wrap(err)
			}
		} else if !os.IsNotExist(err) {
			return nil, oops.Code("CONFIG_INVALID").With("path", path).Wrap(err)
		}
	}

	if flags != nil {
		// Flag names use dashes (--log-format); config keys use underscores.
		toKey := func(key, value string) (string, interface{}) {
			return strings.ReplaceAll(key, "-", "_"), value
		}
		if err := k.Load(posflag.ProviderWithValue(flags, ".", k, toKey), nil); err != nil {
			return nil, oops.Code("CONFIG_INVALID").Wrap(err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.Code("CONFIG_INVALID").Wrap(err)
	}
	return &cfg, nil
}
