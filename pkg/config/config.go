// Package config loads luavend's layered configuration: built-in
// defaults merged with an optional operator-supplied TOML file.
package config

import (
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/luavend/pkg/errors"
)

// Config holds the resolved settings for one run.
type Config struct {
	// Entrypoint is the relative path of the file that receives the
	// prologue text during materialization.
	Entrypoint string

	// Extensions marks which files go through the substitution scan.
	Extensions []string

	// HostPrefixes are the recognized hosting-provider prefixes that
	// enable short-form alias rules.
	HostPrefixes []string
}

// Load returns the defaults merged with the optional config file at
// path. An empty path loads the built-in defaults only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load built-in defaults")
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", path)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
		}
	}

	return &Config{
		Entrypoint:   k.String("files.entrypoint"),
		Extensions:   k.Strings("files.extensions"),
		HostPrefixes: k.Strings("hosts.prefixes"),
	}, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// The embedded defaults are compiled in; failing to parse them
		// is a build defect.
		panic(err)
	}
	return cfg
}
