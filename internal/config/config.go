// Package config loads optional engine tunables from a TOML file, falling
// back to sensible defaults when no file is given. None of these settings
// affect the search or evaluation algorithms themselves; they only size
// the transposition table and label the engine's UCI identity.
package config

import "github.com/BurntSushi/toml"

// Config holds the engine's startup tunables.
type Config struct {
	Name         string `toml:"name"`
	Author       string `toml:"author"`
	TTByteBudget int    `toml:"tt_byte_budget"`
}

// defaultTTByteBudget matches the teacher's own default hash size (64MB).
const defaultTTByteBudget = 64 * 1024 * 1024

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Name:         "Corvid",
		Author:       "Corvid Authors",
		TTByteBudget: defaultTTByteBudget,
	}
}

// Load reads path as TOML, overlaying any fields present onto the
// defaults. Zero-valued fields in the file (an omitted key, or an
// explicit zero) are replaced by the default rather than left at zero,
// since a zero TT budget would otherwise silently disable memoisation.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Name == "" {
		cfg.Name = Default().Name
	}
	if cfg.Author == "" {
		cfg.Author = Default().Author
	}
	if cfg.TTByteBudget <= 0 {
		cfg.TTByteBudget = defaultTTByteBudget
	}
	return cfg, nil
}
