package aoc

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config controls where puzzle input comes from.
type Config struct {
	Year        int    `toml:"year"`
	InputDir    string `toml:"input_dir"`
	SessionFile string `toml:"session_file"`
	// Fetch allows downloading missing input with the session cookie.
	Fetch bool `toml:"fetch"`
}

func DefaultConfig() Config {
	cfg := Config{
		Year:     2021,
		InputDir: ".",
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.SessionFile = filepath.Join(home, "keys", "aoc.session")
	}
	return cfg
}

// LoadConfig reads path over the defaults. A missing file is not an
// error; unknown keys are.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, errors.Wrapf(err, "config parse failed (%s)", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := ValidateConfig(cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func ValidateConfig(cfg Config) error {
	if cfg.Year < 2015 {
		return errors.Errorf("year %d predates Advent of Code", cfg.Year)
	}
	if strings.TrimSpace(cfg.InputDir) == "" {
		return errors.New("input_dir is required")
	}
	if cfg.Fetch && strings.TrimSpace(cfg.SessionFile) == "" {
		return errors.New("session_file is required when fetch is enabled")
	}
	return nil
}
