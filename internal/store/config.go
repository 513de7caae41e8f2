package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

// Config holds user-facing editor settings. Missing file or fields fall
// back to defaults; a corrupted file is treated as missing (best effort,
// like the rest of the editor-side state).
type Config struct {
	// Theme is the glamour style name for markdown cell previews
	// ("auto" picks light/dark from the terminal background).
	Theme string `yaml:"theme,omitempty"`
	// Autosave writes the notebook after every structural change.
	Autosave bool `yaml:"autosave,omitempty"`
}

func DefaultConfig() Config {
	return Config{Theme: "auto"}
}

func (s Store) configPath() string {
	return filepath.Join(s.Dir, configFileName)
}

func (s Store) LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(s.Dir) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(s.configPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return DefaultConfig(), nil
	}
	if strings.TrimSpace(cfg.Theme) == "" {
		cfg.Theme = "auto"
	}
	return cfg, nil
}

func (s Store) SaveConfig(cfg Config) error {
	if strings.TrimSpace(s.Dir) == "" {
		return nil
	}
	if err := s.Ensure(); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	path := s.configPath()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
