// Package config loads the keyboard's startup configuration: the static
// Vial identity, the compressed layout definition blob, and the flash file
// backing combo persistence.
//
// Load reads and parses the yaml file only; Validate performs declarative
// checks and must be called before the configuration is used.
package config

import (
	"encoding/hex"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/drindr/rmk/pkg"
)

// Config is the root of the yaml configuration file.
type Config struct {
	Keyboard KeyboardConfig `yaml:"keyboard"`
	Flash    FlashConfig    `yaml:"flash"`
}

// KeyboardConfig identifies the keyboard to the configuration client.
type KeyboardConfig struct {
	// ID is the 8-byte Vial keyboard id as 16 hex characters.
	ID string `yaml:"id"`

	// Definition is the path to the compressed layout definition blob.
	Definition string `yaml:"definition"`
}

// FlashConfig locates the combo persistence file.
type FlashConfig struct {
	Path string `yaml:"path"`
}

// Load reads and parses the configuration file.
// It performs no validation.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks configuration correctness.
// It performs declarative validation only and MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if _, err := cfg.Keyboard.IDBytes(); err != nil {
		return err
	}
	if cfg.Keyboard.Definition == "" {
		return fmt.Errorf("config: %w: no definition path", pkg.ErrDefinitionEmpty)
	}
	if cfg.Flash.Path == "" {
		return fmt.Errorf("config: %w", pkg.ErrFlashPathEmpty)
	}
	return nil
}

// IDBytes decodes the keyboard id into its 8-byte wire form.
func (k KeyboardConfig) IDBytes() ([8]byte, error) {
	var id [8]byte
	raw, err := hex.DecodeString(k.ID)
	if err != nil {
		return id, fmt.Errorf("config: %w: %q is not hex", pkg.ErrInvalidKeyboardID, k.ID)
	}
	if len(raw) != len(id) {
		return id, fmt.Errorf("config: %w: got %d bytes, want %d",
			pkg.ErrInvalidKeyboardID, len(raw), len(id))
	}
	copy(id[:], raw)
	return id, nil
}

// ReadDefinition loads the compressed layout definition blob.
func (cfg *Config) ReadDefinition() ([]byte, error) {
	raw, err := os.ReadFile(cfg.Keyboard.Definition)
	if err != nil {
		return nil, fmt.Errorf("config: read definition: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("config: %w: %s", pkg.ErrDefinitionEmpty, cfg.Keyboard.Definition)
	}
	return raw, nil
}
