// Package config loads the rpwavgen configuration file and validates the
// user-tunable synthesis arguments.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFilename = "rpwavgen.yaml"

// Defaults applied when the config file is absent or leaves a field unset.
const (
	DefaultNarrator = "com.apple.voice.enhanced.en-US.Allison"
	DefaultRate     = 175
	DefaultGain     = 1.0
	DefaultProvider = "say"
)

// Config holds the user-tunable settings. Everything here is a default the
// command line can override; the hardware playback profile itself is not
// configurable through this file.
type Config struct {
	// Narrator is the default synthesis voice.
	Narrator string `yaml:"narrator"`
	// Rate is the default speaking rate in words per minute (1-299).
	Rate int `yaml:"rate"`
	// Gain is the default output volume (0.01-1.0).
	Gain float64 `yaml:"gain"`
	// Provider selects the synthesis backend: "say" or "openai".
	Provider string `yaml:"provider"`
	// OpenAIKey authenticates the openai provider.
	OpenAIKey string `yaml:"openai_api_key"`
	// OpenAIModel overrides the speech model ("tts-1", "tts-1-hd").
	OpenAIModel string `yaml:"openai_model"`
	// OutputDir is the default output directory.
	OutputDir string `yaml:"output_dir"`
	// SynthesisTimeoutSeconds bounds the wait for the synthesis backend;
	// zero falls back to the pipeline default.
	SynthesisTimeoutSeconds int `yaml:"synthesis_timeout_seconds"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Narrator:  DefaultNarrator,
		Rate:      DefaultRate,
		Gain:      DefaultGain,
		Provider:  DefaultProvider,
		OutputDir: ".",
	}
}

// Load reads the configuration at path, or the default location
// (~/.config/rpwavgen/rpwavgen.yaml) when path is empty. A missing file is
// not an error; defaults are returned.
func Load(path string) (Config, error) {
	if path == "" {
		var err error
		path, err = defaultPath()
		if err != nil {
			return Config{}, err
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// SynthesisTimeout returns the configured timeout as a duration, or zero
// when unset.
func (c Config) SynthesisTimeout() time.Duration {
	return time.Duration(c.SynthesisTimeoutSeconds) * time.Second
}

func defaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".config", "rpwavgen", configFilename), nil
}
