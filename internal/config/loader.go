package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadVibe loads the vibe configuration.
// Search order: customPath -> ~/.vibe/configs/vibe.yaml -> ./configs/vibe.yaml -> embedded default
func LoadVibe(customPath string) (VibeConfig, error) {
	return load("vibe.yaml", customPath, defaultVibeYAML, DefaultVibeConfig)
}

// load resolves a config file along the search order. Every source is
// decoded over the hardcoded defaults, so a partial file only overrides
// the keys it sets.
func load[T any](filename, customPath string, embedded []byte, defaults func() T) (T, error) {
	// Custom path is explicit, so failures are reported
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return defaults(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data, defaults)
		if err != nil {
			return defaults(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data, defaults); err == nil {
			return cfg, nil
		}
	}

	cfg, err := decode(embedded, defaults)
	if err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decode[T any](data []byte, defaults func() T) (T, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vibe", "configs", filename)
}

// ApplyVibePreset modifies the config based on a difficulty preset.
func ApplyVibePreset(cfg *VibeConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Session.Lives = 5
		cfg.Arena.Fill = 0.15
	case DifficultyHard:
		cfg.Session.Lives = 2
		cfg.Arena.Fill = 0.35
	}
}

// Dump renders a config as YAML.
func Dump(cfg any) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
