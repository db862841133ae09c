package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath returns <user config dir>/folder-icon/config.yaml.
// An empty string is returned when the user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "folder-icon", "config.yaml")
}

// LoadConfig reads the YAML file at configFile on top of Default().
// A missing file (or an empty path) is not an error: the defaults are returned.
// Keys left blank in the file keep their default value.
func LoadConfig(configFile string) (Config, error) {
	cfg := Default()
	if configFile == "" {
		return cfg, nil
	}

	// Read the raw YAML; absence simply means "use defaults"
	raw, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Default(), fmt.Errorf("failed to read %s: %w", configFile, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to unmarshal %s: %w", configFile, err)
	}

	// Restore defaults for keys present but blank
	if cfg.FolderType == "" {
		cfg.FolderType = DefaultFolderType
	}
	if cfg.Resample == "" {
		cfg.Resample = ResampleCatmullRom
	}

	switch cfg.Resample {
	case ResampleCatmullRom, ResampleBilinear, ResampleApproxBilinear, ResampleNearest:
	default:
		return Default(), fmt.Errorf("unknown resample %q in %s", cfg.Resample, configFile)
	}

	return cfg, nil
}
