package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadLocomotion reads a YAML tuning file and merges it over base.
// Keys missing from the file keep their value from base.
func LoadLocomotion(path string, base LocomotionConfig) (LocomotionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read tuning file %s: %w", path, err)
	}
	return ParseLocomotion(data, base)
}

// ParseLocomotion decodes YAML tuning data over base and validates the result.
func ParseLocomotion(data []byte, base LocomotionConfig) (LocomotionConfig, error) {
	merged := base
	if err := yaml.Unmarshal(data, &merged); err != nil {
		return base, fmt.Errorf("parse tuning: %w", err)
	}
	if err := merged.Validate(); err != nil {
		return base, err
	}
	return merged, nil
}
