package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// TargetStops are display-name substrings identifying the stops whose
	// declared routes define the set of relevant routes
	TargetStops []string `yaml:"target_stops" validate:"min=1,dive,required"`
}

// Defaults returns the built-in configuration for the reference deployment
func Defaults() Config {
	return Config{
		TargetStops: []string{
			"B Narayanapura Ring Road",
			"Kalamandira",
			"Kadubisanahalli",
			"Eco Space",
			"14th Main HSR Layout",
		},
	}
}

// Load reads an optional YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	config := Defaults()

	if path != "" {
		contents, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(contents, &config); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
