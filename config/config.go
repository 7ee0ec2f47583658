// Package config loads the YAML configuration for the node diagnostics
// tooling.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

/* ---------------------------------  Config Struct -------------------------------- */

// Config is the top level struct parsed from the YAML config file.
type Config struct {
	Logger LoggerConfig `yaml:"logger"`
	Launch LaunchConfig `yaml:"launch"`
}

// LoadFromYAML reads a YAML configuration file from the specified path
// and unmarshals its content into a Config instance.
func LoadFromYAML(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var config Config
	if err = yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}

	// hydrate required fields and set defaults for optional fields
	config.hydrateDefaults()

	return config, config.validate()
}

/* --------------------------------- Config Methods -------------------------------- */

func (c *Config) hydrateDefaults() {
	c.Logger.hydrateLoggerDefaults()
	c.Launch.hydrateLaunchDefaults()
}

func (c Config) validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Launch.Validate()
}
