// Copyright 2023 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Network string        `yaml:"network" envconfig:"NETWORK"`
	Output  OutputConfig  `yaml:"output"`
}

type LoggingConfig struct {
	Level string `yaml:"level" envconfig:"LOGGING_LEVEL"`
}

type OutputConfig struct {
	Format string `yaml:"format" envconfig:"OUTPUT_FORMAT"`
}

const (
	OutputFormatText = "text"
	OutputFormatJson = "json"
)

// Singleton config instance with default values
var globalConfig = &Config{
	Logging: LoggingConfig{
		Level: "info",
	},
	Network: "mainnet",
	Output: OutputConfig{
		Format: OutputFormatText,
	},
}

func Load(configFile string) (*Config, error) {
	// Load config file as YAML if provided
	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		err = yaml.Unmarshal(buf, globalConfig)
		if err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}
	// Load config values from environment variables
	// We use "dummy" as the app name here to (mostly) prevent picking up env
	// vars that we hadn't explicitly specified in annotations above
	err := envconfig.Process("dummy", globalConfig)
	if err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}
	// Check network
	globalConfig.Network = strings.ToLower(globalConfig.Network)
	if _, err := globalConfig.ChainParams(); err != nil {
		return nil, err
	}
	// Check output format
	globalConfig.Output.Format = strings.ToLower(globalConfig.Output.Format)
	availableFormats := []string{OutputFormatText, OutputFormatJson}
	if !slices.Contains(availableFormats, globalConfig.Output.Format) {
		return nil, fmt.Errorf(
			"unknown output format: %s: available formats: %s",
			globalConfig.Output.Format,
			strings.Join(availableFormats, ","),
		)
	}
	return globalConfig, nil
}

// GetConfig returns the global config instance
func GetConfig() *Config {
	return globalConfig
}
