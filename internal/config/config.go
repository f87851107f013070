// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format            string `yaml:"format"`
		Categories        string `yaml:"categories"`
		IncludeRegulatory bool   `yaml:"include_regulatory"`
		Verbose           bool   `yaml:"verbose"`
		NoColor           bool   `yaml:"no_color"`
		Quiet             bool   `yaml:"quiet"`
	} `yaml:"defaults"`

	// Web server settings
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	// Profiles for different analysis scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents an analysis profile with specific settings
type Profile struct {
	Format            string `yaml:"format"`
	Categories        string `yaml:"categories"`
	IncludeRegulatory bool   `yaml:"include_regulatory"`
	Verbose           bool   `yaml:"verbose"`
	NoColor           bool   `yaml:"no_color"`
	Quiet             bool   `yaml:"quiet"`
	Description       string `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.Categories = "all"
	config.Defaults.IncludeRegulatory = true
	config.Defaults.Verbose = false
	config.Defaults.NoColor = false
	config.Defaults.Quiet = false
	config.Server.Port = 8080

	// A conservative built-in profile for scripted trustee review runs.
	config.Profiles["trustee-review"] = Profile{
		Format:            "json",
		Categories:        "all",
		IncludeRegulatory: true,
		Verbose:           false,
		NoColor:           true,
		Quiet:             true,
		Description:       "Machine-readable output for batch trustee file review",
	}

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Store defaults that YAML unmarshaling would silently zero when the
	// field is absent from the file.
	defaultIncludeRegulatory := config.Defaults.IncludeRegulatory
	defaultPort := config.Server.Port

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if !containsField(data, "defaults", "include_regulatory") {
		config.Defaults.IncludeRegulatory = defaultIncludeRegulatory
	}
	if config.Server.Port == 0 {
		config.Server.Port = defaultPort
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// validFormats are the output formats the formatter registry carries.
var validFormats = map[string]bool{"": true, "text": true, "json": true, "yaml": true, "csv": true}

// ValidateConfig rejects configurations that would fail later at output or
// dispatch time.
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}
	if !validFormats[config.Defaults.Format] {
		return fmt.Errorf("unknown default format %q", config.Defaults.Format)
	}
	for name, profile := range config.Profiles {
		if !validFormats[profile.Format] {
			return fmt.Errorf("unknown format %q in profile %q", profile.Format, name)
		}
	}
	if config.Server.Port < 0 || config.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", config.Server.Port)
	}
	return nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first - prioritize config.yaml
	for _, name := range []string{"config.yaml", "formscan.yaml", "formscan.yml", ".formscan.yaml", ".formscan.yml"} {
		if fileExists(name) {
			return name
		}
	}

	// Environment override
	if configDir := os.Getenv("FORMSCAN_CONFIG_DIR"); configDir != "" {
		configFile := filepath.Join(configDir, "config.yaml")
		if fileExists(configFile) {
			return configFile
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	// Legacy location in the home directory
	homeConfig := filepath.Join(home, ".formscan", "config.yaml")
	if fileExists(homeConfig) {
		return homeConfig
	}

	// XDG config directory
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		xdgConfigFile := filepath.Join(xdgConfig, "formscan", name)
		if fileExists(xdgConfigFile) {
			return xdgConfigFile
		}
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// ListProfiles returns a list of available profile names
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// containsField checks if a nested field exists in the YAML data
func containsField(data []byte, path ...string) bool {
	var yamlData map[string]interface{}
	err := yaml.Unmarshal(data, &yamlData)
	if err != nil {
		return false
	}

	current := yamlData
	for i, key := range path {
		if i == len(path)-1 {
			_, exists := current[key]
			return exists
		}
		if next, ok := current[key].(map[string]interface{}); ok {
			current = next
		} else {
			return false
		}
	}
	return false
}

// LoadConfigOrDefault loads configuration from configFile (or searches standard locations
// when configFile is empty). If loading fails, it returns a default configuration.
// This is the shared helper used by both the CLI and the web server.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		// Fall back to defaults — callers should not crash on a missing/bad config file.
		cfg, _ = LoadConfig("")
	}
	return cfg
}
