package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir  = ".config/ssoctl"
	configFileName = "config.yaml"
)

// LoadConfig loads the ssoctl configuration by layering the user config
// file (if present) over the built-in defaults.
func LoadConfig() (Config, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional; warn and continue with defaults.
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
		return config, nil
	}

	if _, err := os.Stat(userConfigPath); os.IsNotExist(err) {
		return config, nil
	}

	userConfig, err := loadConfigFromFile(userConfigPath)
	if err != nil {
		return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	return mergeConfigs(config, userConfig), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return config, nil
}

// mergeConfigs overlays non-zero fields of overlay onto base.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.SSHBinary != "" {
		merged.SSHBinary = overlay.SSHBinary
	}
	if overlay.AWSBinary != "" {
		merged.AWSBinary = overlay.AWSBinary
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	if overlay.Timeouts.TunnelReady > 0 {
		merged.Timeouts.TunnelReady = overlay.Timeouts.TunnelReady
	}
	if overlay.Timeouts.SettleDelay > 0 {
		merged.Timeouts.SettleDelay = overlay.Timeouts.SettleDelay
	}
	if overlay.Timeouts.GracefulKill > 0 {
		merged.Timeouts.GracefulKill = overlay.Timeouts.GracefulKill
	}
	if overlay.Timeouts.ProfileList > 0 {
		merged.Timeouts.ProfileList = overlay.Timeouts.ProfileList
	}

	return merged
}
