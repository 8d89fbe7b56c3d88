// Package config provides configuration management for rofi-menu.
// It handles loading and merging configuration from the embedded default
// and the user config file.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultConfigData string

var globalConfig *Config

// Config структура
type Config struct {
	Selector SelectorConfig `toml:"selector"`
}

// SelectorConfig описва defaults за selector прозореца
type SelectorConfig struct {
	Command       string      `toml:"command"`
	Prompt        string      `toml:"prompt"`
	Theme         string      `toml:"theme"`
	CaseSensitive bool        `toml:"case_sensitive"`
	Markup        bool        `toml:"markup"`
	Password      bool        `toml:"password"`
	Lines         int         `toml:"lines"`
	Width         WidthConfig `toml:"width"`
}

// WidthConfig е width override за прозореца
type WidthConfig struct {
	Mode  string `toml:"mode"`
	Value int    `toml:"value"`
}

// SelectorConfigFile е за четене от TOML (с pointers за optional полета)
type SelectorConfigFile struct {
	Command       *string          `toml:"command"`
	Prompt        *string          `toml:"prompt"`
	Theme         *string          `toml:"theme"`
	CaseSensitive *bool            `toml:"case_sensitive"`
	Markup        *bool            `toml:"markup"`
	Password      *bool            `toml:"password"`
	Lines         *int             `toml:"lines"`
	Width         *WidthConfigFile `toml:"width"`
}

// WidthConfigFile е за четене от TOML
type WidthConfigFile struct {
	Mode  *string `toml:"mode"`
	Value *int    `toml:"value"`
}

// ConfigFile е за четене от TOML файл
type ConfigFile struct {
	Selector SelectorConfigFile `toml:"selector"`
}

// GetUserConfigPath връща пътя до user config
func GetUserConfigPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "rofi-menu", "config.toml")
}

// GetSystemConfigPath връща пътя до system config
func GetSystemConfigPath() string {
	return filepath.Join("/etc", "rofi-menu", "config.toml")
}

// Load зарежда конфигурацията: defaults, после user, после system
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	defaultCfg, err := loadDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	userConfigPath := GetUserConfigPath()
	if _, err := os.Stat(userConfigPath); err == nil {
		userCfg, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load user config: %v\n", err)
			fmt.Fprintf(os.Stderr, "Using default configuration\n")
			globalConfig = defaultCfg
			return globalConfig, nil
		}
		globalConfig = mergeConfigs(defaultCfg, userCfg)
		return globalConfig, nil
	}

	systemConfigPath := GetSystemConfigPath()
	if _, err := os.Stat(systemConfigPath); err == nil {
		systemCfg, err := loadConfigFromFile(systemConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load system config: %v\n", err)
			globalConfig = defaultCfg
			return globalConfig, nil
		}
		globalConfig = mergeConfigs(defaultCfg, systemCfg)
		return globalConfig, nil
	}

	globalConfig = defaultCfg
	return globalConfig, nil
}

// Get връща глобалния config (lazy load)
func Get() *Config {
	if globalConfig == nil {
		globalConfig, _ = Load()
	}
	return globalConfig
}

func loadDefaultConfig() (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(defaultConfigData, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse default config: %w", err)
	}
	return &cfg, nil
}

func loadConfigFromFile(path string) (*ConfigFile, error) {
	var cfg ConfigFile
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs мерджва user config върху defaults
func mergeConfigs(defaults *Config, user *ConfigFile) *Config {
	merged := *defaults

	s := &user.Selector
	if s.Command != nil && *s.Command != "" {
		merged.Selector.Command = *s.Command
	}
	if s.Prompt != nil {
		merged.Selector.Prompt = *s.Prompt
	}
	if s.Theme != nil {
		merged.Selector.Theme = *s.Theme
	}
	if s.CaseSensitive != nil {
		merged.Selector.CaseSensitive = *s.CaseSensitive
	}
	if s.Markup != nil {
		merged.Selector.Markup = *s.Markup
	}
	if s.Password != nil {
		merged.Selector.Password = *s.Password
	}
	if s.Lines != nil {
		merged.Selector.Lines = *s.Lines
	}
	if s.Width != nil {
		if s.Width.Mode != nil {
			merged.Selector.Width.Mode = *s.Width.Mode
		}
		if s.Width.Value != nil {
			merged.Selector.Width.Value = *s.Width.Value
		}
	}

	return &merged
}

// InitUserConfig копира default config в user config директорията
func InitUserConfig() error {
	userConfigPath := GetUserConfigPath()
	userConfigDir := filepath.Dir(userConfigPath)

	if _, err := os.Stat(userConfigPath); err == nil {
		return fmt.Errorf("config already exists: %s", userConfigPath)
	}

	if err := os.MkdirAll(userConfigDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(userConfigPath, []byte(defaultConfigData), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfigContent връща съдържанието на default config
func GetDefaultConfigContent() string {
	return defaultConfigData
}
