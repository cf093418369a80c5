// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/tradingstudio/internal/strategy"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the base name of both the global and the project config file.
const FileName = "tradingstudio.yml"

// Config holds all configuration values for tradingstudio.
type Config struct {
	LogLevel      string `mapstructure:"log_level" yaml:"log_level"`
	LogFile       string `mapstructure:"log_file" yaml:"log_file"`
	Fixture       string `mapstructure:"fixture" yaml:"fixture"`
	HooksDir      string `mapstructure:"hooks_dir" yaml:"hooks_dir"`
	StateDir      string `mapstructure:"state_dir" yaml:"state_dir"`
	Theme         string `mapstructure:"theme" yaml:"theme"`
	DefaultStatus string `mapstructure:"default_status" yaml:"default_status"`
}

// Default returns the configuration used when no file or env var is set.
func Default() *Config {
	return &Config{
		LogLevel:      "info",
		HooksDir:      ".",
		StateDir:      ".tradingstudio",
		Theme:         "catppuccin-mocha",
		DefaultStatus: string(strategy.StatusDraft),
	}
}

// Load loads configuration with full precedence:
// ENV vars > project config > XDG global config > defaults.
// CLI flags are applied on top by the commands.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("tradingstudio")

	def := Default()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("fixture", def.Fixture)
	v.SetDefault("hooks_dir", def.HooksDir)
	v.SetDefault("state_dir", def.StateDir)
	v.SetDefault("theme", def.Theme)
	v.SetDefault("default_status", def.DefaultStatus)

	v.SetEnvPrefix("TRADINGSTUDIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range []string{"log_level", "log_file", "fixture", "hooks_dir", "state_dir", "theme", "default_status"} {
		if err := v.BindEnv(key, "TRADINGSTUDIO_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values the application cannot use.
func (c *Config) Validate() error {
	if c.Theme != "" && c.Theme != "catppuccin-mocha" {
		return fmt.Errorf("unsupported theme: %s", c.Theme)
	}
	if c.DefaultStatus != "" && !strategy.Status(c.DefaultStatus).IsValid() {
		return fmt.Errorf("invalid default_status: %s (must be Draft, Submitted, or Active)", c.DefaultStatus)
	}
	return nil
}

// CreatedStatus returns the status given to strategies created in the wizard.
func (c *Config) CreatedStatus() strategy.Status {
	return strategy.StatusFromString(c.DefaultStatus)
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/tradingstudio/tradingstudio.yml or $XDG_CONFIG_HOME/tradingstudio/tradingstudio.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tradingstudio", FileName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tradingstudio", FileName)
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return FileName
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
