// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Configuration loading with precedence: CLI > ENV > config file > defaults

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ConfigPaths returns the paths to check for config files in order
func ConfigPaths(dir string) []string {
	var paths []string

	// Working directory
	for _, name := range []string{".ai.yaml", ".ai.yml", ".ai.json"} {
		paths = append(paths, filepath.Join(dir, name))
	}

	// XDG config directory
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths,
			filepath.Join(xdg, "ai", "config.yaml"),
			filepath.Join(xdg, "ai", "config.yml"),
			filepath.Join(xdg, "ai", "config.json"),
		)
	}

	// Home directory
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "ai", "config.yaml"),
			filepath.Join(home, ".config", "ai", "config.yml"),
			filepath.Join(home, ".config", "ai", "config.json"),
		)
	}

	return paths
}

// LoadFile loads the first config file found for dir.
// It returns nil and an empty path when there is none.
func LoadFile(dir string) (*File, string, error) {
	for _, path := range ConfigPaths(dir) {
		cfg, err := loadFromPath(path)
		if err == nil {
			return cfg, path, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, path, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}
	return nil, "", nil
}

func loadFromPath(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg File

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

// LoadDotEnv loads dir/.env into the environment without overriding
// variables that are already set. A missing file is not an error.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load resolves the configuration for dir. flags maps configuration keys to
// the command-line flags overriding them; a flag only wins when it was set.
func Load(dir string, flags map[string]*pflag.Flag) (*Config, error) {
	if err := LoadDotEnv(dir); err != nil {
		return nil, err
	}

	file, source, err := LoadFile(dir)
	if err != nil {
		return nil, err
	}

	v, err := newViper(file, flags)
	if err != nil {
		return nil, err
	}

	cfg := resolve(v)
	cfg.Source = source
	return cfg, nil
}

func newViper(file *File, flags map[string]*pflag.Flag) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault(KeyAssistant, DefaultAssistant)
	v.SetDefault(KeyConfigDir, DefaultConfigDir)
	v.SetDefault(KeyKeepWorktree, false)

	if err := v.MergeConfigMap(file.values()); err != nil {
		return nil, fmt.Errorf("failed to merge config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	for _, key := range Keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	for key, flag := range flags {
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind --%s: %w", flag.Name, err)
		}
	}

	return v, nil
}

func resolve(v *viper.Viper) *Config {
	cfg := &Config{
		Model:        v.GetString(KeyModel),
		Assistant:    v.GetString(KeyAssistant),
		SetupCommand: v.GetString(KeySetupCommand),
		WorktreesDir: v.GetString(KeyWorktreesDir),
		KeepWorktree: v.GetBool(KeyKeepWorktree),
		ConfigDir:    v.GetString(KeyConfigDir),
		Shell:        v.GetString(KeyShell),
	}

	// An explicitly empty override still needs a usable value
	if cfg.Assistant == "" {
		cfg.Assistant = DefaultAssistant
	}
	if cfg.ConfigDir == "" {
		cfg.ConfigDir = DefaultConfigDir
	}
	return cfg
}

// EnvVar returns the environment variable that overrides key
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}
