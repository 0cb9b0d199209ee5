package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/thenoetrevino/twodo/internal/config/colors"
	"github.com/thenoetrevino/twodo/internal/models"
	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config represents the application configuration
type Config struct {
	KeyMappings     KeyMappings        `yaml:"key_mappings"`
	ColorScheme     colors.ColorScheme `yaml:"theme"`
	Storage         StorageConfig      `yaml:"storage"`
	DefaultCategory string             `yaml:"default_category" validate:"category"`
	LogLevel        string             `yaml:"log_level" validate:"log_level"`
	DataDir         string             `yaml:"data_dir" validate:"required"`
}

// StorageConfig selects and configures the key/value backend
type StorageConfig struct {
	Backend      string        `yaml:"backend" validate:"oneof=sqlite redis memory"`
	Path         string        `yaml:"path" validate:"required_if=Backend sqlite"`
	RedisURL     string        `yaml:"redis_url" validate:"required_if=Backend redis"`
	KeyPrefix    string        `yaml:"key_prefix"`
	TasksKey     string        `yaml:"tasks_key" validate:"required"`
	CategoryKey  string        `yaml:"category_key" validate:"required,nefield=TasksKey"`
	WriteTimeout time.Duration `yaml:"write_timeout" validate:"gte=0"`
}

// Default returns a config with every value set to its default
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Category returns the parsed default category
func (c *Config) Category() models.Category {
	category, err := models.ParseCategory(c.DefaultCategory)
	if err != nil {
		return models.CategoryWork
	}
	return category
}

// loadThemeFile loads and merges theme from TWODO_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("TWODO_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv applies environment overrides
func applyEnv(config *Config) {
	if db := os.Getenv("TWODO_DB"); db != "" {
		config.Storage.Path = db
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		return finish(&Config{})
	}

	cfg, err := read(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return finish(&Config{})
	}
	if err != nil {
		return nil, err
	}
	return finish(cfg)
}

// LoadFrom loads config from an explicit path. Unlike Load, a missing file is an error.
func LoadFrom(path string) (*Config, error) {
	cfg, err := read(path)
	if err != nil {
		return nil, err
	}
	return finish(cfg)
}

// read parses the YAML file at path
func read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &config, nil
}

// finish layers the theme file, environment and defaults, then validates
func finish(config *Config) (*Config, error) {
	loadThemeFile(config)
	applyEnv(config)
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "twodo", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "twodo", "config.yaml"), nil
}

// defaultDataDir returns ~/.twodo, or .twodo when there is no home directory
func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".twodo"
	}
	return filepath.Join(homeDir, ".twodo")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()

	if c.DefaultCategory == "" {
		c.DefaultCategory = models.CategoryWork.String()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.DataDir == "" {
		c.DataDir = defaultDataDir()
	}
	c.Storage.applyDefaults(c.DataDir)
}

func (s *StorageConfig) applyDefaults(dataDir string) {
	if s.Backend == "" {
		s.Backend = BackendSQLite
	}
	if s.Path == "" {
		s.Path = filepath.Join(dataDir, "twodo.db")
	}
	if s.TasksKey == "" {
		s.TasksKey = "todoList"
	}
	if s.CategoryKey == "" {
		s.CategoryKey = "lastMove"
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 5 * time.Second
	}
}
