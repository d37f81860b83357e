package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yigit/courseplanner/internal/app/models"
	"github.com/yigit/courseplanner/internal/pkg/apperrors"
)

// DefaultPath is where the configuration file is looked up
const DefaultPath = "configs/config.yaml"

// defaultTableSize mirrors coursetable.DefaultSize
const defaultTableSize uint = 179

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string        `yaml:"port" env:"SERVER_PORT"`
		Mode            string        `yaml:"mode" env:"SERVER_MODE"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Table struct {
		Size uint `yaml:"size" env:"TABLE_SIZE"`
	} `yaml:"table"`

	Data struct {
		CoursesFile string `yaml:"courses_file" env:"COURSES_FILE"`
		LoadOnStart bool   `yaml:"load_on_start" env:"LOAD_ON_START"`
	} `yaml:"data"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables and validates it
func LoadConfig(configPath string) (*Config, error) {
	config, err := ReadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// ReadConfig loads configuration from a file and environment variables without
// validating it, so callers can apply further overrides first.
func ReadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// A missing file leaves the defaults in place
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	return config, nil
}

// Default returns a configuration holding only default values
func Default() *Config {
	config := &Config{}
	setDefaults(config)
	return config
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ShutdownTimeout = 10 * time.Second

	config.Table.Size = defaultTableSize

	config.Data.CoursesFile = models.DefaultCoursesFile
	config.Data.LoadOnStart = true

	config.Logging.Level = "info"
	config.Logging.Format = "text"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// Validate ensures that the configuration is usable
func (c *Config) Validate() error {
	if c.Table.Size == 0 {
		return apperrors.ErrInvalidTableSize
	}

	if strings.TrimSpace(c.Data.CoursesFile) == "" {
		return fmt.Errorf("%w: courses file is required", apperrors.ErrValidationFailed)
	}

	if c.Server.Port == "" {
		return fmt.Errorf("%w: server port is required", apperrors.ErrValidationFailed)
	}

	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown timeout must be positive", apperrors.ErrValidationFailed)
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
}
