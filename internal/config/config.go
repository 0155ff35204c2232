package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// MinPort is the minimum valid port number
	MinPort = 1
	// MaxPort is the maximum valid port number
	MaxPort = 65535
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	App       AppConfig       `yaml:"app"`
	Generator GeneratorConfig `yaml:"generator"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level        string `yaml:"level"`
	Format       string `yaml:"format"`
	Output       string `yaml:"output"`
	EnableCaller bool   `yaml:"enable_caller"`
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Environment string `yaml:"environment"`
}

// GeneratorConfig holds music generation settings
type GeneratorConfig struct {
	DownloadsDir    string `yaml:"downloads_dir"`
	MinDuration     int    `yaml:"min_duration"`
	MaxDuration     int    `yaml:"max_duration"`
	DefaultDuration int    `yaml:"default_duration"`
	MaxPromptLength int    `yaml:"max_prompt_length"`
}

// Load reads and parses the configuration file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port < MinPort || c.Server.Port > MaxPort {
		return fmt.Errorf("invalid server port: %d (must be between %d and %d)", c.Server.Port, MinPort, MaxPort)
	}

	if c.Generator.DownloadsDir == "" {
		return fmt.Errorf("generator downloads_dir is required")
	}

	if c.Generator.MinDuration <= 0 {
		return fmt.Errorf("generator min_duration must be greater than 0")
	}

	if c.Generator.MaxDuration <= c.Generator.MinDuration {
		return fmt.Errorf("generator max_duration must be greater than min_duration")
	}

	if c.Generator.DefaultDuration < c.Generator.MinDuration || c.Generator.DefaultDuration > c.Generator.MaxDuration {
		return fmt.Errorf("generator default_duration must be between min_duration and max_duration")
	}

	if c.Generator.MaxPromptLength <= 0 {
		return fmt.Errorf("generator max_prompt_length must be greater than 0")
	}

	return nil
}
