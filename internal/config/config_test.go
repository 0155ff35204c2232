package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		filePath  string
		wantErr   bool
		errString string
	}{
		{
			name:     "valid config file",
			filePath: "testdata/valid_config.yaml",
			wantErr:  false,
		},
		{
			name:      "non-existent file",
			filePath:  "testdata/nonexistent.yaml",
			wantErr:   true,
			errString: "failed to read config file",
		},
		{
			name:      "malformed yaml",
			filePath:  "testdata/malformed.yaml",
			wantErr:   true,
			errString: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.filePath)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errString)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)

				// Verify some key fields are populated
				assert.Equal(t, 8000, cfg.Server.Port)
				assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
				assert.Equal(t, "music-ai-generator-backend", cfg.App.Name)
				assert.Equal(t, "downloads", cfg.Generator.DownloadsDir)
				assert.Equal(t, 5, cfg.Generator.MinDuration)
				assert.Equal(t, 300, cfg.Generator.MaxDuration)
				assert.Equal(t, 30, cfg.Generator.DefaultDuration)
				assert.Equal(t, 500, cfg.Generator.MaxPromptLength)
			}
		})
	}
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8000},
		Generator: GeneratorConfig{
			DownloadsDir:    "downloads",
			MinDuration:     5,
			MaxDuration:     300,
			DefaultDuration: 30,
			MaxPromptLength: 500,
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantErr   bool
		errString string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:      "invalid server port - too low",
			mutate:    func(c *Config) { c.Server.Port = 0 },
			wantErr:   true,
			errString: "invalid server port",
		},
		{
			name:      "invalid server port - too high",
			mutate:    func(c *Config) { c.Server.Port = 70000 },
			wantErr:   true,
			errString: "invalid server port",
		},
		{
			name:      "missing downloads dir",
			mutate:    func(c *Config) { c.Generator.DownloadsDir = "" },
			wantErr:   true,
			errString: "downloads_dir is required",
		},
		{
			name:      "non-positive min duration",
			mutate:    func(c *Config) { c.Generator.MinDuration = 0 },
			wantErr:   true,
			errString: "min_duration must be greater than 0",
		},
		{
			name:      "max duration below min",
			mutate:    func(c *Config) { c.Generator.MaxDuration = 5 },
			wantErr:   true,
			errString: "max_duration must be greater than min_duration",
		},
		{
			name:      "default duration out of bounds",
			mutate:    func(c *Config) { c.Generator.DefaultDuration = 400 },
			wantErr:   true,
			errString: "default_duration must be between",
		},
		{
			name:      "non-positive prompt length",
			mutate:    func(c *Config) { c.Generator.MaxPromptLength = 0 },
			wantErr:   true,
			errString: "max_prompt_length must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errString)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
