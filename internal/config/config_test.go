package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{
			JWTSecret:  "secure-secret-at-least-32-chars-long",
			Port:       "8260",
			DBPassword: "secure-password",
			DBSSLMode:  "require",
			Env:        "development",
		}
	}

	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{"Development defaults", func(c *Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Missing secret with auth disabled", func(c *Config) {
			c.JWTSecret = ""
			c.AuthDisabled = true
		}, false},
		{"Production OK", func(c *Config) { c.Env = "production" }, false},
		{"Production with default secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "your-secret-key-change-in-production"
		}, true},
		{"Production with short secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "short"
		}, true},
		{"Production with weak DB password", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "password"
		}, true},
		{"Prod alias is strict too", func(c *Config) {
			c.Env = "prod"
			c.JWTSecret = "short"
		}, true},
		{"Production auth disabled skips secret checks", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "short"
			c.AuthDisabled = true
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "8260", c.Port)
	assert.Equal(t, "stockroom", c.DBName)
	assert.Equal(t, "disable", c.DBSSLMode)
	assert.False(t, c.AuthDisabled)
}

func TestLoadConfig_AuthDisabledFromEnv(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("AUTH_DISABLED")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")
	os.Setenv("AUTH_DISABLED", "true")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.True(t, c.AuthDisabled)
}
