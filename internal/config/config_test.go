package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	strong := func() *Config {
		return &Config{
			Port:           "8460",
			Env:            "production",
			JWTSecret:      "secure-secret-at-least-32-chars-long",
			DBPassword:     "secure-password",
			MinioSecretKey: "secure-minio-secret",
			DBSSLMode:      "require",
		}
	}

	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{"Production With Strong Settings", func(c *Config) {}, false},
		{"Prod Alias Is Also Strict", func(c *Config) {
			c.Env = "prod"
			c.JWTSecret = "short"
		}, true},
		{"Missing Port", func(c *Config) { c.Port = "" }, true},
		{"Missing JWT Secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Production With Default JWT Secret", func(c *Config) {
			c.JWTSecret = "your-secret-key-change-in-production"
		}, true},
		{"Production With Short JWT Secret", func(c *Config) {
			c.JWTSecret = "too-short"
		}, true},
		{"Production With Default DB Password", func(c *Config) {
			c.DBPassword = "password"
		}, true},
		{"Production With Empty DB Password", func(c *Config) {
			c.DBPassword = ""
		}, true},
		{"Production With Default Minio Secret", func(c *Config) {
			c.MinioSecretKey = "minioadmin"
		}, true},
		{"Development With Weak Defaults", func(c *Config) {
			c.Env = "development"
			c.JWTSecret = "your-secret-key-change-in-production"
			c.DBPassword = "password"
			c.MinioSecretKey = "minioadmin"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := strong()
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
