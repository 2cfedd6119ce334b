package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "*/5 * * * *", cfg.Schedule)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 30*time.Second, cfg.JobTimeout)
	assert.True(t, cfg.RunOnStart)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "descriptor schedule", mutate: func(c *Config) { c.Schedule = "@every 1m" }},
		{name: "named zone", mutate: func(c *Config) { c.Timezone = "Asia/Seoul" }},
		{name: "bad schedule", mutate: func(c *Config) { c.Schedule = "every minute" }, wantErr: "schedule"},
		{name: "bad timezone", mutate: func(c *Config) { c.Timezone = "Mars/Olympus" }, wantErr: "timezone"},
		{name: "zero timeout", mutate: func(c *Config) { c.JobTimeout = 0 }, wantErr: "job timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_Validate_ReportsAll(t *testing.T) {
	cfg := Config{Schedule: "x", Timezone: "Nowhere/None", JobTimeout: -time.Second}
	err := cfg.Validate()
	assert.ErrorContains(t, err, "schedule")
	assert.ErrorContains(t, err, "timezone")
	assert.ErrorContains(t, err, "job timeout")
}
