package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAreUsable(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "PantrySage", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Database.Backend)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.InDelta(t, 0.8, cfg.Matching.FuzzyThreshold, 1e-9)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	base := func() *Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"PortOutOfRange", func(c *Config) { c.Server.Port = 0 }},
		{"FuzzyThresholdAboveOne", func(c *Config) { c.Matching.FuzzyThreshold = 1.5 }},
		{"FuzzyThresholdZero", func(c *Config) { c.Matching.FuzzyThreshold = 0 }},
		{"NegativeWeight", func(c *Config) { c.Matching.UrgencyWeight = -0.1 }},
		{"UnknownDatabaseBackend", func(c *Config) { c.Database.Backend = "dynamo" }},
		{"UnknownCacheBackend", func(c *Config) { c.Cache.Backend = "memcached" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDSN_ContainsConnectionDetails(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: 5432, Username: "app", Password: "secret",
		Name: "pantrysage", SSLMode: "disable",
	}
	dsn := d.DSN()

	assert.Contains(t, dsn, "host=db")
	assert.Contains(t, dsn, "dbname=pantrysage")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestScoreConfig_MapsAllFields(t *testing.T) {
	m := MatchingConfig{
		CoverageWeight:    0.5,
		UrgencyWeight:     0.3,
		CostWeight:        0.2,
		UrgencyWindowDays: 5,
		CostCap:           10,
		FuzzyThreshold:    0.85,
	}
	sc := m.ScoreConfig()

	assert.InDelta(t, 0.5, sc.CoverageWeight, 1e-9)
	assert.InDelta(t, 0.3, sc.UrgencyWeight, 1e-9)
	assert.InDelta(t, 0.2, sc.CostWeight, 1e-9)
	assert.InDelta(t, 5.0, sc.UrgencyWindowDays, 1e-9)
	assert.InDelta(t, 10.0, sc.CostCap, 1e-9)
	assert.InDelta(t, 0.85, sc.FuzzyThreshold, 1e-9)
}
