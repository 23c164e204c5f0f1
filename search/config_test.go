package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero limit", func(c *Config) { c.Limit = 0 }},
		{"zero candidate limit", func(c *Config) { c.CandidateLimit = 0 }},
		{"negative lexical weight", func(c *Config) { c.LexicalWeight = -0.1 }},
		{"negative vector weight", func(c *Config) { c.VectorWeight = -0.1 }},
		{"threshold at one", func(c *Config) { c.VectorThreshold = 1.0 }},
		{"threshold above one", func(c *Config) { c.VectorThreshold = 1.5 }},
		{"negative threshold", func(c *Config) { c.VectorThreshold = -0.2 }},
		{"zero min token length", func(c *Config) { c.MinTokenLength = 0 }},
		{"token cutoff above scale", func(c *Config) { c.TokenCutoff = 150 }},
		{"negative query cutoff", func(c *Config) { c.QueryCutoff = -5 }},
		{"zero fuzzy limit", func(c *Config) { c.FuzzyLimit = 0 }},
		{"zero embed timeout", func(c *Config) { c.EmbedTimeout = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfigThresholdJustBelowOneIsValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VectorThreshold = 0.999
	cfg.EmbedTimeout = time.Second
	assert.NoError(t, cfg.Validate())
}
