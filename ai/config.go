// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for AI service providers.
type Config struct {
	// EmbeddingHost is the base URL for the embedding service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	EmbeddingHost string

	// MapperHost is the base URL for the term-mapping (chat) service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	MapperHost string

	// EmbeddingModel is the model identifier to use for text embeddings.
	// Example: "e5-large-v2", "text-embedding-3-small"
	EmbeddingModel string

	// MapperModel is the model identifier to use for term mapping.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	MapperModel string

	// QueryPrefix is prepended to search queries before embedding.
	// For e5-family models this must be "query: ".
	QueryPrefix string

	// DocumentPrefix is prepended to vocabulary terms before embedding.
	// For e5-family models this must be "passage: ".
	// It must differ from QueryPrefix: the role asymmetry is a contract of
	// the embedding model, and stored vectors were produced with it.
	DocumentPrefix string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEmbeddingHost sets the embedding service host URL.
func WithEmbeddingHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithMapperHost sets the term-mapper service host URL.
func WithMapperHost(host string) ConfigOption {
	return func(c *Config) {
		c.MapperHost = host
	}
}

// WithHost sets both embedding and mapper hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
		c.MapperHost = host
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithMapperModel sets the mapper model identifier.
func WithMapperModel(model string) ConfigOption {
	return func(c *Config) {
		c.MapperModel = model
	}
}

// WithRolePrefixes sets the query and document role prefixes.
func WithRolePrefixes(query, document string) ConfigOption {
	return func(c *Config) {
		c.QueryPrefix = query
		c.DocumentPrefix = document
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services and e5-family role prefixes.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		EmbeddingHost:  defaultHost,
		MapperHost:     defaultHost,
		EmbeddingModel: "e5-large-v2",
		MapperModel:    "qwen2.5:3b",
		QueryPrefix:    "query: ",
		DocumentPrefix: "passage: ",
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options. This is the recommended way to create a Config with
// custom settings.
//
// Example:
//   cfg := NewConfig(
//       WithHost("http://localhost:11434/v1"),
//       WithEmbeddingModel("text-embedding-3-small"),
//   )
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to hosts if missing, which is required
// by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.EmbeddingHost != "" && !strings.HasSuffix(c.EmbeddingHost, "/v1") {
		c.EmbeddingHost = strings.TrimSuffix(c.EmbeddingHost, "/")
		c.EmbeddingHost = c.EmbeddingHost + "/v1"
	}
	if c.MapperHost != "" && !strings.HasSuffix(c.MapperHost, "/v1") {
		c.MapperHost = strings.TrimSuffix(c.MapperHost, "/")
		c.MapperHost = c.MapperHost + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.EmbeddingHost == "" {
		return errors.New("ai config: EmbeddingHost is required")
	}
	if c.MapperHost == "" {
		return errors.New("ai config: MapperHost is required")
	}
	if c.EmbeddingModel == "" {
		return errors.New("ai config: EmbeddingModel is required")
	}
	if c.MapperModel == "" {
		return errors.New("ai config: MapperModel is required")
	}
	if c.QueryPrefix == c.DocumentPrefix {
		return errors.New("ai config: QueryPrefix and DocumentPrefix must differ")
	}
	return nil
}
