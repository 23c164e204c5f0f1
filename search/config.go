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


package search

import (
	"fmt"
	"time"
)

// Config holds the scoring parameters for the matchers and the fusion
// ranker. It is passed explicitly so callers (notably the evaluation
// harness) can run multiple configurations side by side without
// interference from ambient state.
type Config struct {
	// Limit is the maximum number of fused results returned.
	Limit int

	// CandidateLimit is the widened per-matcher limit used when gathering
	// candidates for fusion, so the ranker has enough overlap to re-rank.
	CandidateLimit int

	// LexicalWeight scales lexical scores during fusion.
	LexicalWeight float64

	// VectorWeight scales renormalized semantic scores during fusion.
	// A term found by both matchers accumulates both weighted
	// contributions.
	VectorWeight float64

	// VectorThreshold is the minimum cosine similarity (inclusive) for a
	// semantic match. Must be < 1: fusion renormalizes semantic scores by
	// dividing by (1 - VectorThreshold).
	VectorThreshold float64

	// MinTokenLength is the minimum length, in runes, for a query token to
	// participate in lexical matching. Shorter tokens are too noisy for
	// fuzzy comparison. Empirical tuning choice, not a derived invariant.
	MinTokenLength int

	// TokenCutoff is the minimum fuzzy score (0-100 scale) for a per-token
	// lexical match.
	TokenCutoff float64

	// QueryCutoff is the minimum fuzzy score (0-100 scale) for the
	// whole-query lexical pass, which catches multi-word vocabulary terms.
	QueryCutoff float64

	// FuzzyLimit is how many top matches each fuzzy pass keeps.
	FuzzyLimit int

	// EmbedTimeout bounds the query embedding call. When it expires the
	// searcher degrades to lexical-only results instead of failing.
	EmbedTimeout time.Duration
}

// DefaultConfig returns the calibrated production configuration.
// The 0.4/0.6 weights encode a prior that semantic similarity is the more
// reliable signal for this vocabulary, while lexical matching reliably
// recovers typos and truncations that embeddings miss.
func DefaultConfig() Config {
	return Config{
		Limit:           10,
		CandidateLimit:  20,
		LexicalWeight:   0.4,
		VectorWeight:    0.6,
		VectorThreshold: 0.75,
		MinTokenLength:  3,
		TokenCutoff:     60,
		QueryCutoff:     50,
		FuzzyLimit:      5,
		EmbedTimeout:    10 * time.Second,
	}
}

// Validate checks the configuration at startup so misconfiguration is never
// a per-query runtime fault.
func (c Config) Validate() error {
	if c.Limit <= 0 {
		return fmt.Errorf("search config: Limit must be positive, got %d", c.Limit)
	}
	if c.CandidateLimit <= 0 {
		return fmt.Errorf("search config: CandidateLimit must be positive, got %d", c.CandidateLimit)
	}
	if c.LexicalWeight < 0 || c.VectorWeight < 0 {
		return fmt.Errorf("search config: weights must be non-negative")
	}
	if c.VectorThreshold < 0 || c.VectorThreshold >= 1 {
		// Threshold 1.0 would divide by zero during renormalization.
		return fmt.Errorf("search config: VectorThreshold must be in [0,1), got %g", c.VectorThreshold)
	}
	if c.MinTokenLength < 1 {
		return fmt.Errorf("search config: MinTokenLength must be at least 1, got %d", c.MinTokenLength)
	}
	if c.TokenCutoff < 0 || c.TokenCutoff > 100 || c.QueryCutoff < 0 || c.QueryCutoff > 100 {
		return fmt.Errorf("search config: fuzzy cutoffs must be in [0,100]")
	}
	if c.FuzzyLimit <= 0 {
		return fmt.Errorf("search config: FuzzyLimit must be positive, got %d", c.FuzzyLimit)
	}
	if c.EmbedTimeout <= 0 {
		return fmt.Errorf("search config: EmbedTimeout must be positive, got %s", c.EmbedTimeout)
	}
	return nil
}
