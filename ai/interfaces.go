package ai

import (
	"context"

	"github.com/poiesic/notematch/core"
)

// Embedder generates vector embeddings from text for semantic similarity
// search. Queries and vocabulary terms are embedded through distinct methods
// because the underlying model distinguishes query inputs from document
// inputs by textual prefix; the two must match how the stored vocabulary
// embeddings were produced or similarity scores are meaningless.
// Implementations must return unit-length vectors and be thread-safe.
type Embedder interface {
	// EmbedQuery generates an embedding for a search query, applying the
	// query role prefix.
	EmbedQuery(ctx context.Context, text string) ([]float32, error)

	// EmbedTerms generates embeddings for vocabulary terms in a batch,
	// applying the document role prefix. The returned slice preserves
	// input order.
	EmbedTerms(ctx context.Context, terms []string) ([][]float32, error)
}

// TermMapper maps a barista search term to canonical tasting notes and
// processes. Implementations must be thread-safe.
type TermMapper interface {
	// MapTerm returns the canonical notes (max 8) and processes (max 3)
	// associated with the term. A response the mapper cannot parse yields
	// an empty mapping, not an error; errors are reserved for transport
	// failures.
	MapTerm(ctx context.Context, term string) (core.TermMapping, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// TermMapper returns the vocabulary enrichment service.
	// The returned TermMapper is safe for concurrent use.
	TermMapper() TermMapper

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
