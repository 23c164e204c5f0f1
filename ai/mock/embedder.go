package mock

import (
	"context"
	"hash/fnv"
	"sync/atomic"

	"github.com/poiesic/notematch/core"
)

// MockEmbedder is a test double for ai.Embedder.
// It allows custom behavior injection via function fields.
// Safe for concurrent use.
type MockEmbedder struct {
	// EmbedQueryFunc is called by EmbedQuery if set.
	// If nil, uses default deterministic behavior.
	EmbedQueryFunc func(ctx context.Context, text string) ([]float32, error)

	// EmbedTermsFunc is called by EmbedTerms if set.
	// If nil, uses default deterministic behavior.
	EmbedTermsFunc func(ctx context.Context, terms []string) ([][]float32, error)

	callCount atomic.Int64
}

// NewMockEmbedder creates a mock embedder with default deterministic behavior.
// Note: Returns concrete type to allow test assertions via GetMockEmbedder().
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

// EmbedQuery generates a deterministic unit vector based on text hash.
// The query role prefix is baked into the hash seed so query and document
// embeddings of the same text differ, as they would with a real model.
func (m *MockEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	m.callCount.Add(1)

	if m.EmbedQueryFunc != nil {
		return m.EmbedQueryFunc(ctx, text)
	}

	return DeterministicVector("query: "+text, 64), nil
}

// EmbedTerms generates deterministic unit vectors for multiple terms.
func (m *MockEmbedder) EmbedTerms(ctx context.Context, terms []string) ([][]float32, error) {
	m.callCount.Add(1)

	if m.EmbedTermsFunc != nil {
		return m.EmbedTermsFunc(ctx, terms)
	}

	vectors := make([][]float32, len(terms))
	for i, term := range terms {
		vectors[i] = DeterministicVector("passage: "+term, 64)
	}
	return vectors, nil
}

// CallCount returns the number of times any method was called.
func (m *MockEmbedder) CallCount() int {
	return int(m.callCount.Load())
}

// Reset clears the call count and custom functions.
func (m *MockEmbedder) Reset() {
	m.callCount.Store(0)
	m.EmbedQueryFunc = nil
	m.EmbedTermsFunc = nil
}

// DeterministicVector creates a unit-length embedding vector from text.
// It uses FNV hashing so the same text always produces the same vector.
func DeterministicVector(text string, dim int) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()

	vector := make([]float32, dim)
	for i := 0; i < dim; i++ {
		// Simple pseudo-random generation based on seed and index
		seed = seed*1664525 + 1013904223 // LCG constants
		vector[i] = float32(seed%2000)/1000.0 - 1.0
	}

	return core.NormalizeVector(vector)
}
