package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/poiesic/notematch/core"
)

// QueryEmbedder is the slice of the AI provider the semantic matcher needs
// at query time. Implementations must apply the query-role prefix; the
// matcher passes raw text.
type QueryEmbedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// Semantic ranks vocabulary terms by cosine similarity between the query
// embedding and each term's stored vector. Terms at or above threshold
// qualify; the boundary is inclusive so tuning the threshold to a known
// similarity keeps that pair matching.
//
// The scan is exhaustive over the snapshot, O(terms x dimensions). For a
// vocabulary of a few thousand short terms that is microseconds and an
// approximate index would be pure overhead.
func Semantic(ctx context.Context, query string, embedder QueryEmbedder, snap Snapshot, limit int, threshold float64) ([]core.MatchCandidate, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	queryVector, err := embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	board := newScoreBoard()
	for _, term := range snap.Terms {
		vector, ok := snap.Vectors[term]
		if !ok {
			continue
		}
		similarity := dotProduct(queryVector, vector)
		if similarity >= threshold {
			board.max(term, similarity)
		}
	}
	return board.candidates(limit), nil
}

// dotProduct computes the inner product of two vectors. Both sides are
// stored unit-normalized, so this is cosine similarity without the extra
// magnitude division per comparison.
func dotProduct(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
