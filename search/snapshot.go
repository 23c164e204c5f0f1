package search

import (
	"github.com/poiesic/notematch/core"
)

// Snapshot is an immutable read of the vocabulary taken before a search
// begins. Both matchers and the fusion step operate on the same snapshot,
// so a concurrent vocabulary update can never produce a result referencing
// a term the lexical matcher saw but the semantic matcher did not.
type Snapshot struct {
	// Terms holds every vocabulary term in catalog order, which is the
	// tie-breaking order for equal scores.
	Terms []string

	// Vectors maps terms to their unit embedding vectors. Terms ingested
	// without an embedding are absent here and participate in lexical
	// matching only.
	Vectors map[string][]float32
}

// NewSnapshot builds a Snapshot from vocabulary entries, preserving their
// order.
func NewSnapshot(entries []*core.VocabularyEntry) Snapshot {
	snap := Snapshot{
		Terms:   make([]string, 0, len(entries)),
		Vectors: make(map[string][]float32, len(entries)),
	}
	for _, entry := range entries {
		snap.Terms = append(snap.Terms, entry.Term)
		if len(entry.Vector) > 0 {
			snap.Vectors[entry.Term] = entry.Vector
		}
	}
	return snap
}
