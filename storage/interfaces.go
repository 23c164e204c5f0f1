package storage

import (
	"context"

	"github.com/poiesic/notematch/core"
)

// VocabularyRepository provides operations for managing the vocabulary
// embedding store. Implementations must be thread-safe; reads taken during
// a query observe a consistent snapshot.
type VocabularyRepository interface {
	// PutEntries upserts one or more vocabulary entries.
	// New terms are assigned the next insertion sequence number, which
	// defines the catalog order used for ranking tie-breaks. Re-inserted
	// terms keep their original sequence and InsertedAt timestamp.
	// Returns the entries with IDs, sequences and timestamps populated.
	PutEntries(ctx context.Context, entries ...*core.VocabularyEntry) ([]*core.VocabularyEntry, error)

	// GetEntry retrieves a single entry by term.
	// Returns ErrNotFound if the term is not stored.
	GetEntry(ctx context.Context, term string) (*core.VocabularyEntry, error)

	// GetAll retrieves every stored entry, ordered by insertion sequence.
	// This is the bulk read the matchers build their per-query snapshot from.
	GetAll(ctx context.Context) ([]*core.VocabularyEntry, error)

	// Terms retrieves every stored term, ordered by insertion sequence.
	Terms(ctx context.Context) ([]string, error)

	// DeleteEntries removes entries by term.
	// Returns ErrNotFound if any term doesn't exist.
	DeleteEntries(ctx context.Context, terms ...string) error

	// Close closes the storage backend and releases resources.
	Close() error
}
