package badger

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/notematch/core"
	"github.com/poiesic/notematch/storage"
)

// VocabularyRepository implements storage.VocabularyRepository for BadgerDB.
type VocabularyRepository struct {
	backend *Backend
	seq     *badger.Sequence
}

var _ storage.VocabularyRepository = (*VocabularyRepository)(nil)

// NewVocabularyRepository creates a new VocabularyRepository.
//
// Returns storage.VocabularyRepository interface to enforce abstraction.
func NewVocabularyRepository(backend *Backend) (storage.VocabularyRepository, error) {
	seq, err := backend.GetSequence(vocabularySeqName)
	if err != nil {
		return nil, err
	}
	return &VocabularyRepository{
		backend: backend,
		seq:     seq,
	}, nil
}

// Close releases the sequence. The backend is closed separately by its owner.
func (r *VocabularyRepository) Close() error {
	return r.seq.Release()
}

// PutEntries upserts vocabulary entries. New terms receive the next
// insertion sequence number; existing terms keep their sequence and
// InsertedAt so catalog order is stable across re-embeds.
func (r *VocabularyRepository) PutEntries(ctx context.Context, entries ...*core.VocabularyEntry) ([]*core.VocabularyEntry, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := time.Now().UTC()
		for _, entry := range entries {
			entry.Term = core.NormalizeTerm(entry.Term)
			entry.Id = core.IDFromTerm(entry.Term)

			if err := core.ValidateVocabularyEntry(entry); err != nil {
				return err
			}

			key := makeEntryKey(entry.Id)
			existing, err := readEntry(tx, key)
			if err != nil {
				return err
			}

			if existing != nil {
				entry.Seq = existing.Seq
				entry.InsertedAt = existing.InsertedAt
			} else {
				seq, err := r.seq.Next()
				if err != nil {
					return err
				}
				entry.Seq = seq
				entry.InsertedAt = now
			}
			entry.UpdatedAt = now

			if err := tx.Set(key, storage.MarshalVocabularyEntry(entry)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetEntry retrieves a single entry by term.
func (r *VocabularyRepository) GetEntry(ctx context.Context, term string) (*core.VocabularyEntry, error) {
	var result *core.VocabularyEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		entry, err := readEntry(tx, makeEntryKey(core.IDFromTerm(term)))
		if err != nil {
			return err
		}
		if entry == nil {
			return storage.ErrNotFound
		}
		result = entry
		return nil
	}, false)
	return result, err
}

// GetAll retrieves every stored entry, ordered by insertion sequence.
func (r *VocabularyRepository) GetAll(ctx context.Context) ([]*core.VocabularyEntry, error) {
	var results []*core.VocabularyEntry

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(vocabularyEntryPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				entry, err := storage.UnmarshalVocabularyEntry(val)
				if err != nil {
					return err
				}
				results = append(results, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	sortBySeq(results)
	return results, nil
}

// Terms retrieves every stored term, ordered by insertion sequence.
func (r *VocabularyRepository) Terms(ctx context.Context) ([]string, error) {
	entries, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	terms := make([]string, len(entries))
	for i, entry := range entries {
		terms[i] = entry.Term
	}
	return terms, nil
}

// DeleteEntries removes entries by term.
func (r *VocabularyRepository) DeleteEntries(ctx context.Context, terms ...string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, term := range terms {
			key := makeEntryKey(core.IDFromTerm(term))
			if _, err := tx.Get(key); err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					return storage.ErrNotFound
				}
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// readEntry reads and unmarshals an entry, returning nil if the key is absent.
func readEntry(tx *badger.Txn, key []byte) (*core.VocabularyEntry, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var entry *core.VocabularyEntry
	err = item.Value(func(val []byte) error {
		entry, err = storage.UnmarshalVocabularyEntry(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// sortBySeq orders entries by insertion sequence ascending.
func sortBySeq(entries []*core.VocabularyEntry) {
	slices.SortFunc(entries, func(a, b *core.VocabularyEntry) int {
		if a.Seq < b.Seq {
			return -1
		}
		if a.Seq > b.Seq {
			return 1
		}
		return 0
	})
}
