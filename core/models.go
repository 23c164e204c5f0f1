package core

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for vocabulary entries.
// It is derived from the entry's term text, so identical terms always map
// to the same ID.
type ID uint64

// IDFromTerm generates a deterministic ID from a vocabulary term using
// BLAKE2b hashing. The term is normalized first so "Berry" and "berry"
// produce the same ID.
func IDFromTerm(term string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(NormalizeTerm(term)))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// NormalizeTerm lowercases a term and trims surrounding whitespace.
// All vocabulary terms are stored and matched in normalized form.
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// VocabularyEntry is a vocabulary term together with its precomputed
// embedding and the mapper-provided associations to canonical tasting notes
// and processes. Entries are written by the ingestion pipeline and are
// read-only for the duration of a query.
type VocabularyEntry struct {
	Id              ID
	Term            string
	Vector          []float32 // L2-normalized embedding (document role)
	MappedNotes     []string  // canonical notes this term maps to (max 8)
	MappedProcesses []string  // canonical processes this term maps to (max 3)
	Seq             uint64    // insertion sequence, defines catalog order
	InsertedAt      time.Time
	UpdatedAt       time.Time
}

// MatchCandidate is a (term, raw score) pair produced by a single matcher.
// The score's range and meaning differ per matcher; normalization happens
// during fusion.
type MatchCandidate struct {
	Term  string
	Score float64
}

// RankedResult is a (term, final score) pair produced by the fusion ranker,
// with the score in [0,1].
type RankedResult struct {
	Term  string
	Score float64
}

// TermMapping holds the canonical notes and processes an enrichment mapper
// associates with a vocabulary term.
type TermMapping struct {
	Notes     []string
	Processes []string
}
