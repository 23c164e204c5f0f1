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


package core

import (
	"fmt"
	"math"
)

const (
	// MaxMappedNotes is the maximum number of notes an enrichment mapping
	// may carry.
	MaxMappedNotes = 8

	// MaxMappedProcesses is the maximum number of processes an enrichment
	// mapping may carry.
	MaxMappedProcesses = 3

	// UnitVectorTolerance is the allowed deviation of a stored vector's
	// L2 norm from 1.0. Cosine similarity reduces to a dot product only
	// within this tolerance.
	UnitVectorTolerance = 1e-3
)

// ValidateVocabularyEntry validates a VocabularyEntry according to domain rules.
//
// Validation rules:
//   - Term must not be empty and must be normalized (lowercase, trimmed)
//   - Vector, if present, must be L2-normalized within tolerance
//   - Mappings must not exceed the note/process limits
//
// NOT validated (populated later by the pipeline):
//   - Vector (can be empty until the embedding step runs)
//   - Seq (0 is valid before the store assigns one)
func ValidateVocabularyEntry(entry *VocabularyEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidEntry)
	}

	if entry.Term == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyTerm)
	}

	if entry.Term != NormalizeTerm(entry.Term) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidEntry, ErrTermNotNormalized, entry.Term)
	}

	if len(entry.Vector) > 0 && !IsUnitVector(entry.Vector, UnitVectorTolerance) {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrNotUnitVector)
	}

	if len(entry.MappedNotes) > MaxMappedNotes {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrTooManyNotes)
	}
	if len(entry.MappedProcesses) > MaxMappedProcesses {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrTooManyProcesses)
	}

	return nil
}

// IsUnitVector reports whether the vector's L2 norm is within tolerance of 1.
func IsUnitVector(vector []float32, tolerance float64) bool {
	if len(vector) == 0 {
		return false
	}
	var sum float64
	for _, v := range vector {
		sum += float64(v) * float64(v)
	}
	return math.Abs(math.Sqrt(sum)-1.0) <= tolerance
}

// NormalizeVector scales a vector to unit length in place and returns it.
// Zero vectors are returned unchanged.
func NormalizeVector(vector []float32) []float32 {
	var sum float64
	for _, v := range vector {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return vector
	}
	norm := math.Sqrt(sum)
	for i := range vector {
		vector[i] = float32(float64(vector[i]) / norm)
	}
	return vector
}
