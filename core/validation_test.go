package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEntry() *VocabularyEntry {
	return &VocabularyEntry{
		Id:              IDFromTerm("funky"),
		Term:            "funky",
		Vector:          []float32{1, 0, 0},
		MappedNotes:     []string{"fermented", "wild"},
		MappedProcesses: []string{"natural"},
	}
}

func TestValidateVocabularyEntry(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		assert.NoError(t, ValidateVocabularyEntry(validEntry()))
	})

	t.Run("nil entry", func(t *testing.T) {
		err := ValidateVocabularyEntry(nil)
		assert.ErrorIs(t, err, ErrInvalidEntry)
	})

	t.Run("empty term", func(t *testing.T) {
		entry := validEntry()
		entry.Term = ""
		assert.ErrorIs(t, ValidateVocabularyEntry(entry), ErrEmptyTerm)
	})

	t.Run("term not normalized", func(t *testing.T) {
		entry := validEntry()
		entry.Term = "Funky"
		assert.ErrorIs(t, ValidateVocabularyEntry(entry), ErrTermNotNormalized)
	})

	t.Run("empty vector is allowed", func(t *testing.T) {
		entry := validEntry()
		entry.Vector = nil
		assert.NoError(t, ValidateVocabularyEntry(entry))
	})

	t.Run("non-unit vector", func(t *testing.T) {
		entry := validEntry()
		entry.Vector = []float32{0.5, 0.5, 0.5}
		assert.ErrorIs(t, ValidateVocabularyEntry(entry), ErrNotUnitVector)
	})

	t.Run("too many notes", func(t *testing.T) {
		entry := validEntry()
		entry.MappedNotes = make([]string, MaxMappedNotes+1)
		assert.ErrorIs(t, ValidateVocabularyEntry(entry), ErrTooManyNotes)
	})

	t.Run("too many processes", func(t *testing.T) {
		entry := validEntry()
		entry.MappedProcesses = make([]string, MaxMappedProcesses+1)
		assert.ErrorIs(t, ValidateVocabularyEntry(entry), ErrTooManyProcesses)
	})
}

func TestIsUnitVector(t *testing.T) {
	assert.True(t, IsUnitVector([]float32{0, 1, 0}, UnitVectorTolerance))
	assert.True(t, IsUnitVector([]float32{0.6, 0.8}, UnitVectorTolerance))
	assert.False(t, IsUnitVector([]float32{1, 1}, UnitVectorTolerance))
	assert.False(t, IsUnitVector(nil, UnitVectorTolerance))
}

func TestNormalizeVector(t *testing.T) {
	v := NormalizeVector([]float32{3, 4})
	require.Len(t, v, 2)
	assert.InDelta(t, 0.6, v[0], 1e-6)
	assert.InDelta(t, 0.8, v[1], 1e-6)
	assert.True(t, IsUnitVector(v, UnitVectorTolerance))

	t.Run("zero vector unchanged", func(t *testing.T) {
		z := NormalizeVector([]float32{0, 0})
		assert.Equal(t, []float32{0, 0}, z)
	})

	t.Run("norm is one", func(t *testing.T) {
		v := NormalizeVector([]float32{0.2, -1.4, 3.3, 0.01})
		var sum float64
		for _, x := range v {
			sum += float64(x) * float64(x)
		}
		assert.InDelta(t, 1.0, math.Sqrt(sum), 1e-6)
	})
}
