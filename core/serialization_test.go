package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabularyEntryMUS_RoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := VocabularyEntry{
		Id:              IDFromTerm("berry bomb"),
		Term:            "berry bomb",
		Vector:          []float32{0.6, 0.8, 0},
		MappedNotes:     []string{"berry", "blueberry", "jammy"},
		MappedProcesses: []string{"natural"},
		Seq:             7,
		InsertedAt:      now,
		UpdatedAt:       now,
	}

	buf := make([]byte, VocabularyEntryMUS.Size(entry))
	n := VocabularyEntryMUS.Marshal(entry, buf)
	assert.Equal(t, len(buf), n)

	decoded, n, err := VocabularyEntryMUS.Unmarshal(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	assert.Equal(t, entry, decoded)

	t.Run("skip consumes the full record", func(t *testing.T) {
		n, err := VocabularyEntryMUS.Skip(buf)
		require.NoError(t, err)
		assert.Equal(t, len(buf), n)
	})
}

func TestVocabularyEntryMUS_Truncated(t *testing.T) {
	entry := VocabularyEntry{Id: 1, Term: "peach", Vector: []float32{1}}
	buf := make([]byte, VocabularyEntryMUS.Size(entry))
	VocabularyEntryMUS.Marshal(entry, buf)

	_, _, err := VocabularyEntryMUS.Unmarshal(buf[:len(buf)/2])
	assert.Error(t, err)
}
