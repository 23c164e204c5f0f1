package openai

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMapping(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		notes     []string
		processes []string
	}{
		{
			name:      "plain json",
			input:     `{"mappedNotes": ["berry", "jammy"], "mappedProcesses": ["natural"]}`,
			notes:     []string{"berry", "jammy"},
			processes: []string{"natural"},
		},
		{
			name:      "markdown fenced",
			input:     "```json\n{\"mappedNotes\": [\"fermented\"], \"mappedProcesses\": []}\n```",
			notes:     []string{"fermented"},
			processes: nil,
		},
		{
			name:      "bare fence",
			input:     "```\n{\"mappedNotes\": [], \"mappedProcesses\": [\"washed\"]}\n```",
			notes:     nil,
			processes: []string{"washed"},
		},
		{
			name:      "missing opening quote repaired",
			input:     `{mappedNotes": ["crisp"], mappedProcesses": []}`,
			notes:     []string{"crisp"},
			processes: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseMapping(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.notes, result.MappedNotes)
			assert.Equal(t, tt.processes, result.MappedProcesses)
		})
	}

	t.Run("irrecoverable garbage", func(t *testing.T) {
		_, err := parseMapping("the term maps to berries, probably")
		assert.Error(t, err)
	})
}

func TestTermMapper_Clamp(t *testing.T) {
	m := &TermMapper{
		notes:     toSet([]string{"berry", "blueberry", "strawberry", "raspberry", "blackberry", "jammy", "cherry", "plum", "peach", "fig"}),
		processes: toSet([]string{"natural", "washed", "honey"}),
		logger:    slog.Default(),
	}

	t.Run("drops unknown entries", func(t *testing.T) {
		result := m.clamp(mapping{
			MappedNotes:     []string{"berry", "asphalt"},
			MappedProcesses: []string{"natural", "cold brew"},
		})
		assert.Equal(t, []string{"berry"}, result.Notes)
		assert.Equal(t, []string{"natural"}, result.Processes)
	})

	t.Run("normalizes before matching", func(t *testing.T) {
		result := m.clamp(mapping{MappedNotes: []string{" Berry "}})
		assert.Equal(t, []string{"berry"}, result.Notes)
	})

	t.Run("enforces limits", func(t *testing.T) {
		result := m.clamp(mapping{
			MappedNotes:     []string{"berry", "blueberry", "strawberry", "raspberry", "blackberry", "jammy", "cherry", "plum", "peach", "fig"},
			MappedProcesses: []string{"natural", "washed", "honey", "natural"},
		})
		assert.Len(t, result.Notes, 8)
		assert.Len(t, result.Processes, 3)
	})
}

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"untouched valid json", `{"a": 1}`, `{"a": 1}`},
		{"missing opening quote", `{a": 1}`, `{"a": 1}`},
		{"after comma", `{"a": 1, b": 2}`, `{"a": 1, "b": 2}`},
		{"unquoted non-key left alone", `[true, false]`, `[true, false]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repairJSON(tt.input))
		})
	}
}
