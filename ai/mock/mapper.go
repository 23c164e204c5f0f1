package mock

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/poiesic/notematch/core"
)

// MockTermMapper is a test double for ai.TermMapper.
// It allows custom behavior injection via function fields.
// Safe for concurrent use, since the ingestion pipeline maps terms from a
// worker pool.
type MockTermMapper struct {
	// MapTermFunc is called by MapTerm if set.
	// If nil, uses default catalog-lookup behavior.
	MapTermFunc func(ctx context.Context, term string) (core.TermMapping, error)

	callCount atomic.Int64
}

// NewMockTermMapper creates a mock term mapper with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockMapper().
func NewMockTermMapper() *MockTermMapper {
	return &MockTermMapper{}
}

// MapTerm returns a simple deterministic mapping: any catalog note contained
// in the term (or containing it) is mapped, up to the domain limits.
func (m *MockTermMapper) MapTerm(ctx context.Context, term string) (core.TermMapping, error) {
	m.callCount.Add(1)

	if m.MapTermFunc != nil {
		return m.MapTermFunc(ctx, term)
	}

	term = core.NormalizeTerm(term)
	result := core.TermMapping{}
	for _, note := range core.DefaultNotes {
		if strings.Contains(term, note) || strings.Contains(note, term) {
			result.Notes = append(result.Notes, note)
			if len(result.Notes) == core.MaxMappedNotes {
				break
			}
		}
	}
	for _, process := range core.DefaultProcesses {
		if strings.Contains(term, process) {
			result.Processes = append(result.Processes, process)
			if len(result.Processes) == core.MaxMappedProcesses {
				break
			}
		}
	}
	return result, nil
}

// CallCount returns the number of times MapTerm was called.
func (m *MockTermMapper) CallCount() int {
	return int(m.callCount.Load())
}

// Reset clears the call count and custom functions.
func (m *MockTermMapper) Reset() {
	m.callCount.Store(0)
	m.MapTermFunc = nil
}
