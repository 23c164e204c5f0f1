package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/notematch/ai/mock"
	"github.com/poiesic/notematch/core"
	"github.com/poiesic/notematch/storage"
	badgerstore "github.com/poiesic/notematch/storage/badger"
)

func newTestVocabulary(t *testing.T) storage.VocabularyRepository {
	t.Helper()

	repo, backend, err := badgerstore.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	entries := []*core.VocabularyEntry{
		{Term: "berry", Vector: unitVector2(0.9)},
		{Term: "chocolate", Vector: unitVector2(0.2)},
		{Term: "jammy", Vector: unitVector2(0.8)},
		{Term: "funky"},
	}
	_, err = repo.PutEntries(context.Background(), entries...)
	require.NoError(t, err)

	return repo
}

func TestNewSearcherRequiresDependencies(t *testing.T) {
	repo := newTestVocabulary(t)

	_, err := NewSearcher(nil, mock.NewMockEmbedder())
	assert.ErrorIs(t, err, ErrRepositoryRequired)

	_, err = NewSearcher(repo, nil)
	assert.ErrorIs(t, err, ErrEmbedderRequired)
}

func TestNewSearcherRejectsInvalidConfig(t *testing.T) {
	repo := newTestVocabulary(t)

	cfg := DefaultConfig()
	cfg.VectorThreshold = 1.0

	_, err := NewSearcher(repo, mock.NewMockEmbedder(), WithConfig(cfg))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VectorThreshold")
}

func TestSearchFusesMatchers(t *testing.T) {
	repo := newTestVocabulary(t)
	searcher, err := NewSearcher(repo, axisEmbedder(2))
	require.NoError(t, err)

	result, err := searcher.Search(context.Background(), "berrylicious", 0)
	require.NoError(t, err)

	assert.False(t, result.Degraded)
	require.NotEmpty(t, result.Matches)
	assert.Equal(t, "berry", result.Matches[0].Term)
	// Substring hit plus semantic similarity 0.9:
	// 0.4*1.0 + 0.6*((0.9-0.75)/0.25)
	assert.InDelta(t, 0.76, result.Matches[0].Score, 1e-3)
}

func TestSearchEmptyQuery(t *testing.T) {
	repo := newTestVocabulary(t)
	searcher, err := NewSearcher(repo, axisEmbedder(2))
	require.NoError(t, err)

	result, err := searcher.Search(context.Background(), "   ", 0)
	require.NoError(t, err)

	assert.Empty(t, result.Matches)
	assert.False(t, result.Degraded)
}

func TestSearchIsIdempotent(t *testing.T) {
	repo := newTestVocabulary(t)
	searcher, err := NewSearcher(repo, axisEmbedder(2))
	require.NoError(t, err)

	first, err := searcher.Search(context.Background(), "jammy berry", 0)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := searcher.Search(context.Background(), "jammy berry", 0)
		require.NoError(t, err)
		assert.Equal(t, first.Matches, again.Matches)
	}
}

func TestSearchHonorsLimitOverride(t *testing.T) {
	repo := newTestVocabulary(t)
	searcher, err := NewSearcher(repo, axisEmbedder(2))
	require.NoError(t, err)

	result, err := searcher.Search(context.Background(), "berry jammy chocolate", 2)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(result.Matches), 2)
}

func TestSearchDegradesWhenEmbedderFails(t *testing.T) {
	repo := newTestVocabulary(t)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedQueryFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("connection refused")
	}

	searcher, err := NewSearcher(repo, embedder)
	require.NoError(t, err)

	result, err := searcher.Search(context.Background(), "berry", 0)
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Contains(t, result.DegradedReason, "connection refused")
	require.NotEmpty(t, result.Matches)
	assert.Equal(t, "berry", result.Matches[0].Term)
	// Degraded scores stay on the raw lexical scale.
	assert.Equal(t, 1.0, result.Matches[0].Score)
}

func TestSearchDegradesOnEmbedTimeout(t *testing.T) {
	repo := newTestVocabulary(t)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedQueryFunc = func(ctx context.Context, text string) ([]float32, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	cfg := DefaultConfig()
	cfg.EmbedTimeout = 10 * time.Millisecond

	searcher, err := NewSearcher(repo, embedder, WithConfig(cfg))
	require.NoError(t, err)

	result, err := searcher.Search(context.Background(), "berry", 0)
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Contains(t, result.DegradedReason, "deadline")
}

type recordingMonitor struct {
	started  []string
	lexical  int
	semantic int
	degraded []string
	finished int
}

func (m *recordingMonitor) SearchStarted(query string) {
	m.started = append(m.started, query)
}

func (m *recordingMonitor) LexicalCandidates([]core.MatchCandidate) {
	m.lexical++
}

func (m *recordingMonitor) SemanticCandidates([]core.MatchCandidate) {
	m.semantic++
}

func (m *recordingMonitor) SearchDegraded(reason string) {
	m.degraded = append(m.degraded, reason)
}

func (m *recordingMonitor) SearchFinished([]core.RankedResult) {
	m.finished++
}

func TestSearchNotifiesMonitor(t *testing.T) {
	repo := newTestVocabulary(t)
	monitor := &recordingMonitor{}

	searcher, err := NewSearcher(repo, axisEmbedder(2), WithMonitor(monitor))
	require.NoError(t, err)

	_, err = searcher.Search(context.Background(), "berry", 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"berry"}, monitor.started)
	assert.Equal(t, 1, monitor.lexical)
	assert.Equal(t, 1, monitor.semantic)
	assert.Empty(t, monitor.degraded)
	assert.Equal(t, 1, monitor.finished)
}

func TestSearchMonitorSeesDegradation(t *testing.T) {
	repo := newTestVocabulary(t)
	monitor := &recordingMonitor{}

	embedder := mock.NewMockEmbedder()
	embedder.EmbedQueryFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("backend down")
	}

	searcher, err := NewSearcher(repo, embedder, WithMonitor(monitor))
	require.NoError(t, err)

	_, err = searcher.Search(context.Background(), "berry", 0)
	require.NoError(t, err)

	require.Len(t, monitor.degraded, 1)
	assert.Equal(t, 0, monitor.semantic)
	assert.Equal(t, 1, monitor.finished)
}
