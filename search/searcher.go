package search

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/poiesic/notematch/core"
	"github.com/poiesic/notematch/storage"
)

// Option configures a Searcher during construction.
type Option func(*Searcher) error

// WithConfig replaces the default search configuration. The configuration
// is validated immediately so a bad threshold fails at startup, not on the
// first query.
func WithConfig(cfg Config) Option {
	return func(s *Searcher) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		s.config = cfg
		return nil
	}
}

// WithLogger sets the logger used for search diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		s.logger = logger
		return nil
	}
}

// WithMonitor attaches an observer that receives per-stage callbacks for
// every search.
func WithMonitor(monitor Monitor) Option {
	return func(s *Searcher) error {
		s.monitor = monitor
		return nil
	}
}

// Searcher answers free-text queries against the stored vocabulary. It
// snapshots the vocabulary per search, runs the lexical and semantic
// matchers concurrently, and fuses their candidates into a single ranking.
// When the embedding backend is slow or down the searcher degrades to
// lexical-only results rather than failing the query.
type Searcher struct {
	repository storage.VocabularyRepository
	embedder   QueryEmbedder
	config     Config
	logger     *slog.Logger
	monitor    Monitor
}

// NewSearcher creates a Searcher over the given vocabulary repository and
// embedder.
func NewSearcher(repository storage.VocabularyRepository, embedder QueryEmbedder, opts ...Option) (*Searcher, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Searcher{
		repository: repository,
		embedder:   embedder,
		config:     DefaultConfig(),
		logger:     slog.Default(),
		monitor:    NoopMonitor{},
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Result is the outcome of a single search.
type Result struct {
	// Matches holds the ranked results, best first.
	Matches []core.RankedResult

	// Degraded is true when the semantic matcher was unavailable and
	// Matches holds lexical-only scores on the raw 0-1 scale instead of
	// fused scores.
	Degraded bool

	// DegradedReason describes why the search degraded, empty otherwise.
	DegradedReason string
}

// Search ranks the vocabulary against query and returns up to limit
// results. A limit of 0 uses the configured default. An empty query returns
// an empty, non-degraded result.
func (s *Searcher) Search(ctx context.Context, query string, limit int) (*Result, error) {
	cfg := s.config
	if limit > 0 {
		cfg.Limit = limit
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading vocabulary snapshot: %w", err)
	}

	s.monitor.SearchStarted(query)
	started := time.Now()

	var (
		lexical     []core.MatchCandidate
		semantic    []core.MatchCandidate
		semanticErr error
		wg          sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		lexical = Lexical(query, snap.Terms, cfg.CandidateLimit, cfg)
	}()
	go func() {
		defer wg.Done()
		embedCtx, cancel := context.WithTimeout(ctx, cfg.EmbedTimeout)
		defer cancel()
		semantic, semanticErr = Semantic(embedCtx, query, s.embedder, snap, cfg.CandidateLimit, cfg.VectorThreshold)
	}()
	wg.Wait()

	s.monitor.LexicalCandidates(lexical)

	if semanticErr != nil {
		// The embedding backend failing must not take search down with
		// it. Lexical scores stay on their raw scale so callers can tell
		// a degraded ranking apart from a fused one.
		reason := fmt.Sprintf("semantic matching unavailable: %v", semanticErr)
		s.logger.Warn("search degraded to lexical-only results",
			"query", query,
			"error", semanticErr)
		s.monitor.SearchDegraded(reason)

		matches := lexicalOnly(lexical, cfg.Limit)
		s.monitor.SearchFinished(matches)
		return &Result{Matches: matches, Degraded: true, DegradedReason: reason}, nil
	}

	s.monitor.SemanticCandidates(semantic)

	matches := Fuse(lexical, semantic, cfg)
	s.logger.Debug("search completed",
		"query", query,
		"lexical_candidates", len(lexical),
		"semantic_candidates", len(semantic),
		"results", len(matches),
		"duration", time.Since(started))
	s.monitor.SearchFinished(matches)

	return &Result{Matches: matches}, nil
}

// Snapshot reads the current vocabulary in catalog order.
func (s *Searcher) Snapshot(ctx context.Context) (Snapshot, error) {
	entries, err := s.repository.GetAll(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return NewSnapshot(entries), nil
}

// Config returns the searcher's effective configuration.
func (s *Searcher) Config() Config {
	return s.config
}

func lexicalOnly(candidates []core.MatchCandidate, limit int) []core.RankedResult {
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	results := make([]core.RankedResult, len(candidates))
	for i, c := range candidates {
		results[i] = core.RankedResult{Term: c.Term, Score: c.Score}
	}
	return results
}
