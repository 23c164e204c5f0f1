package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/notematch/ai"
	"github.com/poiesic/notematch/core"
	"github.com/poiesic/notematch/storage"
)

const (
	defaultPoolSize  = 4
	defaultBatchSize = 100
)

// Option configures a Pipeline during construction.
type Option func(*Pipeline) error

// WithPoolSize sets how many term-mapping calls run concurrently. Mapping
// goes through the LLM one term at a time, so the pool size is the main
// lever on ingestion wall-clock time.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			return fmt.Errorf("pool size must be at least 1, got %d", size)
		}
		p.poolSize = size
		return nil
	}
}

// WithBatchSize sets how many terms are embedded per request.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			return fmt.Errorf("batch size must be at least 1, got %d", size)
		}
		p.batchSize = size
		return nil
	}
}

// WithLogger sets the logger used for ingestion progress.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		p.logger = logger
		return nil
	}
}

// Pipeline ingests vocabulary terms: it enriches each term with catalog
// mappings through the term mapper, embeds the terms in batches with the
// document role prefix, and persists the finished entries. Terms already
// present are skipped unless the run asks for a refresh.
type Pipeline struct {
	repository storage.VocabularyRepository
	embedder   ai.Embedder
	mapper     ai.TermMapper
	poolSize   int
	batchSize  int
	logger     *slog.Logger
}

// NewPipeline creates an ingestion pipeline over the given repository and
// AI services.
func NewPipeline(repository storage.VocabularyRepository, embedder ai.Embedder, mapper ai.TermMapper, opts ...Option) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if mapper == nil {
		return nil, ErrMapperRequired
	}

	p := &Pipeline{
		repository: repository,
		embedder:   embedder,
		mapper:     mapper,
		poolSize:   defaultPoolSize,
		batchSize:  defaultBatchSize,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// RunOptions control a single ingest run.
type RunOptions struct {
	// Refresh re-ingests terms that are already stored, regenerating
	// their mappings and embeddings. Insertion order is preserved so
	// refreshed terms keep their catalog position.
	Refresh bool

	// DryRun reports what the run would ingest without calling the AI
	// services or writing anything.
	DryRun bool
}

// Report summarizes an ingest run.
type Report struct {
	// Requested is the number of distinct normalized terms asked for.
	Requested int

	// Skipped is how many of those were already stored and left alone.
	Skipped int

	// Ingested is how many entries were written.
	Ingested int

	// Planned lists the terms a dry run would have ingested.
	Planned []string

	// DryRun mirrors the option that produced this report.
	DryRun bool
}

// Run ingests the given terms and returns a report. Terms are normalized
// and deduplicated first; an entirely empty term list is an error.
//
// Mapping failures are tolerated per term, because enrichment is advisory;
// an embedding failure aborts the run, because entries without vectors
// would silently halve the search quality for those terms.
func (p *Pipeline) Run(ctx context.Context, terms []string, opts RunOptions) (*Report, error) {
	pending := dedupeNormalized(terms)
	if len(pending) == 0 {
		return nil, ErrNoTerms
	}

	report := &Report{Requested: len(pending), DryRun: opts.DryRun}

	if !opts.Refresh {
		existing, err := p.existingTerms(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing existing terms: %w", err)
		}
		fresh := pending[:0]
		for _, term := range pending {
			if existing[term] {
				report.Skipped++
				continue
			}
			fresh = append(fresh, term)
		}
		pending = fresh
	}

	if len(pending) == 0 {
		p.logger.Info("nothing to ingest, all terms present", "skipped", report.Skipped)
		return report, nil
	}

	if opts.DryRun {
		report.Planned = pending
		return report, nil
	}

	mappings, err := p.mapTerms(ctx, pending)
	if err != nil {
		return nil, err
	}

	for start := 0; start < len(pending); start += p.batchSize {
		end := start + p.batchSize
		if end > len(pending) {
			end = len(pending)
		}
		batch := pending[start:end]

		vectors, err := p.embedder.EmbedTerms(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("embedding batch of %d terms: %w", len(batch), err)
		}
		if len(vectors) != len(batch) {
			return nil, fmt.Errorf("embedding batch returned %d vectors for %d terms", len(vectors), len(batch))
		}

		entries := make([]*core.VocabularyEntry, len(batch))
		for i, term := range batch {
			mapping := mappings[term]
			entries[i] = &core.VocabularyEntry{
				Term:            term,
				Vector:          vectors[i],
				MappedNotes:     mapping.Notes,
				MappedProcesses: mapping.Processes,
			}
		}
		if _, err := p.repository.PutEntries(ctx, entries...); err != nil {
			return nil, fmt.Errorf("storing batch of %d entries: %w", len(entries), err)
		}
		report.Ingested += len(entries)

		p.logger.Info("ingested batch",
			"terms", len(entries),
			"total", report.Ingested,
			"remaining", len(pending)-end)
	}

	return report, nil
}

// mapTerms runs the term mapper concurrently over a worker pool. A mapping
// failure logs and leaves that term unenriched.
func (p *Pipeline) mapTerms(ctx context.Context, terms []string) (map[string]core.TermMapping, error) {
	pool, err := ants.NewPool(p.poolSize)
	if err != nil {
		return nil, fmt.Errorf("creating mapper pool: %w", err)
	}
	defer pool.Release()

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		mappings = make(map[string]core.TermMapping, len(terms))
	)

	for _, term := range terms {
		term := term
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			mapping, err := p.mapper.MapTerm(ctx, term)
			if err != nil {
				p.logger.Warn("term mapping failed, storing without enrichment",
					"term", term,
					"error", err)
				return
			}
			mu.Lock()
			mappings[term] = mapping
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			return nil, fmt.Errorf("submitting mapping task: %w", submitErr)
		}
	}
	wg.Wait()

	return mappings, nil
}

func (p *Pipeline) existingTerms(ctx context.Context) (map[string]bool, error) {
	terms, err := p.repository.Terms(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(terms))
	for _, term := range terms {
		set[term] = true
	}
	return set, nil
}

func dedupeNormalized(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		normalized := core.NormalizeTerm(term)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	return out
}
