package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/poiesic/notematch/core"
)

// Fuse combines lexical and semantic candidate lists into a single ranking.
// Each term's fused score is the sum of its weighted contributions:
//
//	LexicalWeight*lexical + VectorWeight*(semantic-threshold)/(1-threshold)
//
// Semantic scores are renormalized before weighting so that a match sitting
// exactly on the threshold contributes nothing and a perfect match
// contributes the full weight; without the rescale every above-threshold
// match would start with a large constant bonus and the weight ratio would
// be meaningless. Contributions are additive so consensus between the two
// matchers outranks a strong single-matcher hit of equal magnitude.
func Fuse(lexical, semantic []core.MatchCandidate, cfg Config) []core.RankedResult {
	board := newScoreBoard()
	for _, c := range lexical {
		board.add(c.Term, c.Score*cfg.LexicalWeight)
	}
	for _, c := range semantic {
		normalized := (c.Score - cfg.VectorThreshold) / (1 - cfg.VectorThreshold)
		board.add(c.Term, normalized*cfg.VectorWeight)
	}
	return board.ranked(cfg.Limit)
}

// Hybrid runs both matchers over the same snapshot and fuses their results.
// The matchers gather cfg.CandidateLimit candidates each, wider than the
// final cfg.Limit, so the fusion step has enough overlap to re-rank rather
// than merely truncate.
//
// The matchers run concurrently: lexical matching is CPU-bound while the
// semantic matcher blocks on the embedding call.
func Hybrid(ctx context.Context, query string, embedder QueryEmbedder, snap Snapshot, cfg Config) ([]core.RankedResult, error) {
	var (
		lexical  []core.MatchCandidate
		semantic []core.MatchCandidate
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lexical = Lexical(query, snap.Terms, cfg.CandidateLimit, cfg)
		return nil
	})
	g.Go(func() error {
		var err error
		semantic, err = Semantic(gctx, query, embedder, snap, cfg.CandidateLimit, cfg.VectorThreshold)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Fuse(lexical, semantic, cfg), nil
}
