package openai

import (
	"context"
	"log/slog"

	"github.com/poiesic/notematch/ai"
	"github.com/poiesic/notematch/core"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// Embedder implements ai.Embedder using OpenAI-compatible embedding APIs.
// It applies the configured role prefixes and L2-normalizes every returned
// vector so cosine similarity reduces to a dot product downstream.
type Embedder struct {
	embedder       embeddings.Embedder
	queryPrefix    string
	documentPrefix string
	logger         *slog.Logger
}

// newEmbedder is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newEmbedder(config *ai.Config) (*Embedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for embeddings
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.EmbeddingHost),
		openai.WithToken("none"),
		openai.WithEmbeddingModel(config.EmbeddingModel),
	)
	if err != nil {
		return nil, err
	}

	// Wrap in langchaingo embedder
	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	return &Embedder{
		embedder:       embedder,
		queryPrefix:    config.QueryPrefix,
		documentPrefix: config.DocumentPrefix,
		logger:         slog.Default().With("component", "openai-embedder"),
	}, nil
}

// NewEmbedder creates a new embedder using the provided configuration.
//
// Returns ai.Embedder interface to enforce abstraction.
func NewEmbedder(config *ai.Config) (ai.Embedder, error) {
	return newEmbedder(config)
}

// EmbedQuery generates a unit-length embedding for a search query.
func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	e.logger.Debug("embedding query", "length", len(text))

	vector, err := e.embedder.EmbedQuery(ctx, e.queryPrefix+text)
	if err != nil {
		e.logger.Error("failed to embed query", "err", err)
		return nil, err
	}

	return core.NormalizeVector(vector), nil
}

// EmbedTerms generates unit-length embeddings for vocabulary terms in a batch.
func (e *Embedder) EmbedTerms(ctx context.Context, terms []string) ([][]float32, error) {
	e.logger.Debug("embedding terms", "count", len(terms))

	prefixed := make([]string, len(terms))
	for i, term := range terms {
		prefixed[i] = e.documentPrefix + term
	}

	vectors, err := e.embedder.EmbedDocuments(ctx, prefixed)
	if err != nil {
		e.logger.Error("failed to embed terms", "count", len(terms), "err", err)
		return nil, err
	}

	for i := range vectors {
		vectors[i] = core.NormalizeVector(vectors[i])
	}
	return vectors, nil
}
