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


package notematch

import (
	"context"
	"log/slog"

	"github.com/poiesic/notematch/ai"
	"github.com/poiesic/notematch/ai/openai"
	"github.com/poiesic/notematch/eval"
	"github.com/poiesic/notematch/ingestion"
	"github.com/poiesic/notematch/search"
	"github.com/poiesic/notematch/storage"
	"github.com/poiesic/notematch/storage/badger"
)

// Catalog bundles the vocabulary store and the AI provider behind one
// handle. It is the assembly point for applications: open a catalog, then
// ask it for a searcher, an ingestion pipeline, or a method comparison.
type Catalog struct {
	backend  *badger.Backend
	vocab    storage.VocabularyRepository
	provider ai.AIProvider
	logger   *slog.Logger
}

// CatalogOption configures a Catalog.
type CatalogOption func(*catalogOptions)

type catalogOptions struct {
	aiConfig *ai.Config
	inMemory bool
}

// WithAIConfig overrides the default AI provider configuration.
func WithAIConfig(config *ai.Config) CatalogOption {
	return func(o *catalogOptions) {
		o.aiConfig = config
	}
}

// WithInMemoryStore keeps the vocabulary in memory instead of on disk.
// Intended for tests and throwaway evaluation runs.
func WithInMemoryStore() CatalogOption {
	return func(o *catalogOptions) {
		o.inMemory = true
	}
}

// OpenCatalog opens the vocabulary store at filePath and connects the AI
// provider.
func OpenCatalog(filePath string, opts ...CatalogOption) (*Catalog, error) {
	options := &catalogOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	vocab, err := badger.NewVocabularyRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		vocab.Close()
		backend.Close()
		return nil, err
	}

	return &Catalog{
		backend:  backend,
		vocab:    vocab,
		provider: provider,
		logger:   slog.Default(),
	}, nil
}

func (c *Catalog) Close() error {
	if err := c.provider.Close(); err != nil {
		c.logger.Error("error closing AI provider", "err", err)
	}

	if err := c.vocab.Close(); err != nil {
		c.logger.Error("error closing vocabulary repository", "err", err)
		return err
	}

	if err := c.backend.Close(); err != nil {
		c.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (c *Catalog) VocabularyRepository() storage.VocabularyRepository {
	return c.vocab
}

func (c *Catalog) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(c.vocab, c.provider.Embedder(), opts...)
}

func (c *Catalog) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(c.vocab, c.provider.Embedder(), c.provider.TermMapper(), opts...)
}

// Compare runs the lexical, semantic, and hybrid matching methods against
// the current vocabulary for one query.
func (c *Catalog) Compare(ctx context.Context, query string, cfg search.Config) (*eval.Comparison, error) {
	entries, err := c.vocab.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return eval.Compare(ctx, query, c.provider.Embedder(), search.NewSnapshot(entries), cfg)
}
