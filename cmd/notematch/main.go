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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/notematch"
	"github.com/poiesic/notematch/ai"
	"github.com/poiesic/notematch/core"
	"github.com/poiesic/notematch/ingestion"
	"github.com/poiesic/notematch/search"
)

func main() {
	app := &cli.App{
		Name:  "notematch",
		Usage: "Hybrid search over a coffee tasting-note vocabulary",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Rank vocabulary terms against a free-text query",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags:     append(catalogFlags(), limitFlag()),
			},
			{
				Name:      "compare",
				Usage:     "Run lexical, semantic, and hybrid matching side by side",
				ArgsUsage: "<query>",
				Action:    compareCommand,
				Flags:     append(catalogFlags(), limitFlag()),
			},
			{
				Name:   "ingest",
				Usage:  "Enrich, embed, and store vocabulary terms",
				Action: ingestCommand,
				Flags: append(catalogFlags(),
					&cli.StringSliceFlag{
						Name:    "term",
						Aliases: []string{"t"},
						Usage:   "Term to ingest (repeatable; defaults to the seed vocabulary)",
					},
					&cli.BoolFlag{
						Name:  "refresh",
						Usage: "Re-ingest terms that are already stored",
					},
					&cli.BoolFlag{
						Name:  "dry-run",
						Usage: "Report what would be ingested without calling AI services",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Concurrent term-mapping workers",
						Value: 4,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Terms per embedding request",
						Value: 100,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func limitFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "limit",
		Aliases: []string{"n"},
		Usage:   "Maximum number of results per method",
		Value:   10,
	}
}

// limitConfig is the default search configuration with the per-method
// result limit overridden when the flag was given a positive value.
func limitConfig(limit int) search.Config {
	cfg := search.DefaultConfig()
	if limit > 0 {
		cfg.Limit = limit
	}
	return cfg
}

func catalogFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "e5-large-v2",
		},
		&cli.StringFlag{
			Name:  "mapper-host",
			Usage: "Term-mapper service host URL (defaults to embedding-host)",
		},
		&cli.StringFlag{
			Name:  "mapper-model",
			Usage: "Term-mapper model name",
			Value: "qwen2.5:3b",
		},
	}
}

func openCatalog(c *cli.Context) (*notematch.Catalog, error) {
	mapperHost := c.String("mapper-host")
	if mapperHost == "" {
		mapperHost = c.String("embedding-host")
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithMapperHost(mapperHost),
		ai.WithMapperModel(c.String("mapper-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	catalog, err := notematch.OpenCatalog(c.String("db"), notematch.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	return catalog, nil
}

func queryArg(c *cli.Context) (string, error) {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return "", fmt.Errorf("a query argument is required")
	}
	return query, nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query, err := queryArg(c)
	if err != nil {
		return err
	}

	catalog, err := openCatalog(c)
	if err != nil {
		return err
	}
	defer catalog.Close()

	searcher, err := catalog.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	result, err := searcher.Search(ctx, query, c.Int("limit"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if result.Degraded {
		fmt.Fprintf(os.Stderr, "warning: %s\n", result.DegradedReason)
	}
	if len(result.Matches) == 0 {
		fmt.Println("no matches")
		return nil
	}
	for i, match := range result.Matches {
		fmt.Printf("%d: %s [%0.4f]\n", i+1, match.Term, match.Score)
	}
	return nil
}

func compareCommand(c *cli.Context) error {
	ctx := context.Background()

	query, err := queryArg(c)
	if err != nil {
		return err
	}

	catalog, err := openCatalog(c)
	if err != nil {
		return err
	}
	defer catalog.Close()

	comparison, err := catalog.Compare(ctx, query, limitConfig(c.Int("limit")))
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}
	return comparison.Render(os.Stdout)
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	terms := c.StringSlice("term")
	if len(terms) == 0 {
		terms = core.DefaultVocabulary
	}

	catalog, err := openCatalog(c)
	if err != nil {
		return err
	}
	defer catalog.Close()

	pipeline, err := catalog.NewIngestionPipeline(
		ingestion.WithPoolSize(c.Int("pool-size")),
		ingestion.WithBatchSize(c.Int("batch-size")),
	)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	report, err := pipeline.Run(ctx, terms, ingestion.RunOptions{
		Refresh: c.Bool("refresh"),
		DryRun:  c.Bool("dry-run"),
	})
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	if report.DryRun {
		fmt.Printf("dry run: would ingest %d terms (%d already stored)\n", len(report.Planned), report.Skipped)
		for _, term := range report.Planned {
			fmt.Printf("  %s\n", term)
		}
		return nil
	}

	fmt.Printf("ingested %d terms (%d already stored)\n", report.Ingested, report.Skipped)
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
