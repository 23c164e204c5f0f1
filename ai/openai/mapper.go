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


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/notematch/ai"
	"github.com/poiesic/notematch/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// TermMapper implements ai.TermMapper using OpenAI-compatible chat APIs.
type TermMapper struct {
	client       llms.Model
	systemPrompt string
	notes        map[string]bool
	processes    map[string]bool
	logger       *slog.Logger
}

// mapping is an internal type used for JSON unmarshaling.
// It matches the structure requested from the LLM.
type mapping struct {
	MappedNotes     []string `json:"mappedNotes"`
	MappedProcesses []string `json:"mappedProcesses"`
}

// newTermMapper is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newTermMapper(config *ai.Config) (*TermMapper, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/mapping
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.MapperHost),
		openai.WithToken("none"),
		openai.WithModel(config.MapperModel),
	)
	if err != nil {
		return nil, err
	}

	return &TermMapper{
		client:       client,
		systemPrompt: buildMapperPrompt(core.DefaultNotes, core.DefaultProcesses),
		notes:        toSet(core.DefaultNotes),
		processes:    toSet(core.DefaultProcesses),
		logger:       slog.Default().With("component", "openai-mapper"),
	}, nil
}

// NewTermMapper creates a new term mapper using the provided configuration.
//
// Returns ai.TermMapper interface to enforce abstraction.
func NewTermMapper(config *ai.Config) (ai.TermMapper, error) {
	return newTermMapper(config)
}

// MapTerm asks the LLM which canonical notes and processes a search term
// corresponds to. Malformed responses are retried and, if still unparseable,
// recovered as an empty mapping so a batch enrichment run never aborts on a
// single bad response.
func (m *TermMapper) MapTerm(ctx context.Context, term string) (core.TermMapping, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(m.systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(fmt.Sprintf("Map this coffee search term: %q", term)),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := m.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			m.logger.Error("failed to generate content", "term", term, "attempt", attempt+1, "err", err)
			return core.TermMapping{}, err
		}

		if len(response.Choices) < 1 {
			m.logger.Debug("no choices returned from model", "term", term)
			return core.TermMapping{}, nil
		}

		parsed, err := parseMapping(response.Choices[0].Content)
		if err != nil {
			lastErr = err
			m.logger.Warn("error parsing mapper response",
				"term", term,
				"attempt", attempt+1,
				"response", response.Choices[0].Content,
				"err", err)
			continue
		}

		return m.clamp(parsed), nil
	}

	// Irrecoverable parse failure: recover locally with an empty mapping.
	m.logger.Error("failed to parse mapper response after retries", "term", term, "err", lastErr)
	return core.TermMapping{}, nil
}

// parseMapping extracts a mapping from raw LLM output, stripping markdown
// code fences and repairing common JSON defects before unmarshaling.
func parseMapping(text string) (mapping, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	text = repairJSON(text)

	var result mapping
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return mapping{}, err
	}
	return result, nil
}

// clamp filters out anything outside the fixed catalogs and enforces the
// note/process limits.
func (m *TermMapper) clamp(raw mapping) core.TermMapping {
	result := core.TermMapping{}
	for _, note := range raw.MappedNotes {
		note = core.NormalizeTerm(note)
		if !m.notes[note] {
			m.logger.Debug("dropping unknown note from mapping", "note", note)
			continue
		}
		result.Notes = append(result.Notes, note)
		if len(result.Notes) == core.MaxMappedNotes {
			break
		}
	}
	for _, process := range raw.MappedProcesses {
		process = core.NormalizeTerm(process)
		if !m.processes[process] {
			m.logger.Debug("dropping unknown process from mapping", "process", process)
			continue
		}
		result.Processes = append(result.Processes, process)
		if len(result.Processes) == core.MaxMappedProcesses {
			break
		}
	}
	return result
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
