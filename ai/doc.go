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


// Package ai provides abstractions for the AI services used in notematch.
//
// This package defines interfaces for text embedding and vocabulary
// enrichment. It follows the dependency inversion principle, allowing the
// matching and ranking logic to depend on abstractions rather than concrete
// implementations.
//
// # Design Principles
//
// The package is designed around three key interfaces:
//
//   - Embedder: Generates unit-length vector embeddings from text, with
//     distinct query and document role prefixes
//   - TermMapper: Maps slang search terms to canonical tasting notes and
//     processes via an LLM
//   - AIProvider: Aggregates AI services for convenient initialization
//
// # Role Prefix Convention
//
// The embedding model distinguishes query inputs from document inputs: at
// index time vocabulary terms are embedded as "passage: <term>", and at
// query time searches are embedded as "query: <text>" (e5 convention,
// configurable via Config). The two call sites are deliberately separate
// methods on Embedder; collapsing them would silently break similarity
// scores against previously stored vectors.
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// Public constructors (openai.NewProvider, openai.NewEmbedder, etc.) return
// interface types to enforce abstraction. Mock constructors return concrete
// types to enable behavior injection and call-count assertions.
package ai
