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


// Package openai provides production implementations of the ai interfaces
// using OpenAI-compatible APIs (OpenAI, Ollama, LocalAI, vLLM, etc).
//
// The Embedder applies the configured role prefixes before calling the
// embeddings endpoint and L2-normalizes every result. The TermMapper drives
// a chat model in JSON mode and tolerates markdown-wrapped or mildly broken
// JSON responses; a response that cannot be parsed after retries degrades
// to an empty mapping instead of failing the enrichment batch.
package openai
