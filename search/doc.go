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


// Package search ranks free-text queries against the vocabulary by fusing
// two independent matchers.
//
// The lexical matcher (Lexical) handles surface-form variation: typos,
// truncations, and containment. The semantic matcher (Semantic) handles
// meaning: it embeds the query and compares it to stored term vectors by
// cosine similarity. Fuse combines their candidate lists additively, with
// semantic scores renormalized from [threshold,1] to [0,1] first, so that
// terms found by both matchers rank above equally strong single-matcher
// hits.
//
// Searcher is the production entry point: it snapshots the vocabulary,
// runs the matchers concurrently, and degrades to lexical-only results
// when the embedding backend is unavailable. The standalone Lexical,
// Semantic, Hybrid, and Fuse functions exist so the evaluation harness can
// run each method in isolation over a shared snapshot.
//
// All rankings are deterministic: equal scores resolve in catalog order,
// the order terms were first ingested.
package search
