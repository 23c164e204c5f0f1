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


package ingestion

import "errors"

var (
	// ErrRepositoryRequired is returned when a Pipeline is constructed
	// without a vocabulary repository.
	ErrRepositoryRequired = errors.New("vocabulary repository is required")

	// ErrEmbedderRequired is returned when a Pipeline is constructed
	// without an embedder.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrMapperRequired is returned when a Pipeline is constructed without
	// a term mapper.
	ErrMapperRequired = errors.New("term mapper is required")

	// ErrNoTerms is returned when an ingest run is given no terms.
	ErrNoTerms = errors.New("no terms to ingest")
)
