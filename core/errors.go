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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidEntry indicates a VocabularyEntry failed validation.
	ErrInvalidEntry = errors.New("invalid vocabulary entry")

	// ErrEmptyTerm indicates an entry has no term text.
	ErrEmptyTerm = errors.New("term must not be empty")

	// ErrTermNotNormalized indicates an entry's term is not in normalized form.
	ErrTermNotNormalized = errors.New("term must be lowercase and trimmed")

	// ErrNotUnitVector indicates an embedding vector is not unit length.
	ErrNotUnitVector = errors.New("vector is not L2-normalized")

	// ErrTooManyNotes indicates a mapping exceeds the note limit.
	ErrTooManyNotes = errors.New("mapping exceeds maximum of 8 notes")

	// ErrTooManyProcesses indicates a mapping exceeds the process limit.
	ErrTooManyProcesses = errors.New("mapping exceeds maximum of 3 processes")
)
