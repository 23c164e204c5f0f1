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


// Package storage provides the storage abstraction layer for notematch.
//
// This package defines the repository interface that decouples the
// vocabulary embedding store from the matching logic, allowing different
// backends (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// # Constructor Return Type Pattern
//
// Public constructors in backend packages return the
// storage.VocabularyRepository interface to enforce abstraction:
//
//	repo, err := badger.NewVocabularyRepository(backend)
//
// # Catalog Order
//
// The store assigns each new term a monotonically increasing sequence
// number. GetAll and Terms return entries in sequence order, which is the
// "original vocabulary order" the rankers use to break score ties. Backends
// must preserve this ordering contract.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support concurrent
// access from multiple goroutines. The matchers treat the store as
// read-only for the duration of a query.
package storage
