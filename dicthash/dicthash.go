// Copyright 2024 The Authors
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

// Package dicthash is an optional key-hashing helper for callers of
// package dict who have no hash of their own to supply. dict's core never
// imports this package — the dictionary only ever consumes a
// caller-supplied hash — so pulling dicthash in is purely opt-in.
package dicthash

import "github.com/cespare/xxhash/v2"

// Sum64 hashes key for use as a dict.Dictionary hash input.
func Sum64(key []byte) uint64 {
	return xxhash.Sum64(key)
}

// Sum64String hashes s without requiring the caller to first convert it to
// a []byte.
func Sum64String(s string) uint64 {
	return xxhash.Sum64String(s)
}
