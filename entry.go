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

package dict

import "bytes"

// HashKey bundles a key's bytes with its precomputed hash, the triple that
// Dictionary consumes. The dictionary never hashes a key itself; callers (or
// the optional dicthash helper package) are responsible for producing hash.
type HashKey struct {
	key  []byte
	hash uint64
}

// NewHashKey wraps key and its precomputed hash for use with Dictionary.
func NewHashKey(key []byte, hash uint64) HashKey {
	return HashKey{key: key, hash: hash}
}

// Key returns the wrapped key bytes.
func (k HashKey) Key() []byte { return k.key }

// Hash returns the precomputed hash.
func (k HashKey) Hash() uint64 { return k.hash }

// Size returns the key's length in bytes.
func (k HashKey) Size() int { return len(k.key) }

// dictEntry is one table slot: key bytes, hash, value, probe distance, and
// an empty flag. It is also the unit of value stored in the insertion-order
// log and in a robust iterator's shadow lists, so copies of it must be cheap
// and comparisons must only ever consider the key fields.
type dictEntry[V any] struct {
	key      []byte
	hash     uint64
	value    V
	distance uint16
	empty    bool
}

// Empty reports whether this slot currently holds no entry.
func (e *dictEntry[V]) Empty() bool {
	return e.empty
}

// setEmpty clears the slot.
func (e *dictEntry[V]) setEmpty() {
	var zero dictEntry[V]
	zero.empty = true
	*e = zero
}

// equalKey reports whether e and o identify the same key: matching hash,
// matching length, and byte-for-byte identical key bytes. Values are never
// consulted, so this holds even when V is not comparable.
func (e dictEntry[V]) equalKey(o dictEntry[V]) bool {
	if e.empty || o.empty {
		return false
	}
	if e.hash != o.hash || len(e.key) != len(o.key) {
		return false
	}
	return bytes.Equal(e.key, o.key)
}

// equal reports whether key and (key_size implied by len, hash) identify
// this entry — the comparison lookupIndex performs against each occupied
// slot it probes.
func (e *dictEntry[V]) equal(key []byte, hash uint64) bool {
	if e.hash != hash || len(e.key) != len(key) {
		return false
	}
	return bytes.Equal(e.key, key)
}
