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

import "go.uber.org/zap"

// Lookup returns the value stored for key/hash, or the zero value and false
// if absent.
func (d *Dictionary[V]) Lookup(key []byte, hash uint64) (V, bool) {
	position := d.lookupIndex(key, hash, nil, nil)
	if position < 0 {
		var zero V
		return zero, false
	}
	return d.table[position].value, true
}

// lookupIndex returns the position of key/hash if present, or -1 otherwise.
// On a miss, if insertPosition/insertDistance are non-nil they are set to
// where an insert should begin and the probe distance it would need,
// exactly mirroring Dictionary::LookupIndex in Dict.cc. A found entry that
// lives in a not-yet-remapped region is relocated in place immediately,
// provided no iteration is in progress.
func (d *Dictionary[V]) lookupIndex(key []byte, hash uint64, insertPosition, insertDistance *int) int {
	if d.table == nil {
		return -1
	}

	bucket := bucketByHash(hash, d.k)
	position := d.lookupIndexInRange(key, hash, bucket, d.capacity(), insertPosition, insertDistance)
	if position >= 0 {
		return position
	}

	for i := 1; i <= d.remaps; i++ {
		prevBucket := bucketByHash(hash, d.k-i)
		if prevBucket > d.remapEnd {
			continue
		}
		position = d.lookupIndexInRange(key, hash, prevBucket, d.remapEnd+1, nil, nil)
		if position >= 0 {
			if d.numIterators == 0 {
				d.remapOne(position, &position)
			}
			return position
		}
	}

	return -1
}

// lookupIndexInRange scans the cluster starting at bucket, stopping at end,
// for an occupied slot matching key/hash. On a miss it reports where the
// insert should begin (insertPosition) and how far that is from bucket
// (insertDistance), matching the (bucket, end) overload of
// Dictionary::LookupIndex in Dict.cc.
func (d *Dictionary[V]) lookupIndexInRange(key []byte, hash uint64, bucket, end int, insertPosition, insertDistance *int) int {
	i := bucket
	for i < end && !d.table[i].Empty() && d.bucketByPosition(i) <= bucket {
		if d.bucketByPosition(i) == bucket && d.table[i].equal(key, hash) {
			return i
		}
		i++
	}

	if insertPosition != nil {
		*insertPosition = i
	}
	if insertDistance != nil {
		*insertDistance = i - bucket
		if *insertDistance >= tooFarToReach {
			d.reporter.Fatal("dictionary insertion distance too far",
				zap.Int("length", d.numEntries),
				zap.Int("distance", *insertDistance))
		}
	}

	return -1
}
