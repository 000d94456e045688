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

// fibHash multiplies a hash by the nearest odd integer to 2^64/phi;
// bucketByHash then keeps the low k bits of the product (the product modulo
// the bucket count). Because the multiplier is odd, those low k bits depend
// only on the low k bits of the input hash. Disabled by fibHashEnabled for
// callers who already supply well-mixed hashes.
func fibHash(h uint64) uint64 {
	h &= hashMask
	return h * fibHashMultiplier
}

// bucketByHash maps a raw hash to a bucket index in a table of size
// 1<<log2Buckets.
func bucketByHash(h uint64, log2Buckets int) int {
	if log2Buckets == 0 {
		return 0 // shifting by 64 is undefined; a single-bucket table is bucket 0.
	}
	mixed := h
	if fibHashEnabled {
		mixed = fibHash(h)
	}
	m := 64 - log2Buckets
	mixed <<= uint(m)
	mixed >>= uint(m)
	return int(mixed)
}

// bucketByPosition returns the ideal bucket of the entry occupying
// position, derived from its stored probe distance.
func (d *Dictionary[V]) bucketByPosition(position int) int {
	return position - int(d.table[position].distance)
}

// endOfClusterByBucket walks forward from bucket while occupied slots
// belong to buckets <= bucket, returning the first position past the
// cluster (which may be empty or out of range).
func (d *Dictionary[V]) endOfClusterByBucket(bucket int) int {
	i := bucket
	capacity := d.capacity()
	for i < capacity && !d.table[i].Empty() && d.bucketByPosition(i) <= bucket {
		i++
	}
	return i
}

// headOfClusterByPosition walks backward from position to the first slot
// sharing its bucket.
func (d *Dictionary[V]) headOfClusterByPosition(position int) int {
	bucket := d.bucketByPosition(position)
	i := position
	for i >= bucket && d.bucketByPosition(i) == bucket {
		i--
	}
	if i == bucket {
		return i
	}
	return i + 1
}

// tailOfClusterByPosition walks forward from position to the last slot
// sharing its bucket.
func (d *Dictionary[V]) tailOfClusterByPosition(position int) int {
	bucket := d.bucketByPosition(position)
	i := position
	capacity := d.capacity()
	for i < capacity && !d.table[i].Empty() && d.bucketByPosition(i) == bucket {
		i++
	}
	return i - 1
}

// endOfClusterByPosition returns one past the last slot sharing position's
// bucket — the spot at which a displaced entry from that bucket is
// re-appended.
func (d *Dictionary[V]) endOfClusterByPosition(position int) int {
	return d.tailOfClusterByPosition(position) + 1
}

// offsetInClusterByPosition returns position's offset from the head of its
// cluster; used only for diagnostics.
func (d *Dictionary[V]) offsetInClusterByPosition(position int) int {
	return position - d.headOfClusterByPosition(position)
}

// next scans forward from position (which may be -1) to the next occupied
// slot, or capacity() if none remains.
func (d *Dictionary[V]) next(position int) int {
	capacity := d.capacity()
	for {
		position++
		if position >= capacity || !d.table[position].Empty() {
			return position
		}
	}
}
