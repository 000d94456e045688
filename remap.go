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

// remapping reports whether a grow's relocation work is still pending.
func (d *Dictionary[V]) remapping() bool {
	return d.remapEnd >= 0
}

// sizeUp doubles the table's bucket count, copying the existing slots to the
// same positions in a newly allocated table. No entries are moved to new
// positions here — remapEnd is set to the old capacity so that both entries already
// sitting under the old hashing and any entry just forced into the newly
// freed slot by a mid-insert overflow are covered by the incremental remap
// that follows. Mirrors Dictionary::SizeUp in Dict.cc.
func (d *Dictionary[V]) sizeUp() {
	prevCapacity := d.capacity()
	d.k++
	capacity := d.capacity()

	grown := make([]dictEntry[V], capacity)
	copy(grown, d.table)
	for i := prevCapacity; i < capacity; i++ {
		grown[i].setEmpty()
	}
	d.table = grown

	d.remapEnd = prevCapacity
	d.remaps++
}

// remap processes a bounded batch of stale slots, walking remapEnd
// downward. It is suppressed entirely while any iterator (lightweight or
// robust) is live, since relocating entries mid-traversal would corrupt
// both iterator kinds' bookkeeping. Mirrors Dictionary::Remap() in Dict.cc.
func (d *Dictionary[V]) remap() {
	if d.numIterators > 0 {
		return
	}

	left := dictRemapEntries
	for d.remapEnd >= 0 && left > 0 {
		if !d.table[d.remapEnd].Empty() && d.remapOne(d.remapEnd, nil) {
			left--
		} else {
			d.remapEnd--
		}
	}
	if d.remapEnd < 0 {
		d.remaps = 0
	}
}

// remapOne relocates the entry at position if it sits in a stale bucket
// under the current hashing, returning true if it moved. newPosition, if
// non-nil, receives the entry's new slot. Mirrors
// Dictionary::Remap(position, *new_position) in Dict.cc.
func (d *Dictionary[V]) remapOne(position int, newPosition *int) bool {
	current := d.bucketByPosition(position)
	expected := bucketByHash(d.table[position].hash, d.k)
	if current == expected {
		return false
	}

	var discard int
	entry := d.removeAndRelocate(position, &discard)

	insertPosition := d.endOfClusterByBucket(expected)
	if newPosition != nil {
		*newPosition = insertPosition
	}
	entry.distance = uint16(insertPosition - expected)

	var lastAffected int
	d.insertAndRelocate(&entry, insertPosition, &lastAffected)
	return true
}
