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

import "slices"

// Remove deletes key/hash if present and returns its value, or the zero
// value and false if absent. The value is handed back to the caller; Remove
// never invokes the configured deleter (that only happens on Clear).
func (d *Dictionary[V]) Remove(key []byte, hash uint64) (V, bool) {
	return d.remove(key, hash, nil)
}

// RemoveNotify behaves like Remove but additionally reports through
// invalidated (if non-nil) whether the removal may have invalidated any
// live lightweight iterator.
func (d *Dictionary[V]) RemoveNotify(key []byte, hash uint64, invalidated *bool) (V, bool) {
	return d.remove(key, hash, invalidated)
}

func (d *Dictionary[V]) remove(key []byte, hash uint64, invalidated *bool) (V, bool) {
	position := d.lookupIndex(key, hash, nil, nil)
	if position < 0 {
		var zero V
		return zero, false
	}

	if !d.haveOnlyRobustIterators() {
		if invalidated != nil {
			*invalidated = true
		} else {
			d.reporter.Warn("Remove() possibly caused iterator invalidation")
		}
	}

	entry := d.removeRelocateAndAdjust(position)
	d.numEntries--

	if d.ordered {
		if i := slices.IndexFunc(d.order, func(e dictEntry[V]) bool { return e.equalKey(entry) }); i >= 0 {
			d.order = slices.Delete(d.order, i, i+1)
		}
	}

	if invariantsEnabled {
		d.assertValid()
	}

	return entry.value, true
}

// removeRelocateAndAdjust performs backward-shift deletion and then patches
// every registered robust iterator, mirroring
// Dictionary::RemoveRelocateAndAdjust in Dict.cc.
func (d *Dictionary[V]) removeRelocateAndAdjust(position int) dictEntry[V] {
	lastAffectedPosition := position
	entry := d.removeAndRelocate(position, &lastAffectedPosition)

	for _, it := range d.iterators {
		d.adjustOnRemove(it, entry, position, lastAffectedPosition)
	}

	return entry
}

// removeAndRelocate empties position, then repeatedly pulls the tail of the
// next cluster backward to fill the gap it leaves, stopping once the next
// slot is empty, already at distance 0, or the table ends. Mirrors
// Dictionary::RemoveAndRelocate in Dict.cc.
func (d *Dictionary[V]) removeAndRelocate(position int, lastAffectedPosition *int) dictEntry[V] {
	entry := d.table[position]

	for {
		if position == d.capacity()-1 || d.table[position+1].Empty() || d.table[position+1].distance == 0 {
			d.table[position].setEmpty()
			*lastAffectedPosition = position
			return entry
		}

		next := d.tailOfClusterByPosition(position + 1)
		d.table[position] = d.table[next]
		d.table[position].distance -= uint16(next - position)
		position = next
	}
}
