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

// InsertOwned inserts value under key/hash, taking ownership of key (the
// dictionary stores the slice as-is; the caller must not mutate it
// afterward). If key was already present, its value is replaced and the
// prior value is returned with hadPrior=true.
func (d *Dictionary[V]) InsertOwned(key []byte, hash uint64, value V) (prior V, hadPrior bool) {
	return d.insert(key, hash, value, nil)
}

// InsertOwnedNotify behaves like InsertOwned but additionally reports
// through invalidated (if non-nil) whether the insert may have invalidated
// any live lightweight iterator.
func (d *Dictionary[V]) InsertOwnedNotify(key []byte, hash uint64, value V, invalidated *bool) (prior V, hadPrior bool) {
	return d.insert(key, hash, value, invalidated)
}

// InsertCopied behaves like InsertOwned but clones key before storing it,
// so the caller's slice remains theirs to reuse or mutate.
func (d *Dictionary[V]) InsertCopied(key []byte, hash uint64, value V) (prior V, hadPrior bool) {
	return d.insert(append([]byte(nil), key...), hash, value, nil)
}

// InsertCopiedNotify behaves like InsertCopied but additionally reports
// potential iterator invalidation, like InsertOwnedNotify.
func (d *Dictionary[V]) InsertCopiedNotify(key []byte, hash uint64, value V, invalidated *bool) (prior V, hadPrior bool) {
	return d.insert(append([]byte(nil), key...), hash, value, invalidated)
}

// insert is the shared body of Dictionary::Insert in Dict.cc: look the key
// up, replace in place if found (patching the order log and every
// registered robust iterator's shadow state), or build a new entry and
// route it through insertRelocateAndAdjust if not.
func (d *Dictionary[V]) insert(key []byte, hash uint64, value V, invalidated *bool) (prior V, hadPrior bool) {
	if d.table == nil {
		d.initTable()
	}

	var insertPosition, insertDistance int
	position := d.lookupIndex(key, hash, &insertPosition, &insertDistance)

	if position >= 0 {
		prior = d.table[position].value
		hadPrior = true
		d.table[position].value = value

		if d.ordered {
			if i := slices.IndexFunc(d.order, func(e dictEntry[V]) bool {
				return e.equalKey(d.table[position])
			}); i >= 0 {
				d.order[i].value = value
			}
		}

		for _, it := range d.iterators {
			d.adjustOnReplace(it, d.table[position], value)
		}
	} else {
		if !d.haveOnlyRobustIterators() {
			if invalidated != nil {
				*invalidated = true
			} else {
				d.reporter.Warn("Insert() possibly caused iterator invalidation")
			}
		}

		entry := dictEntry[V]{key: key, hash: hash, value: value, distance: uint16(insertDistance)}
		d.insertRelocateAndAdjust(entry, insertPosition)

		if d.ordered {
			d.order = append(d.order, entry)
		}

		d.numEntries++
		d.cumInserts++
		if d.maxEntries < d.numEntries {
			d.maxEntries = d.numEntries
		}
		if d.numEntries > d.thresholdEntries() {
			d.sizeUp()
		}
	}

	if d.remapping() {
		d.remap()
	}

	if invariantsEnabled {
		d.assertValid()
	}

	return prior, hadPrior
}

// insertRelocateAndAdjust places entry (whose distance field already holds
// the probe distance computed by lookupIndex), performing Robin Hood
// relocation as needed, then extends remapEnd if the relocation straddled
// it and patches every registered robust iterator, mirroring
// Dictionary::InsertRelocateAndAdjust in Dict.cc.
func (d *Dictionary[V]) insertRelocateAndAdjust(entry dictEntry[V], insertPosition int) {
	lastAffectedPosition := insertPosition
	d.insertAndRelocate(&entry, insertPosition, &lastAffectedPosition)

	if d.remapping() && insertPosition <= d.remapEnd && d.remapEnd < lastAffectedPosition {
		d.remapEnd = lastAffectedPosition
	}

	for _, it := range d.iterators {
		d.adjustOnInsert(it, entry, insertPosition, lastAffectedPosition)
	}
}

// insertAndRelocate implements the Robin Hood displacement loop: walk
// forward from insertPosition, and whenever the slot is occupied, take its
// occupant out, push it to the end of its own cluster (bumping its
// distance accordingly), and place the incoming entry where the occupant
// was; continue with the displaced occupant as the new entry to place. If
// the walk runs off the end of the table, grow first and place the entry
// at the now-guaranteed-empty old capacity position. Mirrors
// Dictionary::InsertAndRelocate in Dict.cc.
func (d *Dictionary[V]) insertAndRelocate(entry *dictEntry[V], insertPosition int, lastAffectedPosition *int) {
	for {
		if insertPosition >= d.capacity() {
			d.sizeUp()
			d.table[insertPosition] = *entry
			*lastAffectedPosition = insertPosition
			return
		}
		if d.table[insertPosition].Empty() {
			d.table[insertPosition] = *entry
			*lastAffectedPosition = insertPosition
			return
		}

		displaced := d.table[insertPosition]
		next := d.endOfClusterByPosition(insertPosition)
		displaced.distance += uint16(next - insertPosition)

		d.table[insertPosition] = *entry
		*entry = displaced
		insertPosition = next
	}
}
