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

// RobustIterator survives arbitrary inserts, removes, and value
// replacements made to its dictionary while it is live, by tracking
// newly-inserted entries it still owes a visit and entries it has already
// delivered but that structural shuffling might otherwise hand back twice.
//
// The zero value is not usable; obtain one from Dictionary.RobustIterator.
// Close must be called when done (e.g. via defer).
type RobustIterator[V any] struct {
	dict *Dictionary[V]

	curr    dictEntry[V]
	hasCurr bool

	next int // -1 means "not yet started"

	inserted []dictEntry[V]
	visited  []dictEntry[V]

	closed bool
}

// RobustIterator registers and returns a new robust iterator positioned
// before the first entry. Mirrors RobustDictIterator's construction in
// Dict.cc.
func (d *Dictionary[V]) RobustIterator() *RobustIterator[V] {
	it := &RobustIterator[V]{dict: d, next: -1}
	d.incrIters()
	d.iterators = append(d.iterators, it)
	return it
}

// Next advances to the next entry, delivering newly inserted entries ahead
// of the main traversal (see getNextRobustIteration), and reports whether
// one was found.
func (it *RobustIterator[V]) Next() bool {
	if it.dict == nil {
		it.hasCurr = false
		return false
	}
	entry, ok := it.dict.getNextRobustIteration(it)
	it.curr = entry
	it.hasCurr = ok
	return ok
}

// Key returns the current entry's key. Only valid after a call to Next that
// returned true.
func (it *RobustIterator[V]) Key() []byte {
	return it.curr.key
}

// Hash returns the current entry's hash.
func (it *RobustIterator[V]) Hash() uint64 {
	return it.curr.hash
}

// Value returns the current entry's value.
func (it *RobustIterator[V]) Value() V {
	return it.curr.value
}

// Close deregisters the iterator from its dictionary. Safe to call more
// than once.
func (it *RobustIterator[V]) Close() {
	if it.dict == nil || it.closed {
		return
	}
	it.closed = true
	d := it.dict
	d.decrIters()
	if i := slices.Index(d.iterators, it); i >= 0 {
		d.iterators = slices.Delete(d.iterators, i, i+1)
	}
	it.dict = nil
	it.inserted = nil
	it.visited = nil
}

// getNextRobustIteration implements the pull side of robust iteration:
// drain any shadow-inserted entries first (newest first — cheaper to pop
// from the tail, order unspecified), then resume the slot walk, skipping
// empty slots (possible after a shrink of the non-nil region — none occurs
// in this implementation, since the table never shrinks, but the check is
// kept for parity with the original) and anything already marked visited.
// Mirrors Dictionary::GetNextRobustIteration in Dict.cc.
func (d *Dictionary[V]) getNextRobustIteration(it *RobustIterator[V]) (dictEntry[V], bool) {
	if d.table == nil {
		return dictEntry[V]{}, false
	}

	if n := len(it.inserted); n > 0 {
		e := it.inserted[n-1]
		it.inserted = it.inserted[:n-1]
		return e, true
	}

	if it.next < 0 {
		it.next = d.next(-1)
	}

	capacity := d.capacity()
	if it.next < capacity && d.table[it.next].Empty() {
		it.next = d.next(it.next)
	}

	for len(it.visited) > 0 && it.next < capacity {
		i := slices.IndexFunc(it.visited, func(e dictEntry[V]) bool { return e.equalKey(d.table[it.next]) })
		if i < 0 {
			break
		}
		it.visited = slices.Delete(it.visited, i, i+1)
		it.next = d.next(it.next)
	}

	if it.next >= capacity {
		return dictEntry[V]{}, false
	}

	e := d.table[it.next]
	it.next = d.next(it.next)
	return e, true
}

// adjustOnInsert patches it for a new-key insert at insertPosition that, as
// a side effect of Robin Hood displacement, disturbed slots up through
// lastAffectedPosition. Mirrors Dictionary::AdjustOnInsert in Dict.cc.
func (d *Dictionary[V]) adjustOnInsert(it *RobustIterator[V], entry dictEntry[V], insertPosition, lastAffectedPosition int) {
	it.inserted = removeKey(it.inserted, entry)
	it.visited = removeKey(it.visited, entry)

	if insertPosition < it.next {
		it.inserted = append(it.inserted, entry)
	}
	if insertPosition < it.next && it.next <= lastAffectedPosition {
		k := d.tailOfClusterByPosition(it.next)
		it.visited = append(it.visited, d.table[k])
	}
}

// adjustOnRemove patches it for a removal at position that, via
// backward-shift deletion, disturbed slots up through lastAffectedPosition.
// Mirrors Dictionary::AdjustOnRemove in Dict.cc.
func (d *Dictionary[V]) adjustOnRemove(it *RobustIterator[V], entry dictEntry[V], position, lastAffectedPosition int) {
	it.inserted = removeKey(it.inserted, entry)
	it.visited = removeKey(it.visited, entry)

	if position < it.next && it.next <= lastAffectedPosition {
		moved := d.headOfClusterByPosition(it.next - 1)
		if moved < position {
			moved = position
		}
		it.inserted = append(it.inserted, d.table[moved])
	}

	capacity := d.capacity()
	if it.next < capacity && d.table[it.next].Empty() {
		it.next = d.next(it.next)
	}

	if it.hasCurr && it.curr.equalKey(entry) {
		if it.next >= 0 && it.next < capacity && !d.table[it.next].Empty() {
			it.curr = d.table[it.next]
		} else {
			it.hasCurr = false
		}
	}
}

// adjustOnReplace patches it when an existing key's value is overwritten in
// place: if curr or an entry in inserted matches, its stored value copy is
// refreshed too, so a dereference after the fact observes the new value.
func (d *Dictionary[V]) adjustOnReplace(it *RobustIterator[V], entry dictEntry[V], value V) {
	if it.hasCurr && it.curr.equalKey(entry) {
		it.curr.value = value
	}
	for i := range it.inserted {
		if it.inserted[i].equalKey(entry) {
			it.inserted[i].value = value
		}
	}
}

func removeKey[V any](list []dictEntry[V], entry dictEntry[V]) []dictEntry[V] {
	return slices.DeleteFunc(list, func(e dictEntry[V]) bool { return e.equalKey(entry) })
}
