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

import (
	"fmt"

	"go.uber.org/zap"
)

// assertValid walks the table and order log checking the structural
// invariants a corrupt Robin Hood table would violate: every occupied slot's
// distance must agree with the gap between its position and its ideal
// bucket, occupied slots sharing a bucket must be contiguous (no empty gaps
// within a cluster), no probe distance may exceed tooFarToReach, and
// numEntries must match both the occupied-slot count and (when ordered) the
// order log's length. Called only when invariantsEnabled is true — this is
// Dictionary::AssertValid from Dict.cc, reduced to what Go's value model
// still needs checking. A violation is fatal, same as the original.
func (d *Dictionary[V]) assertValid() {
	if d.table == nil {
		if d.numEntries != 0 {
			d.reporter.Fatal("assertValid: nil table with nonzero numEntries", zap.Int("numEntries", d.numEntries))
		}
		return
	}

	occupied := 0
	capacity := d.capacity()
	for position := 0; position < capacity; position++ {
		entry := &d.table[position]
		if entry.Empty() {
			continue
		}
		occupied++

		if int(entry.distance) > position {
			d.reporter.Fatal("assertValid: distance exceeds position",
				zap.Int("position", position), zap.Uint16("distance", entry.distance))
		}
		if int(entry.distance) >= tooFarToReach {
			d.reporter.Fatal("assertValid: distance too far to reach",
				zap.Int("position", position), zap.Uint16("distance", entry.distance))
		}

		bucket := d.bucketByPosition(position)
		if bucket < 0 || bucket >= d.buckets() {
			d.reporter.Fatal("assertValid: ideal bucket outside the non-overflow region",
				zap.Int("position", position), zap.Int("bucket", bucket), zap.Int("buckets", d.buckets()))
		}
		if (position == 0 || d.table[position-1].Empty()) && entry.distance != 0 {
			d.reporter.Fatal("assertValid: empty gap inside a cluster",
				zap.Int("position", position), zap.Uint16("distance", entry.distance))
		}
		if position > 0 && !d.table[position-1].Empty() {
			prevBucket := d.bucketByPosition(position - 1)
			if prevBucket > bucket {
				d.reporter.Fatal("assertValid: cluster buckets out of order",
					zap.Int("position", position), zap.Int("bucket", bucket), zap.Int("prevBucket", prevBucket))
			}
		}

		expected := bucketByHash(entry.hash, d.k)
		if !d.remapping() && expected != bucket {
			d.reporter.Fatal("assertValid: entry's ideal bucket disagrees with its hash",
				zap.Int("position", position), zap.Int("bucket", bucket), zap.Int("expected", expected))
		}
	}

	if occupied != d.numEntries {
		d.reporter.Fatal("assertValid: occupied slot count disagrees with numEntries",
			zap.Int("occupied", occupied), zap.Int("numEntries", d.numEntries))
	}
	if d.ordered && len(d.order) != d.numEntries {
		d.reporter.Fatal("assertValid: order log length disagrees with numEntries",
			zap.Int("orderLen", len(d.order)), zap.Int("numEntries", d.numEntries))
	}
	if d.maxEntries < d.numEntries {
		d.reporter.Fatal("assertValid: maxEntries fell below numEntries",
			zap.Int("maxEntries", d.maxEntries), zap.Int("numEntries", d.numEntries))
	}
}

// DistanceStats returns the maximum and mean probe distance currently held
// in the table, a diagnostic mirroring Dictionary::DistanceStats in Dict.cc.
// It is cheap enough to call outside of invariantsEnabled and is exported
// for callers who want to monitor clustering health.
func (d *Dictionary[V]) DistanceStats() (max int, mean float64) {
	if d.table == nil || d.numEntries == 0 {
		return 0, 0
	}
	total := 0
	for i := range d.table {
		if d.table[i].Empty() {
			continue
		}
		dist := int(d.table[i].distance)
		if dist > max {
			max = dist
		}
		total += dist
	}
	return max, float64(total) / float64(d.numEntries)
}

// debugString renders the table's occupied slots for debugging, mirroring
// the teacher's debugString/Dump helpers. Not used by assertValid itself.
func (d *Dictionary[V]) debugString() string {
	if d.table == nil {
		return "dict(unallocated)"
	}
	s := fmt.Sprintf("dict(k=%d, entries=%d)", d.k, d.numEntries)
	for i := range d.table {
		if d.table[i].Empty() {
			continue
		}
		s += fmt.Sprintf("\n  [%d] dist=%d offset=%d hash=%#x key=%q",
			i, d.table[i].distance, d.offsetInClusterByPosition(i), d.table[i].hash, d.table[i].key)
	}
	return s
}
