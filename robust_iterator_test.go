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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRobustIteratorSurvivesRemoveOfUnvisitedEntry(t *testing.T) {
	d := New[int](Unordered)
	for i := 0; i < 5; i++ {
		d.InsertOwned(keyFor(i), uint64(i), i)
	}

	it := d.RobustIterator()
	require.True(t, it.Next())
	removedHash := ^uint64(0)
	for i := 0; i < 5; i++ {
		h := uint64(i)
		if h != it.Hash() {
			removedHash = h
			break
		}
	}
	d.Remove(keyFor(int(removedHash)), removedHash)

	seen := map[uint64]bool{it.Hash(): true}
	for it.Next() {
		seen[it.Hash()] = true
	}
	it.Close()

	_, stillThere := seen[removedHash]
	require.False(t, stillThere)
	require.Len(t, seen, 4)
}

func TestRobustIteratorSurvivesRemoveOfCurrentEntry(t *testing.T) {
	d := New[int](Unordered)
	for i := 0; i < 3; i++ {
		d.InsertOwned(keyFor(i), uint64(i), i)
	}

	it := d.RobustIterator()
	require.True(t, it.Next())
	curHash := it.Hash()
	d.Remove(keyFor(int(curHash)), curHash)

	count := 1
	for it.Next() {
		count++
	}
	it.Close()
	require.Equal(t, 3, count)
}

func TestRobustIteratorClosingDeregisters(t *testing.T) {
	d := New[int](Unordered)
	d.InsertOwned(keyFor(1), 1, 1)

	it := d.RobustIterator()
	require.Len(t, d.iterators, 1)
	it.Close()
	require.Len(t, d.iterators, 0)
	require.Equal(t, 0, d.numIterators)

	it.Close()
	require.Len(t, d.iterators, 0)
}

func TestRobustIteratorMultipleLiveSimultaneously(t *testing.T) {
	d := New[int](Unordered)
	for i := 0; i < 10; i++ {
		d.InsertOwned(keyFor(i), uint64(i), i)
	}

	it1 := d.RobustIterator()
	it2 := d.RobustIterator()

	seen1 := map[uint64]bool{}
	seen2 := map[uint64]bool{}
	for it1.Next() {
		seen1[it1.Hash()] = true
	}
	for it2.Next() {
		seen2[it2.Hash()] = true
	}
	it1.Close()
	it2.Close()

	require.Len(t, seen1, 10)
	require.Len(t, seen2, 10)
}

func TestRobustIteratorInsertDuringTraversalIsVisited(t *testing.T) {
	d := New[int](Unordered)
	for i := 0; i < 4; i++ {
		d.InsertOwned(keyFor(i), uint64(i), i)
	}

	it := d.RobustIterator()
	require.True(t, it.Next())

	d.InsertOwned(keyFor(100), 100, 100)

	count := 1
	found100 := false
	for it.Next() {
		count++
		if it.Hash() == 100 {
			found100 = true
		}
	}
	it.Close()

	require.True(t, found100)
	require.Equal(t, 5, count)
}

func TestRobustIteratorOnEmptyDict(t *testing.T) {
	d := New[int](Unordered)
	it := d.RobustIterator()
	require.False(t, it.Next())
	it.Close()
}

func TestHaveOnlyRobustIteratorsDistinguishesKinds(t *testing.T) {
	d := New[int](Unordered)
	d.InsertOwned(keyFor(1), 1, 1)

	require.True(t, d.haveOnlyRobustIterators())

	lightweight := d.Iterator()
	require.False(t, d.haveOnlyRobustIterators())
	lightweight.Close()

	robust := d.RobustIterator()
	require.True(t, d.haveOnlyRobustIterators())
	robust.Close()
}
