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

const (
	// dictThresholdBits is the log2(buckets) at or below which a table only
	// grows when it is completely full (load factor 1.0). Above this threshold,
	// thresholdEntries backs off to dictLoadFactorBits.
	dictThresholdBits = 5

	// dictLoadFactorBits controls the load factor for tables above the small
	// threshold: threshold = capacity - capacity>>dictLoadFactorBits, i.e.
	// 1 - 1/2^dictLoadFactorBits (75% for the default of 2).
	dictLoadFactorBits = 2

	// dictRemapEntries is the number of stale slots considered per call to
	// remap, bounding the work any single mutator pays for a pending grow.
	dictRemapEntries = 16

	// tooFarToReach is the probe-distance ceiling. Exceeding it indicates
	// either a corrupt table or a degenerate hash function and is fatal.
	tooFarToReach = 128

	// hashMask is applied before Fibonacci mixing; kept at the full 64 bits.
	hashMask = ^uint64(0)

	// fibHashMultiplier is 2^64/phi rounded to an odd integer; fibHash
	// multiplies by it before bucketByHash keeps the low log2(buckets) bits.
	fibHashMultiplier = 11400714819323198485
)

// fibHashEnabled disables Fibonacci mixing when false, using the raw hash
// directly as the bucket index source. Mirrors the original's
// DICT_NO_FIB_HASH compile-time flag.
const fibHashEnabled = true

// invariantsEnabled gates the expensive structural self-check
// (assertValid) after every insert and remove; off by default, same as the
// teacher's own debug/invariants build flags. Tests that want the check call
// assertValid directly.
const invariantsEnabled = false
