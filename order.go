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

// NthEntry returns the value of the nth-ever-inserted key still present, in
// insertion order, or the zero value and false if this dictionary is
// unordered or n is out of range. Mirrors Dictionary::NthEntry in Dict.cc.
func (d *Dictionary[V]) NthEntry(n int) (V, bool) {
	var zero V
	if !d.ordered || n < 0 || n >= len(d.order) {
		return zero, false
	}
	return d.order[n].value, true
}
