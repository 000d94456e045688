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

// Option provides an interface to do work on a Dictionary while it is being
// created.
type Option[V any] interface {
	apply(d *Dictionary[V])
}

type initialSizeOption[V any] struct {
	size int
}

func (op initialSizeOption[V]) apply(d *Dictionary[V]) {
	if op.size > 0 {
		d.k = d.log2(op.size)
	}
}

// WithInitialSize preallocates a table of 1<<floor(log2(size)) buckets plus
// the trailing overflow slots, skipping the default lazy-init-on-first-insert
// behavior. When size is not a power of two the table can hold fewer than
// size entries, and it may grow before size entries are inserted; a size of
// 1 or less allocates nothing up front. Equivalent to the original
// constructor's initial_size parameter.
func WithInitialSize[V any](size int) Option[V] {
	return initialSizeOption[V]{size: size}
}

type deleterOption[V any] struct {
	fn func(V)
}

func (op deleterOption[V]) apply(d *Dictionary[V]) {
	d.deleter = op.fn
}

// WithDeleter installs fn to be invoked on every remaining value when Clear
// runs. Equivalent to calling SetDeleter after New.
func WithDeleter[V any](fn func(V)) Option[V] {
	return deleterOption[V]{fn: fn}
}

type reporterOption[V any] struct {
	reporter Reporter
}

func (op reporterOption[V]) apply(d *Dictionary[V]) {
	d.reporter = op.reporter
}

// WithReporter overrides the default zap-backed Reporter.
func WithReporter[V any](r Reporter) Option[V] {
	return reporterOption[V]{reporter: r}
}
