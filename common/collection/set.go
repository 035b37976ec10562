// Copyright 2026 StreamNative, Inc.
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

package collection

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

type Set[T constraints.Ordered] interface {
	Add(t T)
	Contains(t T) bool
	Count() int
	IsEmpty() bool
	GetSorted() []T
	Complement(other Set[T]) Set[T]
}

func NewSet[T constraints.Ordered]() Set[T] {
	return &set[T]{
		items: map[T]struct{}{},
	}
}

func NewSetFrom[T constraints.Ordered](i []T) Set[T] {
	s := NewSet[T]()
	for _, x := range i {
		s.Add(x)
	}
	return s
}

type set[T constraints.Ordered] struct {
	items map[T]struct{}
}

func (s *set[T]) Add(t T) {
	s.items[t] = struct{}{}
}

func (s *set[T]) Contains(t T) bool {
	_, found := s.items[t]
	return found
}

func (s *set[T]) Count() int {
	return len(s.items)
}

func (s *set[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Complement returns the items of s that other does not contain.
func (s *set[T]) Complement(other Set[T]) Set[T] {
	res := NewSet[T]()
	for k := range s.items {
		if !other.Contains(k) {
			res.Add(k)
		}
	}
	return res
}

// GetSorted returns the items in ascending order.
func (s *set[T]) GetSorted() []T {
	r := make([]T, 0, len(s.items))
	for k := range s.items {
		r = append(r, k)
	}
	slices.Sort(r)
	return r
}
