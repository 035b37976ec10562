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
	"fmt"
	"sort"
	"strings"
)

// hashMap is a Map backed by a native go map. It is not safe for
// concurrent use.
//
// Keys and Values return freshly allocated slices, so callers can
// never reach the underlying container.
type hashMap[K comparable, V any] struct {
	container map[K]V
}

func (h *hashMap[K, V]) Put(key K, value V) {
	h.container[key] = value
}

func (h *hashMap[K, V]) Get(key K) (value V, found bool) {
	value, found = h.container[key]
	return value, found
}

func (h *hashMap[K, V]) Remove(key K) {
	delete(h.container, key)
}

func (h *hashMap[K, V]) RemoveIf(predicate func(key K, value V) bool) int {
	removed := 0
	for k, v := range h.container {
		if predicate(k, v) {
			delete(h.container, k)
			removed++
		}
	}
	return removed
}

func (h *hashMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(h.container))
	for key := range h.container {
		keys = append(keys, key)
	}
	return keys
}

func (h *hashMap[K, V]) Values() []V {
	values := make([]V, 0, len(h.container))
	for _, value := range h.container {
		values = append(values, value)
	}
	return values
}

func (h *hashMap[K, V]) Empty() bool {
	return len(h.container) == 0
}

func (h *hashMap[K, V]) Size() int {
	return len(h.container)
}

func (h *hashMap[K, V]) Clear() {
	h.container = make(map[K]V)
}

// String renders the entries ordered by their formatted key, so the
// output is stable across calls.
func (h *hashMap[K, V]) String() string {
	entries := make([]string, 0, len(h.container))
	for k, v := range h.container {
		entries = append(entries, fmt.Sprintf("%v: %v", k, v))
	}
	sort.Strings(entries)

	var builder strings.Builder
	builder.WriteString("{")
	builder.WriteString(strings.Join(entries, ", "))
	builder.WriteString("}")
	return builder.String()
}
