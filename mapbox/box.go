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

package mapbox

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/pkg/errors"

	"github.com/streamnative/sandbox/common/collection"
	"github.com/streamnative/sandbox/common/text"
)

// Box maps strings to strings. Entries added through AddString are keyed
// by the reversed value; Reset is the only path that stores entries keyed
// by the value itself.
//
// A Box is not safe for concurrent use.
type Box struct {
	entries collection.Map[string, string]
	log     *slog.Logger
}

func New() *Box {
	return &Box{
		entries: collection.NewHashMap[string, string](),
		log: slog.With(
			slog.String("component", "map-box"),
		),
	}
}

func (b *Box) Size() int {
	return b.entries.Size()
}

func (b *Box) Get(key string) (value string, found bool) {
	return b.entries.Get(key)
}

// SortedValues returns every value in ascending order, duplicates included.
func (b *Box) SortedValues() []string {
	values := b.entries.Values()
	sort.Strings(values)
	return values
}

// KeysDescending returns every key, largest first.
func (b *Box) KeysDescending() []string {
	keys := b.sortedKeys()
	res := make([]string, 0, keys.Size())
	it := keys.Iterator()
	for it.End(); it.Prev(); {
		res = append(res, it.Value().(string)) //nolint:revive
	}
	return res
}

// MinKey returns the smallest key, or false when the box is empty.
func (b *Box) MinKey() (string, bool) {
	if b.entries.Empty() {
		return "", false
	}
	it := b.sortedKeys().Iterator()
	it.First()
	return it.Value().(string), true //nolint:revive
}

// MaxKey returns the largest key, or false when the box is empty.
func (b *Box) MaxKey() (string, bool) {
	if b.entries.Empty() {
		return "", false
	}
	it := b.sortedKeys().Iterator()
	it.Last()
	return it.Value().(string), true //nolint:revive
}

// UppercasedKeys returns the keys converted to upper case, in no
// particular order. The box itself is not modified.
func (b *Box) UppercasedKeys() []string {
	keys := b.entries.Keys()
	for i, k := range keys {
		keys[i] = strings.ToUpper(k)
	}
	return keys
}

func (b *Box) DistinctValues() int {
	return collection.NewSetFrom(b.entries.Values()).Count()
}

// AddString stores value under its reversed form, replacing any entry
// already held under that key.
func (b *Box) AddString(value string) {
	key := text.Reverse(value)
	b.entries.Put(key, value)
	b.log.Debug(
		"Added string",
		slog.String("key", key),
		slog.String("value", value),
	)
}

// RemoveByKey looks up the value stored at key and removes every entry
// holding that value, not only the one at key.
func (b *Box) RemoveByKey(key string) {
	value, found := b.entries.Get(key)
	if !found {
		return
	}
	b.RemoveByValue(value)
}

// RemoveByValue removes every entry holding value.
func (b *Box) RemoveByValue(value string) {
	removed := b.entries.RemoveIf(func(_ string, v string) bool {
		return v == value
	})
	b.log.Debug(
		"Removed entries by value",
		slog.String("value", value),
		slog.Int("removed", removed),
	)
}

// Reset replaces the content with one entry per object, keyed by the
// string form of the object itself. A nil object fails with
// text.ErrNilElement and leaves the box untouched.
func (b *Box) Reset(objects []any) error {
	values := make([]string, len(objects))
	for i, o := range objects {
		s, err := text.ToString(o)
		if err != nil {
			b.log.Warn(
				"Rejected reset",
				slog.Int("index", i),
				slog.Any("error", err),
			)
			return errors.Wrapf(err, "element %d", i)
		}
		values[i] = s
	}

	b.entries.Clear()
	for _, v := range values {
		b.entries.Put(v, v)
	}
	b.log.Debug(
		"Reset entries",
		slog.Int("size", b.entries.Size()),
		slog.String("entries", b.entries.String()),
	)
	return nil
}

// UppercaseKeys moves every entry whose key has lower case characters under
// the upper cased key. Keys are visited in ascending order, so when two
// keys collide on the same upper cased form the larger one wins.
func (b *Box) UppercaseKeys() {
	keys := b.entries.Keys()
	sort.Strings(keys)

	for _, k := range keys {
		if text.IsUpper(k) {
			continue
		}
		value, _ := b.entries.Get(k)
		b.entries.Put(strings.ToUpper(k), value)
		b.entries.Remove(k)
	}
}

// ContainsValues reports whether every candidate is stored as a value.
// An empty candidate list is always contained.
func (b *Box) ContainsValues(candidates []string) bool {
	missing := collection.NewSetFrom(candidates).
		Complement(collection.NewSetFrom(b.entries.Values()))
	if missing.IsEmpty() {
		return true
	}
	b.log.Debug(
		"Values not contained",
		slog.Any("missing", missing.GetSorted()),
	)
	return false
}

func (b *Box) sortedKeys() *treeset.Set {
	keys := treeset.NewWith(utils.StringComparator)
	for _, k := range b.entries.Keys() {
		keys.Add(k)
	}
	return keys
}
