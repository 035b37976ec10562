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

package arraybox

import (
	"log/slog"
	"math"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/streamnative/sandbox/common/random"
	"github.com/streamnative/sandbox/common/text"
)

var (
	ErrNegativeCount = errors.New("negative count")
	ErrInvalidRange  = errors.New("invalid range")
)

// Box owns one sequence of integers and one sequence of strings. Neither
// sequence is ever shared with callers: every accessor returns a copy.
//
// A Box is not safe for concurrent use.
type Box struct {
	integers []int
	strings  []string

	source random.Source
	log    *slog.Logger
}

func New(opts ...Option) *Box {
	o := newOptions(opts...)
	return &Box{
		integers: []int{},
		strings:  []string{},
		source:   o.source,
		log: slog.With(
			slog.String("component", "array-box"),
		),
	}
}

func (b *Box) CopyIntegers() []int {
	return slices.Clone(b.integers)
}

func (b *Box) CopyStrings() []string {
	return slices.Clone(b.strings)
}

func (b *Box) CountIntegers() int {
	return len(b.integers)
}

func (b *Box) CountStrings() int {
	return len(b.strings)
}

func (b *Box) AppendInteger(value int) {
	b.integers = append(b.integers, value)
}

func (b *Box) AppendString(value string) {
	b.strings = append(b.strings, value)
}

// RemoveInteger deletes every occurrence of value, keeping the relative
// order of the remaining integers.
func (b *Box) RemoveInteger(value int) {
	n := make([]int, 0, len(b.integers))
	for _, i := range b.integers {
		if i != value {
			n = append(n, i)
		}
	}
	b.log.Debug(
		"Removed integer occurrences",
		slog.Int("value", value),
		slog.Int("removed", len(b.integers)-len(n)),
	)
	b.integers = n
}

// RemoveString deletes every occurrence of value. Comparison is case-sensitive.
func (b *Box) RemoveString(value string) {
	n := make([]string, 0, len(b.strings))
	for _, s := range b.strings {
		if s != value {
			n = append(n, s)
		}
	}
	b.log.Debug(
		"Removed string occurrences",
		slog.String("value", value),
		slog.Int("removed", len(b.strings)-len(n)),
	)
	b.strings = n
}

// InsertIntegerAt inserts value at pos, clamped to [0, CountIntegers()].
func (b *Box) InsertIntegerAt(value int, pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(b.integers) {
		pos = len(b.integers)
	}

	n := make([]int, 0, len(b.integers)+1)
	n = append(n, b.integers[:pos]...)
	n = append(n, value)
	n = append(n, b.integers[pos:]...)
	b.integers = n
}

// RemoveIntegerAt removes the integer at pos. Positions outside
// [0, CountIntegers()) are ignored.
func (b *Box) RemoveIntegerAt(pos int) {
	if pos < 0 || pos >= len(b.integers) {
		b.log.Debug(
			"Ignoring removal at out of range position",
			slog.Int("position", pos),
			slog.Int("count", len(b.integers)),
		)
		return
	}

	n := make([]int, 0, len(b.integers)-1)
	n = append(n, b.integers[:pos]...)
	n = append(n, b.integers[pos+1:]...)
	b.integers = n
}

// ResetIntegers replaces the integers with the given values truncated
// toward zero. NaN becomes 0 and values outside the int domain saturate.
func (b *Box) ResetIntegers(values []float64) {
	n := make([]int, len(values))
	for i, v := range values {
		n[i] = truncate(v)
	}
	b.integers = n
}

// ResetStrings replaces the strings with the string form of each object.
// A nil object fails with text.ErrNilElement and leaves the box untouched.
func (b *Box) ResetStrings(objects []any) error {
	n := make([]string, len(objects))
	for i, o := range objects {
		s, err := text.ToString(o)
		if err != nil {
			b.log.Warn(
				"Rejected strings reset",
				slog.Int("index", i),
				slog.Any("error", err),
			)
			return errors.Wrapf(err, "element %d", i)
		}
		n[i] = s
	}
	b.strings = n
	return nil
}

// AbsoluteIntegers negates every negative integer in place. math.MinInt has
// no positive counterpart and stays as is.
func (b *Box) AbsoluteIntegers() {
	for i, v := range b.integers {
		if v < 0 {
			b.integers[i] = -v
		}
	}
}

func (b *Box) SortIntegers() {
	slices.Sort(b.integers)
}

// SortStrings orders the strings by byte value, which for valid UTF-8 is
// the same as ordering by code point.
func (b *Box) SortStrings() {
	slices.Sort(b.strings)
}

func (b *Box) CountInteger(value int) int {
	count := 0
	for _, i := range b.integers {
		if i == value {
			count++
		}
	}
	return count
}

// CountString counts the strings equal to value, ignoring case.
func (b *Box) CountString(value string) int {
	count := 0
	for _, s := range b.strings {
		if strings.EqualFold(s, value) {
			count++
		}
	}
	return count
}

// FindInteger returns the ascending positions holding value.
func (b *Box) FindInteger(value int) []int {
	positions := make([]int, 0, b.CountInteger(value))
	for i, v := range b.integers {
		if v == value {
			positions = append(positions, i)
		}
	}
	return positions
}

// IntegerRange returns [min, max] of the integers, or an empty slice when
// there are none.
func (b *Box) IntegerRange() []int {
	if len(b.integers) == 0 {
		return []int{}
	}

	lo, hi := b.integers[0], b.integers[0]
	for _, v := range b.integers[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return []int{lo, hi}
}

func (b *Box) Histogram() map[int]int {
	histogram := make(map[int]int)
	for _, v := range b.integers {
		histogram[v]++
	}
	return histogram
}

// CountRepeatedTwice returns how many distinct integers occur exactly twice.
// Values occurring three or more times are not counted.
func (b *Box) CountRepeatedTwice() int {
	count := 0
	for _, occurrences := range b.Histogram() {
		if occurrences == 2 {
			count++
		}
	}
	return count
}

// EqualIntegers reports whether other holds the same integers in the same order.
func (b *Box) EqualIntegers(other []int) bool {
	return slices.Equal(b.integers, other)
}

// SameIntegers reports whether other holds the same multiset of integers,
// regardless of order. Neither sequence is modified.
func (b *Box) SameIntegers(other []int) bool {
	if len(other) != len(b.integers) {
		return false
	}

	mine := slices.Clone(b.integers)
	theirs := slices.Clone(other)
	slices.Sort(mine)
	slices.Sort(theirs)
	return slices.Equal(mine, theirs)
}

// Randomize replaces the integers with count values drawn uniformly from
// the inclusive range [low, high].
func (b *Box) Randomize(count int, low int, high int) error {
	if count < 0 {
		return errors.Wrapf(ErrNegativeCount, "count %d", count)
	}
	if low > high {
		return errors.Wrapf(ErrInvalidRange, "[%d, %d]", low, high)
	}

	n := make([]int, count)
	for i := range n {
		n[i] = b.source.IntInRange(low, high)
	}
	b.integers = n

	b.log.Debug(
		"Randomized integers",
		slog.Int("count", count),
		slog.Int("min", low),
		slog.Int("max", high),
	)
	return nil
}

func truncate(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt:
		return math.MaxInt
	case v <= math.MinInt:
		return math.MinInt
	}
	return int(math.Trunc(v))
}

