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
	"bytes"
	"encoding/json"
	"log/slog"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamnative/sandbox/common/logging"
	"github.com/streamnative/sandbox/common/text"
)

func newBox(values ...string) *Box {
	b := New()
	for _, v := range values {
		b.AddString(v)
	}
	return b
}

func entries(b *Box) map[string]string {
	res := map[string]string{}
	for _, k := range b.entries.Keys() {
		v, _ := b.Get(k)
		res[k] = v
	}
	return res
}

func TestEmptyBox(t *testing.T) {
	b := New()
	assert.Equal(t, 0, b.Size())
	assert.Empty(t, b.SortedValues())
	assert.Empty(t, b.KeysDescending())
	assert.Empty(t, b.UppercasedKeys())
	assert.Equal(t, 0, b.DistinctValues())

	_, found := b.MinKey()
	assert.False(t, found)
	_, found = b.MaxKey()
	assert.False(t, found)
}

func TestAddString(t *testing.T) {
	b := newBox("abc")
	v, found := b.Get("cba")
	assert.True(t, found)
	assert.Equal(t, "abc", v)

	// re-adding only overwrites
	b.AddString("abc")
	assert.Equal(t, 1, b.Size())
	assert.Equal(t, map[string]string{"cba": "abc"}, entries(b))

	b.AddString("")
	v, found = b.Get("")
	assert.True(t, found)
	assert.Equal(t, "", v)

	b.AddString("añb")
	v, _ = b.Get("bña")
	assert.Equal(t, "añb", v)
}

func TestSortedViews(t *testing.T) {
	b := newBox("abc", "xyz")
	assert.Equal(t, []string{"abc", "xyz"}, b.SortedValues())
	assert.Equal(t, []string{"zyx", "cba"}, b.KeysDescending())

	b.AddString("mno")
	assert.Equal(t, []string{"abc", "mno", "xyz"}, b.SortedValues())
	assert.Equal(t, []string{"zyx", "onm", "cba"}, b.KeysDescending())
}

func TestSortedValuesKeepsDuplicates(t *testing.T) {
	b := newBox("ab", "ba")
	require.NoError(t, b.Reset([]any{"q"}))
	b.AddString("q")
	// "q" is both the reset entry and the reversed entry of itself.
	assert.Equal(t, []string{"q"}, b.SortedValues())

	require.NoError(t, b.Reset([]any{"b"}))
	b.AddString("ab")
	b.AddString("b")
	assert.Equal(t, []string{"ab", "b"}, b.SortedValues())

	b.entries.Put("other", "b")
	assert.Equal(t, []string{"ab", "b", "b"}, b.SortedValues())
	assert.Equal(t, 2, b.DistinctValues())
}

func TestMinMaxKey(t *testing.T) {
	b := newBox("abc", "xyz", "mno")

	minKey, found := b.MinKey()
	assert.True(t, found)
	assert.Equal(t, "cba", minKey)

	// MaxKey is key based: the largest key, not the key of the largest value.
	maxKey, found := b.MaxKey()
	assert.True(t, found)
	assert.Equal(t, "zyx", maxKey)

	b = newBox("az", "by")
	maxKey, _ = b.MaxKey()
	assert.Equal(t, "za", maxKey)
	v, _ := b.Get(maxKey)
	assert.Equal(t, "az", v)
}

func TestUppercasedKeys(t *testing.T) {
	b := newBox("abc", "XyZ")
	assert.ElementsMatch(t, []string{"CBA", "ZYX"}, b.UppercasedKeys())
	// the box is untouched
	assert.Equal(t, map[string]string{"cba": "abc", "ZyX": "XyZ"}, entries(b))
}

func TestDistinctValues(t *testing.T) {
	b := newBox("abc", "def", "abc")
	assert.Equal(t, 2, b.DistinctValues())
}

func TestRemoveRoundTrip(t *testing.T) {
	b := newBox("abc")
	b.RemoveByKey("cba")
	assert.Equal(t, 0, b.Size())
	assert.Equal(t, 0, b.DistinctValues())
}

func TestRemoveByKeyRemovesAllSharingValue(t *testing.T) {
	b := New()
	require.NoError(t, b.Reset([]any{"abc"}))
	b.AddString("abc")
	b.AddString("zzz")
	assert.Equal(t, 3, b.Size())

	// Both "abc" -> "abc" and "cba" -> "abc" go away.
	b.RemoveByKey("cba")
	assert.Equal(t, map[string]string{"zzz": "zzz"}, entries(b))

	b.RemoveByKey("missing")
	assert.Equal(t, 1, b.Size())
}

func TestRemoveByValue(t *testing.T) {
	b := New()
	require.NoError(t, b.Reset([]any{"abc"}))
	b.AddString("abc")
	b.AddString("def")

	b.RemoveByValue("abc")
	assert.Equal(t, map[string]string{"fed": "def"}, entries(b))

	b.RemoveByValue("fed")
	assert.Equal(t, 1, b.Size())
}

func TestReset(t *testing.T) {
	b := newBox("abc")
	require.NoError(t, b.Reset([]any{"abc", 12, true}))
	assert.Equal(t, map[string]string{"abc": "abc", "12": "12", "true": "true"}, entries(b))

	err := b.Reset([]any{"x", nil})
	assert.ErrorIs(t, err, text.ErrNilElement)
	assert.Equal(t, 3, b.Size())

	assert.NotPanics(t, func() {
		err = b.Reset([]any{(*url.URL)(nil)})
	})
	assert.ErrorIs(t, err, text.ErrNilElement)
	assert.Equal(t, 3, b.Size())

	require.NoError(t, b.Reset(nil))
	assert.Equal(t, 0, b.Size())
}

func TestUppercaseKeys(t *testing.T) {
	b := newBox("abc", "XYZ", "dE")
	b.UppercaseKeys()
	assert.Equal(t, map[string]string{"CBA": "abc", "ZYX": "XYZ", "ED": "dE"}, entries(b))

	once := entries(b)
	b.UppercaseKeys()
	assert.Equal(t, once, entries(b))
}

func TestUppercaseKeysCollision(t *testing.T) {
	b := New()
	require.NoError(t, b.Reset([]any{"ABC", "abc"}))
	b.UppercaseKeys()
	assert.Equal(t, map[string]string{"ABC": "abc"}, entries(b))
}

func TestContainsValues(t *testing.T) {
	b := newBox("abc", "def")
	assert.True(t, b.ContainsValues([]string{"abc"}))
	assert.True(t, b.ContainsValues([]string{"def", "abc", "abc"}))
	assert.True(t, b.ContainsValues(nil))
	assert.False(t, b.ContainsValues([]string{"abc", "cba"}))
	assert.False(t, b.ContainsValues([]string{"ABC"}))
	assert.False(t, New().ContainsValues([]string{"a"}))
}

func captureDebugLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	prevJSON, prevLevel, prevLogger := logging.LogJSON, logging.LogLevel, slog.Default()
	t.Cleanup(func() {
		logging.LogJSON, logging.LogLevel = prevJSON, prevLevel
		slog.SetDefault(prevLogger)
	})

	logging.LogJSON = true
	logging.LogLevel = slog.LevelDebug
	out := &bytes.Buffer{}
	slog.SetDefault(logging.NewLogger(out))
	return out
}

func findRecord(t *testing.T, out *bytes.Buffer, message string) map[string]any {
	t.Helper()
	for _, line := range bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n")) {
		record := map[string]any{}
		require.NoError(t, json.Unmarshal(line, &record))
		if record["message"] == message {
			return record
		}
	}
	require.Failf(t, "record not found", "message %q", message)
	return nil
}

func TestDebugLogs(t *testing.T) {
	out := captureDebugLogs(t)

	b := New()
	require.NoError(t, b.Reset([]any{"b", "a"}))
	assert.False(t, b.ContainsValues([]string{"z", "a", "y"}))

	reset := findRecord(t, out, "Reset entries")
	assert.Equal(t, "{a: a, b: b}", reset["entries"])
	assert.EqualValues(t, 2, reset["size"])
	assert.Equal(t, "map-box", reset["component"])

	missing := findRecord(t, out, "Values not contained")
	assert.Equal(t, []any{"y", "z"}, missing["missing"])
}
