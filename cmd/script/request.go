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

package script

import (
	"sort"

	"github.com/pkg/errors"
)

var ErrUnknownOperation = errors.New("unknown operation")

// Request is one line of a script. Only the fields used by Op are read.
type Request struct {
	Op      string    `json:"op"`
	Int     int       `json:"int,omitempty"`
	Pos     int       `json:"pos,omitempty"`
	Str     string    `json:"str,omitempty"`
	Ints    []int     `json:"ints,omitempty"`
	Floats  []float64 `json:"floats,omitempty"`
	Strs    []string  `json:"strs,omitempty"`
	Objects []any     `json:"objects,omitempty"`
	Count   int       `json:"count,omitempty"`
	Min     int       `json:"min,omitempty"`
	Max     int       `json:"max,omitempty"`
}

// Output is the outcome of one Request. Result is null for mutations.
type Output struct {
	Op     string `json:"op" yaml:"op"`
	Result any    `json:"result" yaml:"result"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

type handler func(s *Sandbox, r *Request) (any, error)

func mutation(f func(s *Sandbox, r *Request)) handler {
	return func(s *Sandbox, r *Request) (any, error) {
		f(s, r)
		return nil, nil
	}
}

func fallible(f func(s *Sandbox, r *Request) error) handler {
	return func(s *Sandbox, r *Request) (any, error) {
		return nil, f(s, r)
	}
}

func optional(value string, found bool) *string {
	if !found {
		return nil
	}
	return &value
}

var handlers = map[string]handler{
	"array.copy_integers": func(s *Sandbox, _ *Request) (any, error) { return s.Arrays.CopyIntegers(), nil },
	"array.copy_strings":  func(s *Sandbox, _ *Request) (any, error) { return s.Arrays.CopyStrings(), nil },
	"array.count_integers": func(s *Sandbox, _ *Request) (any, error) {
		return s.Arrays.CountIntegers(), nil
	},
	"array.count_strings": func(s *Sandbox, _ *Request) (any, error) {
		return s.Arrays.CountStrings(), nil
	},
	"array.append_integer":    mutation(func(s *Sandbox, r *Request) { s.Arrays.AppendInteger(r.Int) }),
	"array.append_string":     mutation(func(s *Sandbox, r *Request) { s.Arrays.AppendString(r.Str) }),
	"array.remove_integer":    mutation(func(s *Sandbox, r *Request) { s.Arrays.RemoveInteger(r.Int) }),
	"array.remove_string":     mutation(func(s *Sandbox, r *Request) { s.Arrays.RemoveString(r.Str) }),
	"array.insert_integer_at": mutation(func(s *Sandbox, r *Request) { s.Arrays.InsertIntegerAt(r.Int, r.Pos) }),
	"array.remove_integer_at": mutation(func(s *Sandbox, r *Request) { s.Arrays.RemoveIntegerAt(r.Pos) }),
	"array.reset_integers":    mutation(func(s *Sandbox, r *Request) { s.Arrays.ResetIntegers(r.Floats) }),
	"array.reset_strings":     fallible(func(s *Sandbox, r *Request) error { return s.Arrays.ResetStrings(r.Objects) }),
	"array.absolute_integers": mutation(func(s *Sandbox, _ *Request) { s.Arrays.AbsoluteIntegers() }),
	"array.sort_integers":     mutation(func(s *Sandbox, _ *Request) { s.Arrays.SortIntegers() }),
	"array.sort_strings":      mutation(func(s *Sandbox, _ *Request) { s.Arrays.SortStrings() }),
	"array.count_integer": func(s *Sandbox, r *Request) (any, error) {
		return s.Arrays.CountInteger(r.Int), nil
	},
	"array.count_string": func(s *Sandbox, r *Request) (any, error) {
		return s.Arrays.CountString(r.Str), nil
	},
	"array.find_integer": func(s *Sandbox, r *Request) (any, error) {
		return s.Arrays.FindInteger(r.Int), nil
	},
	"array.integer_range": func(s *Sandbox, _ *Request) (any, error) { return s.Arrays.IntegerRange(), nil },
	"array.histogram":     func(s *Sandbox, _ *Request) (any, error) { return s.Arrays.Histogram(), nil },
	"array.count_repeated_twice": func(s *Sandbox, _ *Request) (any, error) {
		return s.Arrays.CountRepeatedTwice(), nil
	},
	"array.equal_integers": func(s *Sandbox, r *Request) (any, error) {
		return s.Arrays.EqualIntegers(r.Ints), nil
	},
	"array.same_integers": func(s *Sandbox, r *Request) (any, error) {
		return s.Arrays.SameIntegers(r.Ints), nil
	},
	"array.randomize": fallible(func(s *Sandbox, r *Request) error {
		return s.Arrays.Randomize(r.Count, r.Min, r.Max)
	}),

	"map.size":            func(s *Sandbox, _ *Request) (any, error) { return s.Maps.Size(), nil },
	"map.get":             func(s *Sandbox, r *Request) (any, error) { return optional(s.Maps.Get(r.Str)), nil },
	"map.sorted_values":   func(s *Sandbox, _ *Request) (any, error) { return s.Maps.SortedValues(), nil },
	"map.keys_descending": func(s *Sandbox, _ *Request) (any, error) { return s.Maps.KeysDescending(), nil },
	"map.min_key":         func(s *Sandbox, _ *Request) (any, error) { return optional(s.Maps.MinKey()), nil },
	"map.max_key":         func(s *Sandbox, _ *Request) (any, error) { return optional(s.Maps.MaxKey()), nil },
	"map.uppercased_keys": func(s *Sandbox, _ *Request) (any, error) {
		keys := s.Maps.UppercasedKeys()
		sort.Strings(keys)
		return keys, nil
	},
	"map.distinct_values": func(s *Sandbox, _ *Request) (any, error) { return s.Maps.DistinctValues(), nil },
	"map.add_string":      mutation(func(s *Sandbox, r *Request) { s.Maps.AddString(r.Str) }),
	"map.remove_by_key":   mutation(func(s *Sandbox, r *Request) { s.Maps.RemoveByKey(r.Str) }),
	"map.remove_by_value": mutation(func(s *Sandbox, r *Request) { s.Maps.RemoveByValue(r.Str) }),
	"map.reset":           fallible(func(s *Sandbox, r *Request) error { return s.Maps.Reset(r.Objects) }),
	"map.uppercase_keys":  mutation(func(s *Sandbox, _ *Request) { s.Maps.UppercaseKeys() }),
	"map.contains_values": func(s *Sandbox, r *Request) (any, error) {
		return s.Maps.ContainsValues(r.Strs), nil
	},
}

// Operations returns the names of every supported operation, sorted.
func Operations() []string {
	ops := make([]string, 0, len(handlers))
	for op := range handlers {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// Perform applies r to the sandbox.
func (s *Sandbox) Perform(r *Request) Output {
	h, ok := handlers[r.Op]
	if !ok {
		return Output{Op: r.Op, Error: errors.Wrapf(ErrUnknownOperation, "'%s'", r.Op).Error()}
	}

	result, err := h(s, r)
	if err != nil {
		return Output{Op: r.Op, Error: err.Error()}
	}
	return Output{Op: r.Op, Result: result}
}
