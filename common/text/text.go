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

package text

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

var ErrNilElement = errors.New("nil element")

// ToString returns the canonical string form of o. Values implementing
// fmt.Stringer are rendered through String(). A nil o, including a typed
// nil pointer, map, slice, channel or func, fails with ErrNilElement.
func ToString(o any) (string, error) {
	if isNil(o) {
		return "", ErrNilElement
	}
	return fmt.Sprint(o), nil
}

func isNil(o any) bool {
	if o == nil {
		return true
	}
	switch v := reflect.ValueOf(o); v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// Reverse reverses s code point by code point.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func IsUpper(s string) bool {
	return strings.ToUpper(s) == s
}
