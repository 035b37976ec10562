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

import "github.com/streamnative/sandbox/common/random"

type options struct {
	source random.Source
}

// Option configures a Box.
type Option interface {
	apply(options) options
}

type optionFunc func(options) options

func (f optionFunc) apply(o options) options {
	return f(o)
}

func newOptions(opts ...Option) options {
	o := options{}
	for _, opt := range opts {
		o = opt.apply(o)
	}
	if o.source == nil {
		o.source = random.NewUnseededSource()
	}
	return o
}

// WithSource sets the randomness used by Box.Randomize.
func WithSource(source random.Source) Option {
	return optionFunc(func(o options) options {
		o.source = source
		return o
	})
}

// WithSeed makes Box.Randomize deterministic.
func WithSeed(seed uint64) Option {
	return WithSource(random.NewSource(seed))
}
