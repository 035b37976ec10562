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

package random

import (
	"math/rand/v2"
)

// Source produces uniformly distributed integers.
type Source interface {
	// IntInRange returns a value in the inclusive range [low, high].
	// Callers guarantee low <= high.
	IntInRange(low, high int) int
}

type pcgSource struct {
	rnd *rand.Rand
}

// NewSource returns a deterministic Source: two sources created with the
// same seed yield the same sequence.
func NewSource(seed uint64) Source {
	return &pcgSource{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// NewUnseededSource returns a Source seeded from the runtime's entropy.
func NewUnseededSource() Source {
	return NewSource(rand.Uint64())
}

func (s *pcgSource) IntInRange(low, high int) int {
	// The width is computed in unsigned space so that ranges spanning the
	// whole int domain don't overflow.
	width := uint64(high) - uint64(low)
	if width == ^uint64(0) {
		return int(s.rnd.Uint64())
	}
	return low + int(s.rnd.Uint64N(width+1))
}
