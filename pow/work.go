// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package pow

import (
	"github.com/holiman/uint256"
)

// Work is the expected number of hashes needed to meet a target
type Work struct {
	n uint256.Int
}

// Work returns 2^256 / (target+1), computed as (~target / (target+1)) + 1
// so that it fits in 256 bits. The zero target yields zero work.
func (t Target) Work() Work {
	var ret Work
	if t.n.IsZero() {
		return ret
	}
	var notTarget, divisor uint256.Int
	notTarget.Not(&t.n)
	// Overflows to zero for the maximum target, where Div yields zero
	divisor.AddUint64(&t.n, 1)
	ret.n.Div(&notTarget, &divisor)
	ret.n.AddUint64(&ret.n, 1)
	return ret
}

// Add returns the sum of two amounts of work
func (w Work) Add(o Work) Work {
	var ret Work
	ret.n.Add(&w.n, &o.n)
	return ret
}

func (w Work) Cmp(o Work) int {
	return w.n.Cmp(&o.n)
}

func (w Work) IsZero() bool {
	return w.n.IsZero()
}

// Int returns a copy of the work as a uint256.Int
func (w Work) Int() *uint256.Int {
	return w.n.Clone()
}

// String returns the work as a decimal string
func (w Work) String() string {
	return w.n.Dec()
}

func (w Work) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}
