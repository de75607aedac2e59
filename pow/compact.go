// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package pow

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
)

const (
	compactSignBit      = 0x00800000
	compactMantissaMask = 0x007fffff
)

// CompactTarget is the 32-bit floating point encoding of a target used in
// the block header Bits field. The first byte is the exponent, the next 3
// bytes are the mantissa, the top bit of which is a sign flag.
type CompactTarget uint32

// ParseCompactTarget parses a hex compact target with an optional 0x prefix
func ParseCompactTarget(s string) (CompactTarget, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	val, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid compact target %q: %w", s, err)
	}
	return CompactTarget(val), nil
}

func (c CompactTarget) String() string {
	return fmt.Sprintf("0x%08x", uint32(c))
}

// Target decodes the compact value. A set sign bit with a non-zero mantissa
// or a value wider than 256 bits decodes to the zero target.
func (c CompactTarget) Target() Target {
	exp := uint32(c) >> 24
	mantissa := uint32(c) & compactMantissaMask
	if exp <= 3 {
		mantissa >>= 8 * (3 - exp)
	}
	if mantissa == 0 {
		return Target{}
	}
	if uint32(c)&compactSignBit != 0 {
		return Target{}
	}
	if exp > 34 ||
		(mantissa > 0xff && exp > 33) ||
		(mantissa > 0xffff && exp > 32) {
		return Target{}
	}
	var ret Target
	ret.n.SetUint64(uint64(mantissa))
	if exp > 3 {
		ret.n.Lsh(&ret.n, uint(8*(exp-3)))
	}
	return ret
}

// Compact returns the minimal compact encoding of the target. Precision
// below the three most significant bytes is dropped.
func (t Target) Compact() CompactTarget {
	size := uint32((t.n.BitLen() + 7) / 8)
	var mantissa uint32
	if size <= 3 {
		// nolint:gosec // at most 24 bits remain after the size check
		mantissa = uint32(t.n.Uint64() << (8 * (3 - size)))
	} else {
		var tmp uint256.Int
		tmp.Rsh(&t.n, uint(8*(size-3)))
		// nolint:gosec // the shift leaves at most 24 bits
		mantissa = uint32(tmp.Uint64())
	}
	// The sign bit must stay clear, so carry into the exponent
	if mantissa&compactSignBit != 0 {
		mantissa >>= 8
		size++
	}
	return CompactTarget(mantissa | size<<24)
}
