// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package pow

import (
	"time"

	"github.com/holiman/uint256"
)

// RetargetParams are the network values the difficulty adjustment needs
type RetargetParams struct {
	PowLimit       Target
	TargetTimespan time.Duration
	NoRetargeting  bool
}

// NextTarget computes the compact target for the block following a
// retarget interval. actualTimespan is the time in seconds between the
// first and last block of the interval. It is clamped to a factor of four
// around the target timespan, and the result never exceeds the PoW limit.
func NextTarget(
	lastBits CompactTarget,
	actualTimespan int64,
	params RetargetParams,
) CompactTarget {
	if params.NoRetargeting {
		return lastBits
	}
	targetSpan := int64(params.TargetTimespan / time.Second)
	if targetSpan <= 0 {
		return lastBits
	}
	span := max(actualTimespan, targetSpan/4)
	span = min(span, targetSpan*4)

	last := lastBits.Target()
	var next Target
	_, overflow := next.n.MulDivOverflow(
		&last.n,
		// nolint:gosec // span is clamped to a positive value
		uint256.NewInt(uint64(span)),
		uint256.NewInt(uint64(targetSpan)),
	)
	if overflow || next.Cmp(params.PowLimit) > 0 {
		next = params.PowLimit
	}
	return next.Compact()
}
