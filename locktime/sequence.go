// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package locktime

import (
	"fmt"
)

// Sequence is the nSequence field of a transaction input
type Sequence uint32

const (
	// SequenceMax marks an input as final. It disables both the absolute
	// lock time of the transaction and replace-by-fee signaling.
	SequenceMax                 Sequence = 0xffffffff
	SequenceZero                Sequence = 0
	SequenceEnableRBFNoLockTime Sequence = 0xfffffffd
	SequenceEnableLockTimeNoRBF Sequence = 0xfffffffe
)

const (
	SequenceLockTimeDisableFlag = 1 << 31
	SequenceLockTimeTypeFlag    = 1 << 22
	SequenceLockTimeMask        = 0x0000ffff
	// SequenceLockTimeGranularity is log2 of the time unit in seconds
	SequenceLockTimeGranularity = 9

	secondsPerInterval = 1 << SequenceLockTimeGranularity
)

// SequenceFromHeight returns a sequence with a relative lock of height blocks
func SequenceFromHeight(height uint16) Sequence {
	return Sequence(height)
}

// SequenceFrom512SecondIntervals returns a sequence with a relative time
// lock of intervals*512 seconds
func SequenceFrom512SecondIntervals(intervals uint16) Sequence {
	return Sequence(uint32(intervals) | SequenceLockTimeTypeFlag)
}

// SequenceFromSecondsFloor returns a relative time lock sequence, rounding
// seconds down to a whole number of intervals
func SequenceFromSecondsFloor(seconds uint32) (Sequence, error) {
	t, err := Time512FromSecondsFloor(seconds)
	if err != nil {
		return 0, err
	}
	return t.ToSequence(), nil
}

// SequenceFromSecondsCeil returns a relative time lock sequence, rounding
// seconds up to a whole number of intervals
func SequenceFromSecondsCeil(seconds uint32) (Sequence, error) {
	t, err := Time512FromSecondsCeil(seconds)
	if err != nil {
		return 0, err
	}
	return t.ToSequence(), nil
}

func (s Sequence) String() string {
	return fmt.Sprintf("0x%08x", uint32(s))
}

// IsFinal reports whether s is SequenceMax
func (s Sequence) IsFinal() bool {
	return s == SequenceMax
}

// IsRBF reports whether s signals replace-by-fee
func (s Sequence) IsRBF() bool {
	return s < SequenceEnableLockTimeNoRBF
}

// EnablesAbsoluteLockTime reports whether s lets the transaction lock time
// take effect
func (s Sequence) EnablesAbsoluteLockTime() bool {
	return s != SequenceMax
}

// IsRelativeLockDisabled reports whether the disable flag is set
func (s Sequence) IsRelativeLockDisabled() bool {
	return s&SequenceLockTimeDisableFlag != 0
}

func (s Sequence) IsHeightLocked() bool {
	return !s.IsRelativeLockDisabled() && s&SequenceLockTimeTypeFlag == 0
}

func (s Sequence) IsTimeLocked() bool {
	return !s.IsRelativeLockDisabled() && s&SequenceLockTimeTypeFlag != 0
}

// RelativeLockTime decodes the relative lock of s. The second return is
// false when relative locking is disabled.
func (s Sequence) RelativeLockTime() (RelativeLockTime, bool) {
	if s.IsRelativeLockDisabled() {
		return nil, false
	}
	val := uint16(s & SequenceLockTimeMask)
	if s&SequenceLockTimeTypeFlag != 0 {
		return Time512(val), true
	}
	return Blocks(val), true
}

// Satisfies reports whether an input with this sequence may be spent once
// its output has elapsedBlocks confirmations and elapsedSeconds of median
// time past have passed. A disabled sequence is always satisfied.
func (s Sequence) Satisfies(elapsedBlocks uint32, elapsedSeconds uint32) bool {
	lock, ok := s.RelativeLockTime()
	if !ok {
		return true
	}
	return lock.IsSatisfiedBy(elapsedBlocks, elapsedSeconds)
}
