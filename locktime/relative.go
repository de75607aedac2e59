// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package locktime

import (
	"fmt"
	"math"
)

// RelativeLockTime is a BIP68 relative lock, either Blocks or Time512
type RelativeLockTime interface {
	// IsSatisfiedBy checks the lock against whichever of the elapsed block
	// count and elapsed seconds matches its unit
	IsSatisfiedBy(elapsedBlocks uint32, elapsedSeconds uint32) bool
	IsSatisfiedByBlocks(elapsedBlocks uint32) (bool, error)
	IsSatisfiedByTime(elapsedSeconds uint32) (bool, error)
	IsImpliedBy(other RelativeLockTime) (bool, error)
	Unit() Unit
	ToSequence() Sequence
	String() string
	isRelativeLockTime()
}

// Blocks is a relative lock counted in blocks
type Blocks uint16

// Time512 is a relative lock counted in 512-second intervals
type Time512 uint16

// Time512FromSecondsFloor rounds seconds down to whole intervals
func Time512FromSecondsFloor(seconds uint32) (Time512, error) {
	intervals := seconds / secondsPerInterval
	if intervals > math.MaxUint16 {
		return 0, fmt.Errorf("%w: %d", ErrSecondsOverflow, seconds)
	}
	return Time512(intervals), nil
}

// Time512FromSecondsCeil rounds seconds up to whole intervals
func Time512FromSecondsCeil(seconds uint32) (Time512, error) {
	intervals := (uint64(seconds) + secondsPerInterval - 1) / secondsPerInterval
	if intervals > math.MaxUint16 {
		return 0, fmt.Errorf("%w: %d", ErrSecondsOverflow, seconds)
	}
	return Time512(intervals), nil
}

func (Blocks) isRelativeLockTime()  {}
func (Time512) isRelativeLockTime() {}

func (b Blocks) Unit() Unit  { return UnitBlocks }
func (t Time512) Unit() Unit { return UnitTime512 }

func (b Blocks) ToSequence() Sequence  { return SequenceFromHeight(uint16(b)) }
func (t Time512) ToSequence() Sequence { return SequenceFrom512SecondIntervals(uint16(t)) }

// Seconds returns the lock duration in seconds
func (t Time512) Seconds() uint32 {
	return uint32(t) * secondsPerInterval
}

func (b Blocks) String() string {
	return fmt.Sprintf("%d blocks", uint16(b))
}

func (t Time512) String() string {
	return fmt.Sprintf("%d seconds", t.Seconds())
}

func (b Blocks) IsSatisfiedBy(elapsedBlocks uint32, _ uint32) bool {
	return uint32(b) <= elapsedBlocks
}

func (t Time512) IsSatisfiedBy(_ uint32, elapsedSeconds uint32) bool {
	return t.Seconds() <= elapsedSeconds
}

func (b Blocks) IsSatisfiedByBlocks(elapsedBlocks uint32) (bool, error) {
	return uint32(b) <= elapsedBlocks, nil
}

func (b Blocks) IsSatisfiedByTime(uint32) (bool, error) {
	return false, IncompatibleUnitError{Lock: UnitBlocks, Value: UnitTime512}
}

func (t Time512) IsSatisfiedByBlocks(uint32) (bool, error) {
	return false, IncompatibleUnitError{Lock: UnitTime512, Value: UnitBlocks}
}

func (t Time512) IsSatisfiedByTime(elapsedSeconds uint32) (bool, error) {
	return t.Seconds() <= elapsedSeconds, nil
}

func (b Blocks) IsImpliedBy(other RelativeLockTime) (bool, error) {
	o, ok := other.(Blocks)
	if !ok {
		return false, IncompatibleUnitError{Lock: UnitBlocks, Value: other.Unit()}
	}
	return b <= o, nil
}

func (t Time512) IsImpliedBy(other RelativeLockTime) (bool, error) {
	o, ok := other.(Time512)
	if !ok {
		return false, IncompatibleUnitError{Lock: UnitTime512, Value: other.Unit()}
	}
	return t <= o, nil
}
