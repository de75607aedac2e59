// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package locktime implements transaction lock time and sequence rules
package locktime

import (
	"fmt"
	"time"
)

// Threshold separates block heights (below) from UNIX timestamps (at or
// above) in a consensus lock time
const Threshold = 500_000_000

// LockTime is an absolute lock time, either a Height or a Time
type LockTime interface {
	// IsSatisfiedBy checks the lock against whichever of height and median
	// time past matches its unit
	IsSatisfiedBy(height Height, mtp Time) bool
	IsSatisfiedByHeight(height Height) (bool, error)
	IsSatisfiedByTime(mtp Time) (bool, error)
	// IsImpliedBy reports whether any transaction satisfying other also
	// satisfies this lock
	IsImpliedBy(other LockTime) (bool, error)
	Unit() Unit
	ToConsensus() uint32
	String() string
	isLockTime()
}

// Height is a lock time expressed as a block height
type Height uint32

// Time is a lock time expressed as a UNIX timestamp, compared against the
// median time past of the chain
type Time uint32

// FromConsensus interprets a transaction nLockTime value
func FromConsensus(val uint32) LockTime {
	if val < Threshold {
		return Height(val)
	}
	return Time(val)
}

// NewHeight returns a Height lock, rejecting values in the timestamp range
func NewHeight(val uint32) (Height, error) {
	if val >= Threshold {
		return 0, fmt.Errorf("%w: %d", ErrInvalidHeight, val)
	}
	return Height(val), nil
}

// NewTime returns a Time lock, rejecting values in the height range
func NewTime(val uint32) (Time, error) {
	if val < Threshold {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTime, val)
	}
	return Time(val), nil
}

func (Height) isLockTime() {}
func (Time) isLockTime()   {}

func (h Height) Unit() Unit { return UnitHeight }
func (t Time) Unit() Unit   { return UnitTime }

func (h Height) ToConsensus() uint32 { return uint32(h) }
func (t Time) ToConsensus() uint32   { return uint32(t) }

func (h Height) String() string {
	return fmt.Sprintf("height %d", uint32(h))
}

func (t Time) String() string {
	return fmt.Sprintf(
		"time %d (%s)",
		uint32(t),
		time.Unix(int64(t), 0).UTC().Format(time.RFC3339),
	)
}

func (h Height) IsSatisfiedBy(height Height, _ Time) bool {
	return h <= height
}

func (t Time) IsSatisfiedBy(_ Height, mtp Time) bool {
	return t <= mtp
}

func (h Height) IsSatisfiedByHeight(height Height) (bool, error) {
	return h <= height, nil
}

func (h Height) IsSatisfiedByTime(Time) (bool, error) {
	return false, IncompatibleUnitError{Lock: UnitHeight, Value: UnitTime}
}

func (t Time) IsSatisfiedByHeight(Height) (bool, error) {
	return false, IncompatibleUnitError{Lock: UnitTime, Value: UnitHeight}
}

func (t Time) IsSatisfiedByTime(mtp Time) (bool, error) {
	return t <= mtp, nil
}

func (h Height) IsImpliedBy(other LockTime) (bool, error) {
	o, ok := other.(Height)
	if !ok {
		return false, IncompatibleUnitError{Lock: UnitHeight, Value: other.Unit()}
	}
	return h <= o, nil
}

func (t Time) IsImpliedBy(other LockTime) (bool, error) {
	o, ok := other.(Time)
	if !ok {
		return false, IncompatibleUnitError{Lock: UnitTime, Value: other.Unit()}
	}
	return t <= o, nil
}
