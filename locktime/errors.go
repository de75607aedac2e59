// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package locktime

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHeight   = errors.New("lock height must be below the threshold")
	ErrInvalidTime     = errors.New("lock time must be at or above the threshold")
	ErrSecondsOverflow = errors.New("seconds do not fit in a relative lock time")
)

// Unit is the unit a lock is expressed in
type Unit uint8

const (
	UnitHeight Unit = iota
	UnitTime
	UnitBlocks
	UnitTime512
)

func (u Unit) String() string {
	switch u {
	case UnitHeight:
		return "block height"
	case UnitTime:
		return "timestamp"
	case UnitBlocks:
		return "blocks"
	case UnitTime512:
		return "512-second intervals"
	}
	return fmt.Sprintf("Unit(%d)", uint8(u))
}

// IncompatibleUnitError is returned when a lock is compared against a value
// in a different unit
type IncompatibleUnitError struct {
	Lock  Unit
	Value Unit
}

func (e IncompatibleUnitError) Error() string {
	return fmt.Sprintf(
		"incompatible lock units: lock is in %s, value is in %s",
		e.Lock,
		e.Value,
	)
}
