// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package pow

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/blinklabs-io/btcprim/chainhash"
)

var (
	ErrUnachievableTarget = errors.New("target is zero or malformed")
	ErrTargetTooHigh      = errors.New("target is above the proof-of-work limit")
	ErrHashAboveTarget    = errors.New("block hash exceeds target")
)

// CheckProofOfWork validates a block hash against the header Bits field and
// the network proof-of-work limit
func CheckProofOfWork(
	hash chainhash.BlockHash,
	bits CompactTarget,
	powLimit Target,
) error {
	target := bits.Target()
	if target.IsZero() {
		return fmt.Errorf("%w: bits %s", ErrUnachievableTarget, bits)
	}
	if target.Cmp(powLimit) > 0 {
		return fmt.Errorf(
			"%w: target %s, limit %s",
			ErrTargetTooHigh,
			target,
			powLimit,
		)
	}
	if !MeetsTarget(hash, target) {
		return fmt.Errorf(
			"%w: block PoW hash %s exceeds target %s",
			ErrHashAboveTarget,
			hash,
			target,
		)
	}
	return nil
}

// CheckHeader hashes an 80-byte block header and checks its proof of work.
// The Bits field is read from the header itself.
func CheckHeader(header []byte, powLimit Target) (chainhash.BlockHash, error) {
	hash, err := chainhash.HashBlockHeader(header)
	if err != nil {
		return hash, err
	}
	bits := CompactTarget(binary.LittleEndian.Uint32(header[headerBitsOffset:]))
	return hash, CheckProofOfWork(hash, bits, powLimit)
}

// version(4) + prev block(32) + merkle root(32) + time(4)
const headerBitsOffset = 72
