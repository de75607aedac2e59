// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package pow

import (
	"encoding/hex"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/blinklabs-io/btcprim/chainhash"
	"github.com/holiman/uint256"
)

// Target is a 256-bit unsigned proof-of-work target. A block hash meets the
// target when, read as a little-endian integer, it is not greater than it.
type Target struct {
	n uint256.Int
}

// NewTarget returns a Target holding a copy of n
func NewTarget(n *uint256.Int) Target {
	var ret Target
	ret.n.Set(n)
	return ret
}

// NewTargetFromBytes builds a Target from its big-endian representation
func NewTargetFromBytes(b [32]byte) Target {
	var ret Target
	ret.n.SetBytes32(b[:])
	return ret
}

// TargetFromHex parses a big-endian hex target with an optional 0x prefix.
// Leading zeros are allowed.
func TargetFromHex(s string) (Target, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) == 0 || len(s) > 64 {
		return Target{}, fmt.Errorf("invalid target length %d", len(s))
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return Target{}, fmt.Errorf("invalid target: %w", err)
	}
	var ret Target
	ret.n.SetBytes(data)
	return ret, nil
}

// Int returns a copy of the target as a uint256.Int
func (t Target) Int() *uint256.Int {
	return t.n.Clone()
}

// Bytes returns the big-endian representation of the target
func (t Target) Bytes() [32]byte {
	return t.n.Bytes32()
}

// String returns the zero-padded big-endian hex form of the target
func (t Target) String() string {
	b := t.n.Bytes32()
	return hex.EncodeToString(b[:])
}

func (t Target) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Target) UnmarshalText(data []byte) error {
	tmp, err := TargetFromHex(string(data))
	if err != nil {
		return err
	}
	*t = tmp
	return nil
}

func (t Target) IsZero() bool {
	return t.n.IsZero()
}

// Cmp returns -1, 0 or 1 as t is less than, equal to or greater than o
func (t Target) Cmp(o Target) int {
	return t.n.Cmp(&o.n)
}

// IsMetBy reports whether hash satisfies the target
func (t Target) IsMetBy(hash chainhash.BlockHash) bool {
	return MeetsTarget(hash, t)
}

// MeetsTarget reports whether hash, interpreted as a little-endian 256-bit
// integer, is less than or equal to target
func MeetsTarget(hash chainhash.BlockHash, target Target) bool {
	hashInt := hashToInt(hash)
	return !hashInt.Gt(&target.n)
}

func hashToInt(hash chainhash.BlockHash) *uint256.Int {
	var be [32]byte
	for i := range be {
		be[i] = hash[len(hash)-1-i]
	}
	return new(uint256.Int).SetBytes32(be[:])
}

// Difficulty returns how many times harder the target is than powLimit.
// The zero target has infinite difficulty.
func (t Target) Difficulty(powLimit Target) float64 {
	if t.n.IsZero() {
		return math.Inf(1)
	}
	num := new(big.Float).SetPrec(256).SetInt(powLimit.n.ToBig())
	den := new(big.Float).SetPrec(256).SetInt(t.n.ToBig())
	ret, _ := num.Quo(num, den).Float64()
	return ret
}
