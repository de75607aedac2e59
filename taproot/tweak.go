// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package taproot

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/blinklabs-io/btcprim/chainhash"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
)

var (
	ErrInvalidTweak       = errors.New("invalid taproot tweak")
	ErrInvalidPublicKey   = errors.New("invalid x-only public key")
	ErrCommitmentMismatch = errors.New("control block does not commit to output key")
)

const XOnlyPubKeySize = 32

// XOnlyPubKey is a BIP340 public key: the X coordinate of a point with an
// even Y coordinate
type XOnlyPubKey [XOnlyPubKeySize]byte

// ParseXOnlyPubKey checks that data is the X coordinate of a curve point
func ParseXOnlyPubKey(data []byte) (XOnlyPubKey, error) {
	var ret XOnlyPubKey
	if len(data) != XOnlyPubKeySize {
		return ret, fmt.Errorf(
			"%w: length %d",
			ErrInvalidPublicKey,
			len(data),
		)
	}
	if _, err := schnorr.ParsePubKey(data); err != nil {
		return ret, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	copy(ret[:], data)
	return ret, nil
}

// ParseXOnlyPubKeyHex parses a hex-encoded x-only public key
func ParseXOnlyPubKeyHex(s string) (XOnlyPubKey, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return XOnlyPubKey{}, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return ParseXOnlyPubKey(data)
}

func (k XOnlyPubKey) String() string {
	return hex.EncodeToString(k[:])
}

func (k XOnlyPubKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Parity is the Y coordinate parity of a tweaked output key
type Parity uint8

const (
	ParityEven Parity = 0
	ParityOdd  Parity = 1
)

func (p Parity) String() string {
	if p == ParityOdd {
		return "odd"
	}
	return "even"
}

// OutputKey is a tweaked taproot output key
type OutputKey struct {
	Key    XOnlyPubKey
	Parity Parity
}

// TweakHash returns TaggedHash("TapTweak", internalKey || merkleRoot). The
// root is omitted entirely for key-path-only outputs.
func TweakHash(internalKey XOnlyPubKey, merkleRoot *TapNodeHash) TapTweakHash {
	if merkleRoot == nil {
		return TapTweakHash(chainhash.TaggedHash(chainhash.TagTapTweak, internalKey[:]))
	}
	return TapTweakHash(
		chainhash.TaggedHash(chainhash.TagTapTweak, internalKey[:], merkleRoot[:]),
	)
}

// Tweak computes Q = P + tG where P is the even-Y point for internalKey and
// t is the tweak hash. A tweak outside the scalar range or a result at
// infinity fails with ErrInvalidTweak.
func Tweak(internalKey XOnlyPubKey, merkleRoot *TapNodeHash) (OutputKey, error) {
	pub, err := schnorr.ParsePubKey(internalKey[:])
	if err != nil {
		return OutputKey{}, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	tweak := TweakHash(internalKey, merkleRoot)
	var t btcec.ModNScalar
	if overflow := t.SetByteSlice(tweak[:]); overflow {
		return OutputKey{}, fmt.Errorf("%w: tweak exceeds curve order", ErrInvalidTweak)
	}
	var p, tG, q btcec.JacobianPoint
	pub.AsJacobian(&p)
	btcec.ScalarBaseMultNonConst(&t, &tG)
	btcec.AddNonConst(&p, &tG, &q)
	if q.Z.IsZero() || (q.X.IsZero() && q.Y.IsZero()) {
		return OutputKey{}, fmt.Errorf("%w: point at infinity", ErrInvalidTweak)
	}
	q.ToAffine()
	var ret OutputKey
	q.X.PutBytes((*[32]byte)(&ret.Key))
	if q.Y.IsOdd() {
		ret.Parity = ParityOdd
	}
	return ret, nil
}
