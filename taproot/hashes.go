// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package taproot

import (
	"encoding/hex"
	"fmt"

	"github.com/blinklabs-io/btcprim/chainhash"
)

// TapLeafHash is the TapLeaf tagged hash of a leaf version and script
type TapLeafHash [chainhash.HashSize]byte

// TapNodeHash is a node of the script tree, either a leaf or a branch
type TapNodeHash [chainhash.HashSize]byte

// TapTweakHash is the TapTweak tagged hash of an internal key and root
type TapTweakHash [chainhash.HashSize]byte

// Node returns the leaf hash as a script tree node
func (h TapLeafHash) Node() TapNodeHash {
	return TapNodeHash(h)
}

func (h TapLeafHash) String() string  { return hex.EncodeToString(h[:]) }
func (h TapNodeHash) String() string  { return hex.EncodeToString(h[:]) }
func (h TapTweakHash) String() string { return hex.EncodeToString(h[:]) }

func (h TapLeafHash) Bytes() []byte  { return h[:] }
func (h TapNodeHash) Bytes() []byte  { return h[:] }
func (h TapTweakHash) Bytes() []byte { return h[:] }

func (h TapLeafHash) MarshalText() ([]byte, error)  { return []byte(h.String()), nil }
func (h TapNodeHash) MarshalText() ([]byte, error)  { return []byte(h.String()), nil }
func (h TapTweakHash) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

func (h *TapLeafHash) UnmarshalText(data []byte) error {
	return decodeHash((*[chainhash.HashSize]byte)(h), string(data))
}

func (h *TapNodeHash) UnmarshalText(data []byte) error {
	return decodeHash((*[chainhash.HashSize]byte)(h), string(data))
}

func (h *TapTweakHash) UnmarshalText(data []byte) error {
	return decodeHash((*[chainhash.HashSize]byte)(h), string(data))
}

// NewTapNodeHashFromStr parses a hex node hash
func NewTapNodeHashFromStr(s string) (TapNodeHash, error) {
	var ret TapNodeHash
	err := decodeHash((*[chainhash.HashSize]byte)(&ret), s)
	return ret, err
}

func decodeHash(dst *[chainhash.HashSize]byte, s string) error {
	if len(s) != chainhash.MaxHashStringSize {
		return fmt.Errorf(
			"invalid hash string length: got %d, want %d",
			len(s),
			chainhash.MaxHashStringSize,
		)
	}
	var tmp [chainhash.HashSize]byte
	if _, err := hex.Decode(tmp[:], []byte(s)); err != nil {
		return fmt.Errorf("invalid hash string: %w", err)
	}
	*dst = tmp
	return nil
}
