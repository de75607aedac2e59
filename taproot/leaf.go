// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package taproot builds and verifies taproot script tree commitments
package taproot

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/blinklabs-io/btcprim/chainhash"
	"github.com/blinklabs-io/btcprim/internal/compactsize"
)

// LeafVersion is the version byte of a script tree leaf
type LeafVersion uint8

const (
	BaseLeafVersion LeafVersion = 0xc0

	// LeafVersionMask clears the output key parity bit of a control block
	LeafVersionMask = 0xfe

	// annexTag can never be a leaf version as it marks the witness annex
	annexTag LeafVersion = 0x50
)

// IsValid reports whether v can appear in a control block
func (v LeafVersion) IsValid() bool {
	return v&^LeafVersionMask == 0 && v != annexTag
}

func (v LeafVersion) String() string {
	return fmt.Sprintf("0x%02x", uint8(v))
}

// LeafHash returns TaggedHash("TapLeaf", version || compactsize(len) || script)
func LeafHash(version LeafVersion, script []byte) TapLeafHash {
	var prefix [1 + 9]byte
	prefix[0] = byte(version)
	enc := compactsize.Append(prefix[:1], uint64(len(script)))
	return TapLeafHash(chainhash.TaggedHash(chainhash.TagTapLeaf, enc, script))
}

// EncodeLeaf returns the serialization hashed by LeafHash
func EncodeLeaf(version LeafVersion, script []byte) []byte {
	ret := make([]byte, 0, 1+compactsize.Size(uint64(len(script)))+len(script))
	ret = append(ret, byte(version))
	ret = compactsize.Append(ret, uint64(len(script)))
	return append(ret, script...)
}

// DecodeLeaf parses the output of EncodeLeaf. The length prefix must be
// canonical and match the remaining data exactly.
func DecodeLeaf(data []byte) (LeafVersion, []byte, error) {
	if len(data) < 2 {
		return 0, nil, errors.New("leaf data is too short")
	}
	length, n, err := compactsize.Decode(data[1:])
	if err != nil {
		return 0, nil, fmt.Errorf("invalid leaf script length: %w", err)
	}
	script := data[1+n:]
	if uint64(len(script)) != length {
		return 0, nil, fmt.Errorf(
			"leaf script length mismatch: got %d, want %d",
			len(script),
			length,
		)
	}
	return LeafVersion(data[0]), bytes.Clone(script), nil
}
