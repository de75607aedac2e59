// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chainhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
)

const (
	HashSize    = 32
	Hash160Size = 20

	// MaxHashStringSize is the length of a digest in display hex form
	MaxHashStringSize = HashSize * 2
)

// Sha256 returns the single SHA-256 digest of data
func Sha256(data []byte) [HashSize]byte {
	return sha256.Sum256(data)
}

// DoubleSha256 returns SHA-256(SHA-256(data)). Multiple slices are hashed
// as if they were concatenated.
func DoubleSha256(data ...[]byte) [HashSize]byte {
	h := sha256.New()
	for _, d := range data {
		h.Write(d)
	}
	var first [HashSize]byte
	h.Sum(first[:0])
	return sha256.Sum256(first[:])
}

// Hash160 returns RIPEMD-160(SHA-256(data))
func Hash160(data []byte) [Hash160Size]byte {
	first := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(first[:])
	var ret [Hash160Size]byte
	h.Sum(ret[:0])
	return ret
}

// Txid is the SHA-256d of a transaction serialized without witness data
type Txid [HashSize]byte

// Wtxid is the SHA-256d of a transaction serialized with witness data
type Wtxid [HashSize]byte

// BlockHash is the SHA-256d of an 80-byte block header
type BlockHash [HashSize]byte

// TxMerkleNode is a node of the transaction Merkle tree
type TxMerkleNode [HashSize]byte

// WitnessMerkleNode is a node of the witness Merkle tree
type WitnessMerkleNode [HashSize]byte

// WitnessCommitment is the value committed to in the coinbase witness output
type WitnessCommitment [HashSize]byte

func (h Txid) String() string              { return reversedHex(h) }
func (h Wtxid) String() string             { return reversedHex(h) }
func (h BlockHash) String() string         { return reversedHex(h) }
func (h TxMerkleNode) String() string      { return reversedHex(h) }
func (h WitnessMerkleNode) String() string { return reversedHex(h) }
func (h WitnessCommitment) String() string { return reversedHex(h) }

func (h Txid) Bytes() []byte              { return h[:] }
func (h Wtxid) Bytes() []byte             { return h[:] }
func (h BlockHash) Bytes() []byte         { return h[:] }
func (h TxMerkleNode) Bytes() []byte      { return h[:] }
func (h WitnessMerkleNode) Bytes() []byte { return h[:] }
func (h WitnessCommitment) Bytes() []byte { return h[:] }

func (h Txid) MarshalText() ([]byte, error)      { return []byte(h.String()), nil }
func (h Wtxid) MarshalText() ([]byte, error)     { return []byte(h.String()), nil }
func (h BlockHash) MarshalText() ([]byte, error) { return []byte(h.String()), nil }
func (h TxMerkleNode) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h WitnessMerkleNode) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h WitnessCommitment) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Txid) UnmarshalText(data []byte) error {
	return decodeReversed((*[HashSize]byte)(h), string(data))
}

func (h *Wtxid) UnmarshalText(data []byte) error {
	return decodeReversed((*[HashSize]byte)(h), string(data))
}

func (h *BlockHash) UnmarshalText(data []byte) error {
	return decodeReversed((*[HashSize]byte)(h), string(data))
}

func (h *TxMerkleNode) UnmarshalText(data []byte) error {
	return decodeReversed((*[HashSize]byte)(h), string(data))
}

func (h *WitnessMerkleNode) UnmarshalText(data []byte) error {
	return decodeReversed((*[HashSize]byte)(h), string(data))
}

func (h *WitnessCommitment) UnmarshalText(data []byte) error {
	return decodeReversed((*[HashSize]byte)(h), string(data))
}

// NewTxidFromStr parses a txid in its byte-reversed display form
func NewTxidFromStr(s string) (Txid, error) {
	var ret Txid
	err := decodeReversed((*[HashSize]byte)(&ret), s)
	return ret, err
}

// NewWtxidFromStr parses a wtxid in its byte-reversed display form
func NewWtxidFromStr(s string) (Wtxid, error) {
	var ret Wtxid
	err := decodeReversed((*[HashSize]byte)(&ret), s)
	return ret, err
}

// NewBlockHashFromStr parses a block hash in its byte-reversed display form
func NewBlockHashFromStr(s string) (BlockHash, error) {
	var ret BlockHash
	err := decodeReversed((*[HashSize]byte)(&ret), s)
	return ret, err
}

// HashBlockHeader returns the block hash of a serialized block header
func HashBlockHeader(header []byte) (BlockHash, error) {
	if len(header) != BlockHeaderSize {
		return BlockHash{}, fmt.Errorf(
			"invalid block header length: got %d, want %d",
			len(header),
			BlockHeaderSize,
		)
	}
	return BlockHash(DoubleSha256(header)), nil
}

// BlockHeaderSize is the serialized size of a block header
const BlockHeaderSize = 80

func reversedHex[T ~[HashSize]byte](h T) string {
	b := [HashSize]byte(h)
	for i := 0; i < HashSize/2; i++ {
		b[i], b[HashSize-1-i] = b[HashSize-1-i], b[i]
	}
	return hex.EncodeToString(b[:])
}

func decodeReversed(dst *[HashSize]byte, s string) error {
	if len(s) != MaxHashStringSize {
		return fmt.Errorf(
			"invalid hash string length: got %d, want %d",
			len(s),
			MaxHashStringSize,
		)
	}
	var tmp [HashSize]byte
	if _, err := hex.Decode(tmp[:], []byte(s)); err != nil {
		return fmt.Errorf("invalid hash string: %w", err)
	}
	for i := 0; i < HashSize; i++ {
		dst[i] = tmp[HashSize-1-i]
	}
	return nil
}
