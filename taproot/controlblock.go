// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package taproot

import (
	"errors"
	"fmt"
)

const (
	ControlBlockBaseSize     = 33
	ControlBlockNodeSize     = 32
	ControlBlockMaxNodeCount = 128
	ControlBlockMaxSize      = ControlBlockBaseSize + ControlBlockNodeSize*ControlBlockMaxNodeCount
)

var ErrInvalidControlBlock = errors.New("invalid control block")

// ControlBlock is the last witness element of a script path spend
type ControlBlock struct {
	LeafVersion     LeafVersion
	OutputKeyParity Parity
	InternalKey     XOnlyPubKey
	MerklePath      []TapNodeHash
}

// ParseControlBlock decodes a serialized control block
func ParseControlBlock(data []byte) (*ControlBlock, error) {
	switch {
	case len(data) < ControlBlockBaseSize:
		return nil, fmt.Errorf(
			"%w: size %d is below minimum %d",
			ErrInvalidControlBlock,
			len(data),
			ControlBlockBaseSize,
		)
	case len(data) > ControlBlockMaxSize:
		return nil, fmt.Errorf(
			"%w: size %d exceeds maximum %d",
			ErrInvalidControlBlock,
			len(data),
			ControlBlockMaxSize,
		)
	case (len(data)-ControlBlockBaseSize)%ControlBlockNodeSize != 0:
		return nil, fmt.Errorf(
			"%w: size %d is not %d plus a multiple of %d",
			ErrInvalidControlBlock,
			len(data),
			ControlBlockBaseSize,
			ControlBlockNodeSize,
		)
	}
	internalKey, err := ParseXOnlyPubKey(data[1:ControlBlockBaseSize])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidControlBlock, err)
	}
	ret := &ControlBlock{
		LeafVersion:     LeafVersion(data[0] & LeafVersionMask),
		OutputKeyParity: Parity(data[0] & 0x01),
		InternalKey:     internalKey,
	}
	pathData := data[ControlBlockBaseSize:]
	for i := 0; i < len(pathData); i += ControlBlockNodeSize {
		var node TapNodeHash
		copy(node[:], pathData[i:i+ControlBlockNodeSize])
		ret.MerklePath = append(ret.MerklePath, node)
	}
	return ret, nil
}

// Bytes serializes the control block
func (c *ControlBlock) Bytes() ([]byte, error) {
	if len(c.MerklePath) > ControlBlockMaxNodeCount {
		return nil, fmt.Errorf(
			"%w: %d path nodes exceeds maximum %d",
			ErrInvalidControlBlock,
			len(c.MerklePath),
			ControlBlockMaxNodeCount,
		)
	}
	if c.OutputKeyParity > ParityOdd {
		return nil, fmt.Errorf("%w: invalid parity %d", ErrInvalidControlBlock, c.OutputKeyParity)
	}
	ret := make([]byte, 0, ControlBlockBaseSize+ControlBlockNodeSize*len(c.MerklePath))
	ret = append(ret, byte(c.LeafVersion&LeafVersionMask)|byte(c.OutputKeyParity))
	ret = append(ret, c.InternalKey[:]...)
	for _, node := range c.MerklePath {
		ret = append(ret, node[:]...)
	}
	return ret, nil
}

// RootHash replays the Merkle path from the leaf for script and returns the
// resulting script tree root
func (c *ControlBlock) RootHash(script []byte) TapNodeHash {
	cur := LeafHash(c.LeafVersion, script).Node()
	for _, node := range c.MerklePath {
		cur = BranchHash(cur, node)
	}
	return cur
}

// VerifyCommitment checks that outputKey commits to script through the
// control block
func VerifyCommitment(c *ControlBlock, outputKey XOnlyPubKey, script []byte) error {
	root := c.RootHash(script)
	expected, err := Tweak(c.InternalKey, &root)
	if err != nil {
		return err
	}
	if expected.Key != outputKey {
		return fmt.Errorf(
			"%w: derived %s, want %s",
			ErrCommitmentMismatch,
			expected.Key,
			outputKey,
		)
	}
	if expected.Parity != c.OutputKeyParity {
		return fmt.Errorf(
			"%w: parity is %s, control block has %s",
			ErrCommitmentMismatch,
			expected.Parity,
			c.OutputKeyParity,
		)
	}
	return nil
}

// ControlBlock builds the control block spending the leaf at index. The
// internal key is tweaked with the tree root to find the output key parity.
func (t *Tree) ControlBlock(internalKey XOnlyPubKey, index int) (*ControlBlock, error) {
	if index < 0 {
		return nil, fmt.Errorf("%w: %d", ErrLeafOutOfRange, index)
	}
	root, proof, err := t.walk(index)
	if err != nil {
		return nil, err
	}
	if !proof.Leaf.Version.IsValid() {
		return nil, fmt.Errorf(
			"%w: leaf version %s",
			ErrInvalidControlBlock,
			proof.Leaf.Version,
		)
	}
	outputKey, err := Tweak(internalKey, &root)
	if err != nil {
		return nil, err
	}
	return &ControlBlock{
		LeafVersion:     proof.Leaf.Version,
		OutputKeyParity: outputKey.Parity,
		InternalKey:     internalKey,
		MerklePath:      proof.MerklePath,
	}, nil
}
