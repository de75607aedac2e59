// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package merkle computes Bitcoin transaction and witness Merkle trees
package merkle

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/btcprim/chainhash"
)

var ErrIndexOutOfRange = errors.New("leaf index out of range")

// Node is any SHA-256d digest type that can sit in a Merkle tree
type Node interface {
	~[chainhash.HashSize]byte
}

// Side is the position of a sibling relative to the node being proven
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

type PathStep[N Node] struct {
	Sibling N
	Side    Side
}

// ComputeRoot returns the Merkle root of leaves. Levels with an odd number
// of nodes pair the last node with itself. No leaves yields the zero digest.
func ComputeRoot[N Node](leaves []N) N {
	root, _ := computeRoot(leaves)
	return root
}

// ComputeRootMutated returns the same root as ComputeRoot and whether any
// level held two identical adjacent nodes. Such a tree has the same root as
// a different leaf list and must be rejected by block validation.
func ComputeRootMutated[N Node](leaves []N) (N, bool) {
	return computeRoot(leaves)
}

func computeRoot[N Node](leaves []N) (N, bool) {
	var zero N
	if len(leaves) == 0 {
		return zero, false
	}
	level := make([]N, len(leaves), len(leaves)+1)
	copy(level, leaves)
	mutated := false
	for len(level) > 1 {
		for i := 0; i+1 < len(level); i += 2 {
			if level[i] == level[i+1] {
				mutated = true
			}
		}
		level = combineLevel(level)
	}
	return level[0], mutated
}

// combineLevel hashes a level in place and returns the next one
func combineLevel[N Node](level []N) []N {
	if len(level)%2 != 0 {
		level = append(level, level[len(level)-1])
	}
	for i := 0; i < len(level); i += 2 {
		level[i/2] = hashPair(level[i], level[i+1])
	}
	return level[:len(level)/2]
}

func hashPair[N Node](left, right N) N {
	l := [chainhash.HashSize]byte(left)
	r := [chainhash.HashSize]byte(right)
	return N(chainhash.DoubleSha256(l[:], r[:]))
}

// ComputePath returns the siblings needed to recompute the root from the
// leaf at index, ordered from the leaf upward
func ComputePath[N Node](leaves []N, index int) ([]PathStep[N], error) {
	if index < 0 || index >= len(leaves) {
		return nil, fmt.Errorf(
			"%w: %d of %d leaves",
			ErrIndexOutOfRange,
			index,
			len(leaves),
		)
	}
	level := make([]N, len(leaves), len(leaves)+1)
	copy(level, leaves)
	var path []PathStep[N]
	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		if index%2 == 0 {
			path = append(path, PathStep[N]{Sibling: level[index+1], Side: SideRight})
		} else {
			path = append(path, PathStep[N]{Sibling: level[index-1], Side: SideLeft})
		}
		level = combineLevel(level)
		index /= 2
	}
	return path, nil
}

// VerifyPath replays path from leaf and reports whether it reaches root
func VerifyPath[N Node](leaf N, path []PathStep[N], root N) bool {
	cur := leaf
	for _, step := range path {
		switch step.Side {
		case SideLeft:
			cur = hashPair(step.Sibling, cur)
		case SideRight:
			cur = hashPair(cur, step.Sibling)
		default:
			return false
		}
	}
	return cur == root
}
