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

var (
	ErrInvalidTree    = errors.New("script tree contains a nil node")
	ErrLeafOutOfRange = errors.New("leaf index out of range")
	ErrTreeTooDeep    = errors.New("leaf is too deep for a control block")
)

// Node is a caller-shaped script tree node, either a *Leaf or a *Branch
type Node interface {
	isNode()
}

type Leaf struct {
	Version LeafVersion
	Script  []byte
}

func NewBaseLeaf(script []byte) *Leaf {
	return &Leaf{Version: BaseLeafVersion, Script: script}
}

func (*Leaf) isNode() {}

func (l *Leaf) Hash() TapLeafHash {
	return LeafHash(l.Version, l.Script)
}

type Branch struct {
	Left  Node
	Right Node
}

func NewBranch(left, right Node) *Branch {
	return &Branch{Left: left, Right: right}
}

func (*Branch) isNode() {}

// Tree is a script tree with an explicit shape. Leaves are numbered from
// left to right starting at zero.
type Tree struct {
	top Node
}

func NewTree(root Node) *Tree {
	return &Tree{top: root}
}

// LeafProof is the data needed to show that a leaf is committed to by the
// tree root. MerklePath runs from the leaf's sibling up to the root.
type LeafProof struct {
	Leaf       *Leaf
	MerklePath []TapNodeHash
}

// Root returns the root hash of the tree
func (t *Tree) Root() (TapNodeHash, error) {
	root, _, err := t.walk(-1)
	return root, err
}

// Proof returns the inclusion proof for the leaf at index
func (t *Tree) Proof(index int) (*LeafProof, error) {
	if index < 0 {
		return nil, fmt.Errorf("%w: %d", ErrLeafOutOfRange, index)
	}
	_, proof, err := t.walk(index)
	if err != nil {
		return nil, err
	}
	return proof, nil
}

// Leaves returns the leaves of the tree from left to right
func (t *Tree) Leaves() ([]*Leaf, error) {
	if t == nil || t.top == nil {
		return nil, ErrEmptyTree
	}
	var ret []*Leaf
	stack := []Node{t.top}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch v := n.(type) {
		case *Leaf:
			if v == nil {
				return nil, ErrInvalidTree
			}
			ret = append(ret, v)
		case *Branch:
			if v == nil {
				return nil, ErrInvalidTree
			}
			stack = append(stack, v.Right, v.Left)
		default:
			return nil, ErrInvalidTree
		}
	}
	return ret, nil
}

type walkFrame struct {
	node     Node
	expanded bool
}

type walkResult struct {
	hash      TapNodeHash
	hasTarget bool
}

// walk hashes the tree in post-order using an explicit stack. When target
// is a valid leaf index, the siblings on its path are collected.
func (t *Tree) walk(target int) (TapNodeHash, *LeafProof, error) {
	if t == nil || t.top == nil {
		return TapNodeHash{}, nil, ErrEmptyTree
	}
	var (
		proof     *LeafProof
		path      []TapNodeHash
		results   []walkResult
		leafCount int
	)
	stack := []walkFrame{{node: t.top}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch n := f.node.(type) {
		case *Leaf:
			if n == nil {
				return TapNodeHash{}, nil, ErrInvalidTree
			}
			isTarget := leafCount == target
			if isTarget {
				proof = &LeafProof{Leaf: n}
			}
			results = append(results, walkResult{
				hash:      n.Hash().Node(),
				hasTarget: isTarget,
			})
			leafCount++
		case *Branch:
			if n == nil {
				return TapNodeHash{}, nil, ErrInvalidTree
			}
			if !f.expanded {
				stack = append(
					stack,
					walkFrame{node: n, expanded: true},
					walkFrame{node: n.Right},
					walkFrame{node: n.Left},
				)
				continue
			}
			left := results[len(results)-2]
			right := results[len(results)-1]
			results = results[:len(results)-2]
			switch {
			case left.hasTarget:
				path = append(path, right.hash)
			case right.hasTarget:
				path = append(path, left.hash)
			}
			results = append(results, walkResult{
				hash:      BranchHash(left.hash, right.hash),
				hasTarget: left.hasTarget || right.hasTarget,
			})
		default:
			return TapNodeHash{}, nil, ErrInvalidTree
		}
	}
	if target >= 0 {
		if proof == nil {
			return TapNodeHash{}, nil, fmt.Errorf(
				"%w: %d of %d leaves",
				ErrLeafOutOfRange,
				target,
				leafCount,
			)
		}
		if len(path) > ControlBlockMaxNodeCount {
			return TapNodeHash{}, nil, fmt.Errorf(
				"%w: depth %d",
				ErrTreeTooDeep,
				len(path),
			)
		}
		proof.MerklePath = path
	}
	return results[0].hash, proof, nil
}
