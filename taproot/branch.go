// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package taproot

import (
	"bytes"
	"errors"

	"github.com/blinklabs-io/btcprim/chainhash"
)

var ErrEmptyTree = errors.New("script tree has no leaves")

// BranchHash combines two nodes with the lexicographically smaller first, so
// the result does not depend on argument order
func BranchHash(a, b TapNodeHash) TapNodeHash {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	return TapNodeHash(chainhash.TaggedHash(chainhash.TagTapBranch, a[:], b[:]))
}

// TreeRoot combines nodes pairwise, level by level, into a single root. A
// node left without a partner is carried up to the next level unchanged.
func TreeRoot(nodes []TapNodeHash) (TapNodeHash, error) {
	if len(nodes) == 0 {
		return TapNodeHash{}, ErrEmptyTree
	}
	level := make([]TapNodeHash, len(nodes))
	copy(level, nodes)
	for len(level) > 1 {
		next := level[:0]
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				next = append(next, level[i])
				continue
			}
			next = append(next, BranchHash(level[i], level[i+1]))
		}
		level = next
	}
	return level[0], nil
}
