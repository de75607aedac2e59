// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cli

import (
	"flag"
	"fmt"
	"strings"

	"github.com/blinklabs-io/btcprim/chainhash"
	"github.com/blinklabs-io/btcprim/merkle"
)

// list prints on a single line in text output and as an array in JSON
type list []string

func (l list) String() string {
	return strings.Join(l, ", ")
}

func runMerkle(_ *Env, fs *flag.FlagSet, args []string) (Result, error) {
	index := fs.Int("index", -1, "leaf to build a Merkle path for")
	rest, err := parseArgs(fs, args, 1, -1)
	if err != nil {
		return nil, err
	}
	nodes := make([]chainhash.TxMerkleNode, len(rest))
	for i, s := range rest {
		txid, err := chainhash.NewTxidFromStr(s)
		if err != nil {
			return nil, fmt.Errorf("txid %d: %w", i, err)
		}
		nodes[i] = chainhash.TxMerkleNode(txid)
	}
	root, mutated := merkle.ComputeRootMutated(nodes)
	res := Result{}.
		add("leaves", len(nodes)).
		add("root", root).
		add("mutated", mutated)
	if *index < 0 {
		return res, nil
	}
	path, err := merkle.ComputePath(nodes, *index)
	if err != nil {
		return nil, err
	}
	steps := make(list, 0, len(path))
	for _, step := range path {
		steps = append(steps, fmt.Sprintf("%s:%s", step.Side, step.Sibling))
	}
	return res.
		add("index", *index).
		add("path", steps).
		add("path_valid", merkle.VerifyPath(nodes[*index], path, root)), nil
}

func runWitness(_ *Env, fs *flag.FlagSet, args []string) (Result, error) {
	reservedHex := fs.String("reserved", "", "coinbase witness reserved value (hex, default all zero)")
	rest, err := parseArgs(fs, args, 1, -1)
	if err != nil {
		return nil, err
	}
	wtxids := make([]chainhash.Wtxid, len(rest))
	for i, s := range rest {
		if wtxids[i], err = chainhash.NewWtxidFromStr(s); err != nil {
			return nil, fmt.Errorf("wtxid %d: %w", i, err)
		}
	}
	var reserved [chainhash.HashSize]byte
	if *reservedHex != "" {
		val, err := decodeFixedHex(*reservedHex, chainhash.HashSize)
		if err != nil {
			return nil, fmt.Errorf("reserved value: %w", err)
		}
		copy(reserved[:], val)
	}
	root := merkle.WitnessRoot(wtxids)
	commitment := merkle.WitnessCommitment(root, reserved)
	return Result{}.
		add("witness_root", root).
		add("commitment", commitment).
		add("script", hexBytes(merkle.WitnessCommitmentScript(commitment))), nil
}
