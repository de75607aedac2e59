// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package merkle

import (
	"github.com/blinklabs-io/btcprim/chainhash"
)

// WitnessCommitmentHeader prefixes the witness commitment in the coinbase
// output script: OP_RETURN, a 36-byte push and the magic 0xaa21a9ed
var WitnessCommitmentHeader = [6]byte{0x6a, 0x24, 0xaa, 0x21, 0xa9, 0xed}

// TxRoot returns the transaction Merkle root of a block
func TxRoot(txids []chainhash.Txid) chainhash.TxMerkleNode {
	nodes := make([]chainhash.TxMerkleNode, len(txids))
	for i, txid := range txids {
		nodes[i] = chainhash.TxMerkleNode(txid)
	}
	return ComputeRoot(nodes)
}

// WitnessRoot returns the witness Merkle root of a block. The coinbase wtxid
// is replaced with the zero digest, so wtxids[0] is ignored.
func WitnessRoot(wtxids []chainhash.Wtxid) chainhash.WitnessMerkleNode {
	nodes := make([]chainhash.WitnessMerkleNode, len(wtxids))
	for i, wtxid := range wtxids {
		if i == 0 {
			continue
		}
		nodes[i] = chainhash.WitnessMerkleNode(wtxid)
	}
	return ComputeRoot(nodes)
}

// WitnessCommitment returns SHA-256d(witnessRoot || reservedValue). The
// reserved value is the single coinbase input witness item.
func WitnessCommitment(
	witnessRoot chainhash.WitnessMerkleNode,
	reservedValue [chainhash.HashSize]byte,
) chainhash.WitnessCommitment {
	return chainhash.WitnessCommitment(
		chainhash.DoubleSha256(witnessRoot[:], reservedValue[:]),
	)
}

// WitnessCommitmentScript returns the coinbase output script carrying c
func WitnessCommitmentScript(c chainhash.WitnessCommitment) []byte {
	ret := make([]byte, 0, len(WitnessCommitmentHeader)+chainhash.HashSize)
	ret = append(ret, WitnessCommitmentHeader[:]...)
	return append(ret, c[:]...)
}
