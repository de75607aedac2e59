// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package merkle_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/btcprim/chainhash"
	"github.com/blinklabs-io/btcprim/merkle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxRoot(t *testing.T) {
	// Block 100000
	txidStrs := []string{
		"8c14f0db3df150123e6f3dbbf30f8b955a8249b62ac1d1ff16284aefa3d06d87",
		"fff2525b8931402dd09222c50775608f75787bd2b87e56995a7bdd30f79702c4",
		"6359f0868171b1d194cbee1af2f16ea598ae8fad666d9b012c8ed2b79a236ec4",
		"e9a66845e05d5abc0ad04ec80f774a7e585c6e8db975962d069a522137b80c1d",
	}
	txids := make([]chainhash.Txid, len(txidStrs))
	for i, s := range txidStrs {
		txid, err := chainhash.NewTxidFromStr(s)
		require.NoError(t, err)
		txids[i] = txid
	}
	root := merkle.TxRoot(txids)
	assert.Equal(
		t,
		"f3e94742aca4b5ef85488dc37c06c3282295ffec960994b2c0d5ac2a25a95766",
		root.String(),
	)
}

func TestWitnessRootAndCommitment(t *testing.T) {
	leaves := testLeaves(3)
	wtxids := make([]chainhash.Wtxid, len(leaves))
	for i, leaf := range leaves {
		wtxids[i] = chainhash.Wtxid(leaf)
	}
	root := merkle.WitnessRoot(wtxids)
	assert.Equal(
		t,
		"717f407148fe5227d64a8b14c4c5ef879957ef90873612d7ee790456c2b187c7",
		hex.EncodeToString(root[:]),
	)
	// The coinbase wtxid never affects the root
	wtxids[0] = chainhash.Wtxid{0xff}
	assert.Equal(t, root, merkle.WitnessRoot(wtxids))

	commitment := merkle.WitnessCommitment(root, [32]byte{})
	assert.Equal(
		t,
		"65e8648cab99ee09c87a483d2ad4c75d04d57d285a405734211e17e4a85af15d",
		hex.EncodeToString(commitment[:]),
	)
	script := merkle.WitnessCommitmentScript(commitment)
	assert.Equal(
		t,
		"6a24aa21a9ed65e8648cab99ee09c87a483d2ad4c75d04d57d285a405734211e17e4a85af15d",
		hex.EncodeToString(script),
	)

	// A block holding only the coinbase commits to the zero root
	assert.Equal(t, chainhash.WitnessMerkleNode{}, merkle.WitnessRoot(wtxids[:1]))
}
