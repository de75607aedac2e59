// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chainhash_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/btcprim/chainhash"
)

func TestKnownTagDigests(t *testing.T) {
	testDefs := []struct {
		tag  chainhash.Tag
		name string
	}{
		{tag: chainhash.TagTapLeaf, name: "TapLeaf"},
		{tag: chainhash.TagTapBranch, name: "TapBranch"},
		{tag: chainhash.TagTapTweak, name: "TapTweak"},
		{tag: chainhash.TagTapSighash, name: "TapSighash"},
		{tag: chainhash.TagBIP0340Challenge, name: "BIP0340/challenge"},
		{tag: chainhash.TagBIP0340Aux, name: "BIP0340/aux"},
		{tag: chainhash.TagBIP0340Nonce, name: "BIP0340/nonce"},
	}
	for _, td := range testDefs {
		if td.tag.String() != td.name {
			t.Fatalf("tag name: got %s, want %s", td.tag.String(), td.name)
		}
		computed := chainhash.NewTag(td.name)
		if computed.Digest() != td.tag.Digest() {
			t.Fatalf(
				"digest for tag %s: got %x, want %x",
				td.name,
				td.tag.Digest(),
				computed.Digest(),
			)
		}
	}
}

func TestTaggedHash(t *testing.T) {
	testDefs := []struct {
		tag      chainhash.Tag
		msgs     [][]byte
		expected string
	}{
		{
			tag:      chainhash.TagTapLeaf,
			expected: "5212c288a377d1f8164962a5a13429f9ba6a7b84e59776a52c6637df2106facb",
		},
		{
			tag:      chainhash.TagTapTweak,
			msgs:     [][]byte{{}},
			expected: "8aa4229474ab0100b2d6f0687f031d1fc9d8eef92a042ad97d279bff456b15e4",
		},
		{
			// Leaf version 0xc0 with an empty script
			tag:      chainhash.TagTapLeaf,
			msgs:     [][]byte{{0xc0, 0x00}},
			expected: "83d956a5b36109f8f667aa9b366e8479942e32396455b5f43b6df917768e4d45",
		},
		{
			tag:      chainhash.NewTag("Custom/tag"),
			msgs:     [][]byte{[]byte("ab"), []byte("cd")},
			expected: "e236d3a079f358c074514a8f4206d05c89a42c86a44a6baa7ae9abe3c35d9313",
		},
		{
			tag:      chainhash.NewTag("Custom/tag"),
			msgs:     [][]byte{[]byte("abcd")},
			expected: "e236d3a079f358c074514a8f4206d05c89a42c86a44a6baa7ae9abe3c35d9313",
		},
	}
	for _, td := range testDefs {
		got := chainhash.TaggedHash(td.tag, td.msgs...)
		if hex.EncodeToString(got[:]) != td.expected {
			t.Fatalf(
				"TaggedHash(%s): got %x, want %s",
				td.tag,
				got,
				td.expected,
			)
		}
	}
}

func TestTaggedHashDomainSeparation(t *testing.T) {
	msg := []byte("same message")
	leaf := chainhash.TaggedHash(chainhash.TagTapLeaf, msg)
	branch := chainhash.TaggedHash(chainhash.TagTapBranch, msg)
	if leaf == branch {
		t.Fatalf("different tags produced the same digest %x", leaf)
	}
	if leaf == chainhash.Sha256(msg) {
		t.Fatalf("tagged hash matches plain SHA-256")
	}
}
