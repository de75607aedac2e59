// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chainhash

import (
	"crypto/sha256"
)

// Tag is a domain separation label for tagged hashes. The SHA-256 of the
// label is computed once when the Tag is built.
type Tag struct {
	name   string
	digest [HashSize]byte
}

// Known tags. The digests are SHA-256 of the tag name.
var (
	TagTapLeaf = Tag{
		name: "TapLeaf",
		digest: [HashSize]byte{
			0xae, 0xea, 0x8f, 0xdc, 0x42, 0x08, 0x98, 0x31,
			0x05, 0x73, 0x4b, 0x58, 0x08, 0x1d, 0x1e, 0x26,
			0x38, 0xd3, 0x5f, 0x1c, 0xb5, 0x40, 0x08, 0xd4,
			0xd3, 0x57, 0xca, 0x03, 0xbe, 0x78, 0xe9, 0xee,
		},
	}
	TagTapBranch = Tag{
		name: "TapBranch",
		digest: [HashSize]byte{
			0x19, 0x41, 0xa1, 0xf2, 0xe5, 0x6e, 0xb9, 0x5f,
			0xa2, 0xa9, 0xf1, 0x94, 0xbe, 0x5c, 0x01, 0xf7,
			0x21, 0x6f, 0x33, 0xed, 0x82, 0xb0, 0x91, 0x46,
			0x34, 0x90, 0xd0, 0x5b, 0xf5, 0x16, 0xa0, 0x15,
		},
	}
	TagTapTweak = Tag{
		name: "TapTweak",
		digest: [HashSize]byte{
			0xe8, 0x0f, 0xe1, 0x63, 0x9c, 0x9c, 0xa0, 0x50,
			0xe3, 0xaf, 0x1b, 0x39, 0xc1, 0x43, 0xc6, 0x3e,
			0x42, 0x9c, 0xbc, 0xeb, 0x15, 0xd9, 0x40, 0xfb,
			0xb5, 0xc5, 0xa1, 0xf4, 0xaf, 0x57, 0xc5, 0xe9,
		},
	}
	TagTapSighash = Tag{
		name: "TapSighash",
		digest: [HashSize]byte{
			0xf4, 0x0a, 0x48, 0xdf, 0x4b, 0x2a, 0x70, 0xc8,
			0xb4, 0x92, 0x4b, 0xf2, 0x65, 0x46, 0x61, 0xed,
			0x3d, 0x95, 0xfd, 0x66, 0xa3, 0x13, 0xeb, 0x87,
			0x23, 0x75, 0x97, 0xc6, 0x28, 0xe4, 0xa0, 0x31,
		},
	}
	TagBIP0340Challenge = Tag{
		name: "BIP0340/challenge",
		digest: [HashSize]byte{
			0x7b, 0xb5, 0x2d, 0x7a, 0x9f, 0xef, 0x58, 0x32,
			0x3e, 0xb1, 0xbf, 0x7a, 0x40, 0x7d, 0xb3, 0x82,
			0xd2, 0xf3, 0xf2, 0xd8, 0x1b, 0xb1, 0x22, 0x4f,
			0x49, 0xfe, 0x51, 0x8f, 0x6d, 0x48, 0xd3, 0x7c,
		},
	}
	TagBIP0340Aux = Tag{
		name: "BIP0340/aux",
		digest: [HashSize]byte{
			0xf1, 0xef, 0x4e, 0x5e, 0xc0, 0x63, 0xca, 0xda,
			0x6d, 0x94, 0xca, 0xfa, 0x9d, 0x98, 0x7e, 0xa0,
			0x69, 0x26, 0x58, 0x39, 0xec, 0xc1, 0x1f, 0x97,
			0x2d, 0x77, 0xa5, 0x2e, 0xd8, 0xc1, 0xcc, 0x90,
		},
	}
	TagBIP0340Nonce = Tag{
		name: "BIP0340/nonce",
		digest: [HashSize]byte{
			0x07, 0x49, 0x77, 0x34, 0xa7, 0x9b, 0xcb, 0x35,
			0x5b, 0x9b, 0x8c, 0x7d, 0x03, 0x4f, 0x12, 0x1c,
			0xf4, 0x34, 0xd7, 0x3e, 0xf7, 0x2d, 0xda, 0x19,
			0x87, 0x00, 0x61, 0xfb, 0x52, 0xbf, 0xeb, 0x2f,
		},
	}
)

// NewTag builds a Tag for an arbitrary label
func NewTag(name string) Tag {
	return Tag{
		name:   name,
		digest: sha256.Sum256([]byte(name)),
	}
}

func (t Tag) String() string {
	return t.name
}

// Digest returns SHA-256 of the tag name
func (t Tag) Digest() [HashSize]byte {
	return t.digest
}

// TaggedHash returns SHA256(SHA256(tag) || SHA256(tag) || msgs...)
func TaggedHash(tag Tag, msgs ...[]byte) [HashSize]byte {
	h := sha256.New()
	h.Write(tag.digest[:])
	h.Write(tag.digest[:])
	for _, msg := range msgs {
		h.Write(msg)
	}
	var ret [HashSize]byte
	h.Sum(ret[:0])
	return ret
}
