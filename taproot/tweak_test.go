// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package taproot_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/blinklabs-io/btcprim/taproot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wallet test vectors from BIP341
var bip341TestDefs = []struct {
	internalKey string
	script      string
	tweak       string
	outputKey   string
	parity      taproot.Parity
	address     string
}{
	{
		internalKey: "d6889cb081036e0faefa3a35157ad71086b123b2b144b649798b494c300a961d",
		tweak:       "b86e7be8f39bab32a6f2c0443abbc210f0edac0e2c53d501b36b64437d9c6c70",
		outputKey:   "53a1f6e454df1aa2776a2814a721372d6258050de330b3c6d10ee8f4e0dda343",
		parity:      taproot.ParityOdd,
		address:     "bc1p2wsldez5mud2yam29q22wgfh9439spgduvct83k3pm50fcxa5dps59h4z5",
	},
	{
		internalKey: "187791b6f712a8ea41c8ecdd0ee77fab3e85263b37e1ec18a3651926b3a6cf27",
		script:      "20d85a959b0290bf19bb89ed43c916be835475d013da4b362117393e25a48229b8ac",
		tweak:       "cbd8679ba636c1110ea247542cfbd964131a6be84f873f7f3b62a777528ed001",
		outputKey:   "147c9c57132f6e7ecddba9800bb0c4449251c92a1e60371ee77557b6620f3ea3",
		parity:      taproot.ParityOdd,
		address:     "bc1pz37fc4cn9ah8anwm4xqqhvxygjf9rjf2resrw8h8w4tmvcs0863sa2e586",
	},
}

func TestTweakBIP341(t *testing.T) {
	for _, td := range bip341TestDefs {
		internalKey, err := taproot.ParseXOnlyPubKeyHex(td.internalKey)
		require.NoError(t, err)
		var root *taproot.TapNodeHash
		if td.script != "" {
			node := taproot.LeafHash(taproot.BaseLeafVersion, mustDecodeHex(t, td.script)).Node()
			root = &node
		}
		tweak := taproot.TweakHash(internalKey, root)
		if tweak.String() != td.tweak {
			t.Fatalf("TweakHash(%s): got %s, want %s", td.internalKey, tweak, td.tweak)
		}
		outputKey, err := taproot.Tweak(internalKey, root)
		require.NoError(t, err)
		if outputKey.Key.String() != td.outputKey || outputKey.Parity != td.parity {
			t.Fatalf(
				"Tweak(%s): got %s (%s), want %s (%s)",
				td.internalKey,
				outputKey.Key,
				outputKey.Parity,
				td.outputKey,
				td.parity,
			)
		}
		assert.Equal(t, "5120"+td.outputKey, hexString(outputKey.ScriptPubKey()))
		addr, err := outputKey.Address("bc")
		require.NoError(t, err)
		assert.Equal(t, td.address, addr)

		hrp, decoded, err := taproot.DecodeAddress(strings.ToUpper(addr))
		require.NoError(t, err)
		assert.Equal(t, "bc", hrp)
		assert.Equal(t, outputKey.Key, decoded)
	}
}

func TestTweakGenerator(t *testing.T) {
	g, err := taproot.ParseXOnlyPubKeyHex(
		"79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
	)
	require.NoError(t, err)
	outputKey, err := taproot.Tweak(g, nil)
	require.NoError(t, err)
	assert.Equal(
		t,
		"da4710964f7852695de2da025290e24af6d8c281de5a0b902b7135fd9fd74d21",
		outputKey.Key.String(),
	)
	assert.Equal(t, taproot.ParityOdd, outputKey.Parity)
}

func TestTweakInvalidKey(t *testing.T) {
	// Not below the field prime
	var bad taproot.XOnlyPubKey
	for i := range bad {
		bad[i] = 0xff
	}
	_, err := taproot.Tweak(bad, nil)
	assert.True(t, errors.Is(err, taproot.ErrInvalidPublicKey))
	_, err = taproot.ParseXOnlyPubKey(bad[:])
	assert.True(t, errors.Is(err, taproot.ErrInvalidPublicKey))
	_, err = taproot.ParseXOnlyPubKey(bad[:31])
	assert.True(t, errors.Is(err, taproot.ErrInvalidPublicKey))
}

func TestDecodeAddressRejectsBech32(t *testing.T) {
	// Segwit v0 P2WPKH address from BIP173
	_, _, err := taproot.DecodeAddress("bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4")
	assert.Error(t, err)
}
