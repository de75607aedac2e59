// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cli

import (
	"encoding/hex"
	"flag"
	"fmt"
	"strconv"

	"github.com/blinklabs-io/btcprim/taproot"
)

// hexBytes prints as lowercase hex in both output formats
type hexBytes []byte

func (h hexBytes) String() string {
	return hex.EncodeToString(h)
}

func (h hexBytes) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func decodeFixedHex(s string, size int) ([]byte, error) {
	ret, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(ret) != size {
		return nil, fmt.Errorf("got %d bytes, want %d", len(ret), size)
	}
	return ret, nil
}

func runTapLeaf(_ *Env, fs *flag.FlagSet, args []string) (Result, error) {
	versionStr := fs.String("version", "0xc0", "leaf version")
	rest, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return nil, err
	}
	version, err := strconv.ParseUint(*versionStr, 0, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid leaf version %q: %w", *versionStr, err)
	}
	leafVersion := taproot.LeafVersion(version)
	if !leafVersion.IsValid() {
		return nil, fmt.Errorf("invalid leaf version %s", leafVersion)
	}
	script, err := hex.DecodeString(rest[0])
	if err != nil {
		return nil, fmt.Errorf("invalid script hex: %w", err)
	}
	return Result{}.
		add("leaf_version", leafVersion.String()).
		add("leaf_hash", taproot.LeafHash(leafVersion, script)).
		add("encoded", hexBytes(taproot.EncodeLeaf(leafVersion, script))), nil
}

func runTapTweak(env *Env, fs *flag.FlagSet, args []string) (Result, error) {
	rest, err := parseArgs(fs, args, 1, 2)
	if err != nil {
		return nil, err
	}
	internalKey, err := taproot.ParseXOnlyPubKeyHex(rest[0])
	if err != nil {
		return nil, err
	}
	res := Result{}.add("internal_key", internalKey)
	var merkleRoot *taproot.TapNodeHash
	if len(rest) == 2 {
		root, err := taproot.NewTapNodeHashFromStr(rest[1])
		if err != nil {
			return nil, fmt.Errorf("invalid merkle root: %w", err)
		}
		merkleRoot = &root
		res = res.add("merkle_root", root)
	}
	outputKey, err := taproot.Tweak(internalKey, merkleRoot)
	if err != nil {
		return nil, err
	}
	address, err := outputKey.Address(env.Params.Bech32HRPSegwit)
	if err != nil {
		return nil, err
	}
	return res.
		add("tweak", taproot.TweakHash(internalKey, merkleRoot)).
		add("output_key", outputKey.Key).
		add("parity", outputKey.Parity.String()).
		add("script_pubkey", hexBytes(outputKey.ScriptPubKey())).
		add("address", address), nil
}
