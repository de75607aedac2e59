// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package taproot

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	witnessVersion = 1

	opOne    = 0x51
	opPush32 = 0x20
)

// ScriptPubKey returns the P2TR output script OP_1 <32-byte key>
func (k OutputKey) ScriptPubKey() []byte {
	ret := make([]byte, 0, 2+XOnlyPubKeySize)
	ret = append(ret, opOne, opPush32)
	return append(ret, k.Key[:]...)
}

// Address returns the bech32m segwit v1 address of the output key
func (k OutputKey) Address(hrp string) (string, error) {
	data, err := bech32.ConvertBits(k.Key[:], 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.EncodeM(hrp, append([]byte{witnessVersion}, data...))
}

// DecodeAddress parses a bech32m P2TR address into its human readable part
// and output key
func DecodeAddress(addr string) (string, XOnlyPubKey, error) {
	hrp, data, version, err := bech32.DecodeGeneric(addr)
	if err != nil {
		return "", XOnlyPubKey{}, fmt.Errorf("decode address: %w", err)
	}
	if len(data) == 0 || data[0] != witnessVersion {
		return "", XOnlyPubKey{}, errors.New("not a segwit v1 address")
	}
	if version != bech32.VersionM {
		return "", XOnlyPubKey{}, errors.New("segwit v1 address must use bech32m")
	}
	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return "", XOnlyPubKey{}, fmt.Errorf("decode address: %w", err)
	}
	key, err := ParseXOnlyPubKey(program)
	if err != nil {
		return "", XOnlyPubKey{}, err
	}
	return hrp, key, nil
}
