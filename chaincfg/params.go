// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package chaincfg defines consensus parameters for the Bitcoin networks
package chaincfg

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/blinklabs-io/btcprim/chainhash"
	"github.com/blinklabs-io/btcprim/pow"
)

// Params holds the consensus values of a single network
type Params struct {
	Name        string
	DefaultPort string
	GenesisHash chainhash.BlockHash

	// PowLimit is the highest allowed target. PowLimitBits is its compact
	// encoding, used as the starting difficulty.
	PowLimit     pow.Target
	PowLimitBits pow.CompactTarget

	TargetTimespan     time.Duration
	TargetTimePerBlock time.Duration
	PoWNoRetargeting   bool
	// ReduceMinDifficulty allows minimum difficulty blocks after twice the
	// target block spacing has passed
	ReduceMinDifficulty bool

	// Bech32HRPSegwit is the human readable part of segwit addresses
	Bech32HRPSegwit string
}

// BlocksPerRetarget is the length of a difficulty adjustment interval
func (p *Params) BlocksPerRetarget() int64 {
	return int64(p.TargetTimespan / p.TargetTimePerBlock)
}

// RetargetParams returns the values needed by pow.NextTarget
func (p *Params) RetargetParams() pow.RetargetParams {
	return pow.RetargetParams{
		PowLimit:       p.PowLimit,
		TargetTimespan: p.TargetTimespan,
		NoRetargeting:  p.PoWNoRetargeting,
	}
}

// CheckProofOfWork checks a block hash and Bits field against this network
func (p *Params) CheckProofOfWork(hash chainhash.BlockHash, bits pow.CompactTarget) error {
	return pow.CheckProofOfWork(hash, bits, p.PowLimit)
}

var MainNetParams = Params{
	Name:                "mainnet",
	DefaultPort:         "8333",
	GenesisHash:         newHashFromStr("000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"),
	PowLimit:            newTargetFromStr("00000000ffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	PowLimitBits:        0x1d00ffff,
	TargetTimespan:      time.Hour * 24 * 14,
	TargetTimePerBlock:  time.Minute * 10,
	PoWNoRetargeting:    false,
	ReduceMinDifficulty: false,
	Bech32HRPSegwit:     "bc",
}

var TestNet3Params = Params{
	Name:                "testnet3",
	DefaultPort:         "18333",
	GenesisHash:         newHashFromStr("000000000933ea01ad0ee984209779baaec3ced90fa3f408719526f8d77f4943"),
	PowLimit:            newTargetFromStr("00000000ffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	PowLimitBits:        0x1d00ffff,
	TargetTimespan:      time.Hour * 24 * 14,
	TargetTimePerBlock:  time.Minute * 10,
	PoWNoRetargeting:    false,
	ReduceMinDifficulty: true,
	Bech32HRPSegwit:     "tb",
}

var TestNet4Params = Params{
	Name:                "testnet4",
	DefaultPort:         "48333",
	GenesisHash:         newHashFromStr("00000000da84f2bafbbc53dee25a72ae507ff4914b867c565be350b0da8bf043"),
	PowLimit:            newTargetFromStr("00000000ffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	PowLimitBits:        0x1d00ffff,
	TargetTimespan:      time.Hour * 24 * 14,
	TargetTimePerBlock:  time.Minute * 10,
	PoWNoRetargeting:    false,
	ReduceMinDifficulty: true,
	Bech32HRPSegwit:     "tb",
}

var SigNetParams = Params{
	Name:                "signet",
	DefaultPort:         "38333",
	GenesisHash:         newHashFromStr("00000008819873e925422c1ff0f99f7cc9bbb232af63a077a480a3633bee1ef6"),
	PowLimit:            newTargetFromStr("00000377ae000000000000000000000000000000000000000000000000000000"),
	PowLimitBits:        0x1e0377ae,
	TargetTimespan:      time.Hour * 24 * 14,
	TargetTimePerBlock:  time.Minute * 10,
	PoWNoRetargeting:    false,
	ReduceMinDifficulty: false,
	Bech32HRPSegwit:     "tb",
}

var RegressionNetParams = Params{
	Name:                "regtest",
	DefaultPort:         "18444",
	GenesisHash:         newHashFromStr("0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206"),
	PowLimit:            newTargetFromStr("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	PowLimitBits:        0x207fffff,
	TargetTimespan:      time.Hour * 24 * 14,
	TargetTimePerBlock:  time.Minute * 10,
	PoWNoRetargeting:    true,
	ReduceMinDifficulty: true,
	Bech32HRPSegwit:     "bcrt",
}

var networks = []*Params{
	&MainNetParams,
	&TestNet3Params,
	&TestNet4Params,
	&SigNetParams,
	&RegressionNetParams,
}

// Names returns the names of all known networks
func Names() []string {
	ret := make([]string, 0, len(networks))
	for _, p := range networks {
		ret = append(ret, p.Name)
	}
	return ret
}

// ParamsByName returns a copy of the parameters of the named network
func ParamsByName(name string) (*Params, error) {
	idx := slices.IndexFunc(networks, func(p *Params) bool {
		return p.Name == strings.ToLower(name)
	})
	if idx < 0 {
		return nil, fmt.Errorf(
			"unknown network: %s: available networks: %s",
			name,
			strings.Join(Names(), ","),
		)
	}
	ret := *networks[idx]
	return &ret, nil
}

func newHashFromStr(s string) chainhash.BlockHash {
	hash, err := chainhash.NewBlockHashFromStr(s)
	if err != nil {
		panic(fmt.Sprintf("invalid hash in network params: %s", err))
	}
	return hash
}

func newTargetFromStr(s string) pow.Target {
	target, err := pow.TargetFromHex(s)
	if err != nil {
		panic(fmt.Sprintf("invalid target in network params: %s", err))
	}
	return target
}
