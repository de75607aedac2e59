// Copyright 2024 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package config

import (
	"github.com/blinklabs-io/btcprim/chaincfg"
)

// ChainParams returns the consensus parameters of the configured network
func (c *Config) ChainParams() (*chaincfg.Params, error) {
	return chaincfg.ParamsByName(c.Network)
}

// GetAvailableNetworks returns the network names accepted in the config
func GetAvailableNetworks() []string {
	return chaincfg.Names()
}
