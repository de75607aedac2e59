// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blinklabs-io/btcprim/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "network: TestNet4\noutput:\n  format: JSON\nlogging:\n  level: warn\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "testnet4", cfg.Network)
	assert.Equal(t, config.OutputFormatJson, cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Same(t, cfg, config.GetConfig())

	params, err := cfg.ChainParams()
	require.NoError(t, err)
	assert.Equal(t, "48333", params.DefaultPort)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "network: testnet3\n")
	t.Setenv("NETWORK", "regtest")
	t.Setenv("OUTPUT_FORMAT", "text")
	t.Setenv("LOGGING_LEVEL", "debug")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "regtest", cfg.Network)
	assert.Equal(t, config.OutputFormatText, cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, "network: [\n"))
	assert.Error(t, err)

	t.Setenv("OUTPUT_FORMAT", "text")
	t.Setenv("NETWORK", "nonet")
	_, err = config.Load("")
	assert.ErrorContains(t, err, "unknown network")

	t.Setenv("NETWORK", "mainnet")
	t.Setenv("OUTPUT_FORMAT", "xml")
	_, err = config.Load("")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestGetAvailableNetworks(t *testing.T) {
	assert.Equal(
		t,
		[]string{"mainnet", "testnet3", "testnet4", "signet", "regtest"},
		config.GetAvailableNetworks(),
	)
}
