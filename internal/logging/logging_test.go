// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package logging_test

import (
	"testing"

	"github.com/blinklabs-io/btcprim/internal/config"
	"github.com/blinklabs-io/btcprim/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestSetup(t *testing.T) {
	// Logger is usable before setup
	require.NotNil(t, logging.GetLogger())

	cfg := config.GetConfig()
	oldLevel := cfg.Logging.Level
	t.Cleanup(func() { cfg.Logging.Level = oldLevel })

	cfg.Logging.Level = "debug"
	require.NoError(t, logging.Setup())
	assert.True(t, logging.GetDesugaredLogger().Core().Enabled(zapcore.DebugLevel))

	cfg.Logging.Level = "error"
	require.NoError(t, logging.Setup())
	assert.False(t, logging.GetDesugaredLogger().Core().Enabled(zapcore.WarnLevel))
	assert.NotNil(t, logging.GetCommandLogger("bits"))

	cfg.Logging.Level = "chatty"
	assert.Error(t, logging.Setup())
}
