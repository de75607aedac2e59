// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package version_test

import (
	"runtime"
	"strings"
	"testing"

	"github.com/blinklabs-io/btcprim/internal/version"
)

func TestGetVersionString(t *testing.T) {
	oldVersion, oldCommit := version.Version, version.CommitHash
	t.Cleanup(func() {
		version.Version, version.CommitHash = oldVersion, oldCommit
	})

	version.Version = ""
	version.CommitHash = "abc123"
	if got := version.GetVersionString(); got != "devel (commit abc123)" {
		t.Fatalf("got %s, want %s", got, "devel (commit abc123)")
	}
	version.Version = "v0.2.0"
	if got := version.GetVersionString(); got != "v0.2.0 (commit abc123)" {
		t.Fatalf("got %s, want %s", got, "v0.2.0 (commit abc123)")
	}
	full := version.GetFullVersionString()
	if !strings.HasPrefix(full, "v0.2.0 (commit abc123) ") ||
		!strings.HasSuffix(full, runtime.Version()) {
		t.Fatalf("unexpected full version string: %s", full)
	}
}
