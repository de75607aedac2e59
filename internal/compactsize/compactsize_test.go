// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package compactsize_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/blinklabs-io/btcprim/internal/compactsize"
)

func TestEncodeDecode(t *testing.T) {
	testDefs := []struct {
		value   uint64
		encoded string
	}{
		{value: 0, encoded: "00"},
		{value: 0xfc, encoded: "fc"},
		{value: 0xfd, encoded: "fdfd00"},
		{value: 300, encoded: "fd2c01"},
		{value: 0xffff, encoded: "fdffff"},
		{value: 0x10000, encoded: "fe00000100"},
		{value: 0xffffffff, encoded: "feffffffff"},
		{value: 0x100000000, encoded: "ff0000000001000000"},
	}
	for _, td := range testDefs {
		got := compactsize.Encode(td.value)
		if hex.EncodeToString(got) != td.encoded {
			t.Fatalf("Encode(%d): got %x, want %s", td.value, got, td.encoded)
		}
		if len(got) != compactsize.Size(td.value) {
			t.Fatalf("Size(%d): got %d, want %d", td.value, compactsize.Size(td.value), len(got))
		}
		// Trailing data must not be consumed
		val, n, err := compactsize.Decode(append(got, 0xaa))
		if err != nil {
			t.Fatalf("unexpected error decoding %x: %s", got, err)
		}
		if val != td.value || n != len(got) {
			t.Fatalf("Decode(%x): got %d (%d bytes), want %d (%d bytes)", got, val, n, td.value, len(got))
		}
	}
}

func TestDecodeNonCanonical(t *testing.T) {
	testDefs := []string{
		"fdfc00",
		"fe00000000",
		"feffff0000",
		"ffffffffff00000000",
	}
	for _, td := range testDefs {
		data, _ := hex.DecodeString(td)
		_, err := compactsize.Read(bytes.NewReader(data))
		if !errors.Is(err, compactsize.ErrNonCanonical) {
			t.Fatalf("Read(%s): got error %v, want %v", td, err, compactsize.ErrNonCanonical)
		}
	}
}

func TestDecodeTruncated(t *testing.T) {
	testDefs := []string{"", "fd", "fd01", "fe010000", "ff01"}
	for _, td := range testDefs {
		data, _ := hex.DecodeString(td)
		if _, _, err := compactsize.Decode(data); err == nil {
			t.Fatalf("expected error decoding %q", td)
		}
	}
}
