// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package pow_test

import (
	"testing"

	"github.com/blinklabs-io/btcprim/pow"
	"github.com/holiman/uint256"
)

func mustTarget(t *testing.T, s string) pow.Target {
	t.Helper()
	ret, err := pow.TargetFromHex(s)
	if err != nil {
		t.Fatalf("unexpected error parsing target %s: %s", s, err)
	}
	return ret
}

func TestCompactDecode(t *testing.T) {
	testDefs := []struct {
		bits      pow.CompactTarget
		expected  string
		reEncoded pow.CompactTarget
	}{
		// Malformed, negative and overflowing values decode to zero
		{bits: 0x00000000, expected: "0", reEncoded: 0},
		{bits: 0x00123456, expected: "0", reEncoded: 0},
		{bits: 0x01003456, expected: "0", reEncoded: 0},
		{bits: 0x02000056, expected: "0", reEncoded: 0},
		{bits: 0x03000000, expected: "0", reEncoded: 0},
		{bits: 0x04000000, expected: "0", reEncoded: 0},
		{bits: 0x00923456, expected: "0", reEncoded: 0},
		{bits: 0x01803456, expected: "0", reEncoded: 0},
		{bits: 0x02800056, expected: "0", reEncoded: 0},
		{bits: 0x03800000, expected: "0", reEncoded: 0},
		{bits: 0x04800000, expected: "0", reEncoded: 0},
		{bits: 0x01fedcba, expected: "0", reEncoded: 0},
		{bits: 0x04923456, expected: "0", reEncoded: 0},
		{bits: 0xff123456, expected: "0", reEncoded: 0},
		{bits: 0x21010000, expected: "0", reEncoded: 0},
		{bits: 0x22000100, expected: "0", reEncoded: 0},
		{bits: 0x23000001, expected: "0", reEncoded: 0},
		// Precision loss on small exponents
		{bits: 0x01123456, expected: "12", reEncoded: 0x01120000},
		{bits: 0x02123456, expected: "1234", reEncoded: 0x02123400},
		{bits: 0x03123456, expected: "123456", reEncoded: 0x03123456},
		{bits: 0x04123456, expected: "12345600", reEncoded: 0x04123456},
		{bits: 0x05009234, expected: "92340000", reEncoded: 0x05009234},
		{
			bits:      0x20123456,
			expected:  "1234560000000000000000000000000000000000000000000000000000000000",
			reEncoded: 0x20123456,
		},
		{
			bits:      0x1d00ffff,
			expected:  "00000000ffff0000000000000000000000000000000000000000000000000000",
			reEncoded: 0x1d00ffff,
		},
		{
			bits:      0x207fffff,
			expected:  "7fffff0000000000000000000000000000000000000000000000000000000000",
			reEncoded: 0x207fffff,
		},
		{
			bits:      0x1b0404cb,
			expected:  "00000000000404cb000000000000000000000000000000000000000000000000",
			reEncoded: 0x1b0404cb,
		},
		// Non-canonical but in range
		{
			bits:      0x21000100,
			expected:  "0100000000000000000000000000000000000000000000000000000000000000",
			reEncoded: 0x20010000,
		},
		{
			bits:      0x22000001,
			expected:  "0100000000000000000000000000000000000000000000000000000000000000",
			reEncoded: 0x20010000,
		},
	}
	for _, td := range testDefs {
		target := td.bits.Target()
		want := mustTarget(t, td.expected)
		if target.Cmp(want) != 0 {
			t.Fatalf(
				"Target(%s): got %s, want %s",
				td.bits,
				target,
				want,
			)
		}
		if got := target.Compact(); got != td.reEncoded {
			t.Fatalf(
				"Compact(Target(%s)): got %s, want %s",
				td.bits,
				got,
				td.reEncoded,
			)
		}
	}
}

func TestCompactEncode(t *testing.T) {
	testDefs := []struct {
		target   pow.Target
		expected pow.CompactTarget
	}{
		{target: pow.NewTarget(uint256.NewInt(0x80)), expected: 0x02008000},
		{target: pow.NewTarget(uint256.NewInt(0x7f)), expected: 0x017f0000},
		{target: pow.NewTarget(uint256.NewInt(0x123456)), expected: 0x03123456},
		{target: pow.NewTarget(uint256.NewInt(0x800000)), expected: 0x04008000},
		{target: pow.NewTarget(new(uint256.Int).SetAllOne()), expected: 0x2100ffff},
		{target: pow.Target{}, expected: 0},
	}
	for _, td := range testDefs {
		if got := td.target.Compact(); got != td.expected {
			t.Fatalf("Compact(%s): got %s, want %s", td.target, got, td.expected)
		}
	}
}

func TestCanonicalRoundTrip(t *testing.T) {
	// Every target encodes to a compact that decodes back to the same
	// truncated value and encodes identically again
	for shift := uint(0); shift < 256; shift++ {
		n := new(uint256.Int).Lsh(uint256.NewInt(0xabcdef), shift)
		if n.IsZero() {
			continue
		}
		c := pow.NewTarget(n).Compact()
		if c.Target().Compact() != c {
			t.Fatalf("round trip of %s: got %s", c, c.Target().Compact())
		}
	}
}

func TestParseCompactTarget(t *testing.T) {
	testDefs := []struct {
		input    string
		expected pow.CompactTarget
		wantErr  bool
	}{
		{input: "1d00ffff", expected: 0x1d00ffff},
		{input: "0x207fffff", expected: 0x207fffff},
		{input: "0x1ffffffff", wantErr: true},
		{input: "nope", wantErr: true},
	}
	for _, td := range testDefs {
		got, err := pow.ParseCompactTarget(td.input)
		if td.wantErr {
			if err == nil {
				t.Fatalf("expected error parsing %q", td.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error parsing %q: %s", td.input, err)
		}
		if got != td.expected {
			t.Fatalf("ParseCompactTarget(%q): got %s, want %s", td.input, got, td.expected)
		}
	}
}
