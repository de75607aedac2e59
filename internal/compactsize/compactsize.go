// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package compactsize implements the Bitcoin CompactSize length prefix
package compactsize

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

var ErrNonCanonical = errors.New("non-canonical compact size")

// Size returns the encoded length of val
func Size(val uint64) int {
	switch {
	case val < 0xfd:
		return 1
	case val <= math.MaxUint16:
		return 3
	case val <= math.MaxUint32:
		return 5
	default:
		return 9
	}
}

// Decode reads a CompactSize from the start of data and returns the value
// and the number of bytes consumed
func Decode(data []byte) (uint64, int, error) {
	if len(data) == 0 {
		return 0, 0, errors.New("data is empty")
	}
	r := bytes.NewReader(data)
	val, err := Read(r)
	if err != nil {
		return 0, 0, err
	}
	return val, len(data) - r.Len(), nil
}

// Read decodes a CompactSize from r. Values that could have used a
// shorter encoding are rejected with ErrNonCanonical.
func Read(r io.Reader) (uint64, error) {
	var prefix [1]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return 0, err
	}
	var ret, minVal uint64
	switch prefix[0] {
	case 0xff:
		var data [8]byte
		if err := readFull(r, data[:], "uint64"); err != nil {
			return 0, err
		}
		ret = binary.LittleEndian.Uint64(data[:])
		minVal = math.MaxUint32 + 1
	case 0xfe:
		var data [4]byte
		if err := readFull(r, data[:], "uint32"); err != nil {
			return 0, err
		}
		ret = uint64(binary.LittleEndian.Uint32(data[:]))
		minVal = math.MaxUint16 + 1
	case 0xfd:
		var data [2]byte
		if err := readFull(r, data[:], "uint16"); err != nil {
			return 0, err
		}
		ret = uint64(binary.LittleEndian.Uint16(data[:]))
		minVal = 0xfd
	default:
		return uint64(prefix[0]), nil
	}
	if ret < minVal {
		return 0, fmt.Errorf("%w: %d encoded with prefix 0x%02x", ErrNonCanonical, ret, prefix[0])
	}
	return ret, nil
}

func readFull(r io.Reader, buf []byte, kind string) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return fmt.Errorf("invalid length for %s", kind)
		}
		return err
	}
	return nil
}

// Append appends the CompactSize encoding of val to dst
func Append(dst []byte, val uint64) []byte {
	switch {
	case val < 0xfd:
		return append(dst, uint8(val))
	case val <= math.MaxUint16:
		dst = append(dst, 0xfd)
		return binary.LittleEndian.AppendUint16(dst, uint16(val))
	case val <= math.MaxUint32:
		dst = append(dst, 0xfe)
		return binary.LittleEndian.AppendUint32(dst, uint32(val))
	default:
		dst = append(dst, 0xff)
		return binary.LittleEndian.AppendUint64(dst, val)
	}
}

// Encode returns the CompactSize encoding of val
func Encode(val uint64) []byte {
	return Append(make([]byte, 0, Size(val)), val)
}
