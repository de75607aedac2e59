// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

type Field struct {
	Key   string
	Value any
}

// Result is an ordered list of output fields
type Result []Field

func (r Result) add(key string, value any) Result {
	return append(r, Field{Key: key, Value: value})
}

// Get returns the value stored under key
func (r Result) Get(key string) (any, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// MarshalJSON encodes the result as an object, keeping field order
func (r Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WriteText writes one aligned "key value" line per field
func (r Result) WriteText(w io.Writer) error {
	width := 0
	for _, f := range r {
		width = max(width, len(f.Key))
	}
	for _, f := range r {
		if _, err := fmt.Fprintf(w, "%-*s  %v\n", width, f.Key, f.Value); err != nil {
			return err
		}
	}
	return nil
}
