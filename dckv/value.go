// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dckv

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Value is the value field of one data element as read from the stream
type Value struct {
	bytes []byte
}

// NewValue returns a Value owning b
func NewValue(b []byte) Value {
	return Value{b}
}

// ReadValue reads exactly n bytes from r. A stream ending before n bytes fails with
// io.ErrUnexpectedEOF.
func ReadValue(r io.Reader, n uint32) (Value, error) {
	// the declared length is not allocated up front
	var buf bytes.Buffer
	got, err := io.CopyN(&buf, r, int64(n))
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return Value{}, errors.Wrapf(err, "reading %d byte value, got %d", n, got)
	}
	return Value{buf.Bytes()}, nil
}

// Text renders the value for display. Binary VRs and NoVR render as empty text, any other VR as
// the raw bytes with each invalid byte replaced by U+FFFD.
func (v Value) Text(vr VR) string {
	if vr == NoVR || vr.IsBinary() {
		return ""
	}
	if utf8.Valid(v.bytes) {
		return string(v.bytes)
	}

	var sb strings.Builder
	sb.Grow(len(v.bytes))
	for b := v.bytes; len(b) > 0; {
		r, size := utf8.DecodeRune(b)
		sb.WriteRune(r)
		b = b[size:]
	}
	return sb.String()
}

// Bytes returns the raw value field
func (v Value) Bytes() []byte {
	return v.bytes
}

// Len returns the length of the value field in bytes
func (v Value) Len() int {
	return len(v.bytes)
}
