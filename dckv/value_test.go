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
	"errors"
	"io"
	"testing"
)

func TestReadValue(t *testing.T) {
	r := bytes.NewReader([]byte("DOE^JOHN trailing"))

	value, err := ReadValue(r, 8)
	if err != nil {
		t.Fatalf("ReadValue(_, 8) => %v", err)
	}
	if !bytes.Equal(value.Bytes(), []byte("DOE^JOHN")) || value.Len() != 8 {
		t.Fatalf("ReadValue(_, 8) => %q, want %q", value.Bytes(), "DOE^JOHN")
	}
	if r.Len() != 9 {
		t.Fatalf("got %v bytes left in reader, want 9", r.Len())
	}

	if _, err := ReadValue(r, 10); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("ReadValue(_, 10) => %v, want %v", err, io.ErrUnexpectedEOF)
	}
}

func TestValue_Text(t *testing.T) {
	testCases := []struct {
		name  string
		bytes []byte
		vr    VR
		want  string
	}{
		{"person name", []byte("DOE^JOHN"), PN, "DOE^JOHN"},
		{"padding kept", []byte("MR "), CS, "MR "},
		{"unsigned short rendered as bytes", []byte{'A', 'B'}, US, "AB"},
		{"invalid utf-8 replaced", []byte{'R', 'e', 'n', 0xE9}, PN, "Ren\uFFFD"},
		{"adjacent invalid bytes replaced each", []byte{'A', 0xFF, 0xFE, 'B'}, LO, "A\uFFFD\uFFFDB"},
		{"multi-byte runes kept", []byte("Ren\u00e9"), PN, "Ren\u00e9"},
		{"no VR", []byte("DOE^JOHN"), NoVR, ""},
		{"OB", []byte{0x00, 0x01}, OB, ""},
		{"OW", []byte{0x00, 0x01}, OW, ""},
		{"UN", []byte("text"), UN, ""},
		{"UT", []byte("text"), UT, ""},
		{"UC", []byte("text"), UC, ""},
		{"UR", []byte("http://x"), UR, ""},
		{"FD", make([]byte, 8), FD, ""},
		{"FL", []byte("abcd"), FL, "abcd"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewValue(tc.bytes).Text(tc.vr); got != tc.want {
				t.Fatalf("Text(%v) => %q, want %q", tc.vr, got, tc.want)
			}
		})
	}
}
