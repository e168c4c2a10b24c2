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
	"testing"
)

func TestDcmReader_Tag(t *testing.T) {
	testCases := []struct {
		name string
		in   []byte
		want uint32
		err  error
	}{
		{"element + (group << 16)", []byte{0x10, 0x00, 0x20, 0x00}, 0x00100020, nil},
		{"item delimitation", []byte{0xFE, 0xFF, 0x0D, 0xE0}, ItemDelimitationItemTag, nil},
		{"empty", nil, 0, io.EOF},
		{"partial group", []byte{0x10}, 0, io.EOF},
		{"missing element", []byte{0x10, 0x00}, 0, io.ErrUnexpectedEOF},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tag, err := newDcmReader(bytes.NewReader(tc.in)).Tag()
			if err != tc.err || tag != tc.want {
				t.Fatalf("Tag() => (%08X, %v), want (%08X, %v)", tag, err, tc.want, tc.err)
			}
		})
	}
}

func TestDcmReader_Position(t *testing.T) {
	dr := newDcmReader(bytes.NewReader([]byte{'P', 'N', 0x08, 0x00, 0, 0, 0, 0, 0, 0}))

	vr, err := dr.VR()
	if err != nil || vr != PN {
		t.Fatalf("VR() => (%v, %v), want (PN, nil)", vr, err)
	}
	if length, err := dr.UInt16(le); err != nil || length != 8 {
		t.Fatalf("UInt16(_) => (%v, %v), want (8, nil)", length, err)
	}
	if dr.Position() != 4 {
		t.Fatalf("Position() => %v, want 4", dr.Position())
	}
	if err := dr.Skip(4); err != nil {
		t.Fatalf("Skip(4) => %v", err)
	}
	if dr.Position() != 8 {
		t.Fatalf("Position() => %v, want 8", dr.Position())
	}
	if _, err := dr.Seek(1, io.SeekStart); err != nil || dr.Position() != 1 {
		t.Fatalf("Seek(1, io.SeekStart) => %v, position %v", err, dr.Position())
	}
}
