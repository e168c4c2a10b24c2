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
	"testing"
)

func TestDumper(t *testing.T) {
	testCases := []struct {
		name    string
		charset []byte
		want    string
	}{
		{
			"raw bytes without character set",
			nil,
			"(0008,1140) SQ 0 \n" +
				"(0000,0000) ++ 1 \n" +
				"(0008,1155) UI 1 1.2.840.10008.5.1.4.1.1.4\n" +
				"(ffff,ffff) __ 1 \n" +
				"(0008,1140)  0 \n" +
				"(0010,0010) PN 0 Ren\uFFFD\n",
		},
		{
			"latin-1 character set",
			[]byte("ISO_IR 100"),
			"(0008,0005) CS 0 ISO_IR 100\n" +
				"(0008,1140) SQ 0 \n" +
				"(0000,0000) ++ 1 \n" +
				"(0008,1155) UI 1 1.2.840.10008.5.1.4.1.1.4\n" +
				"(ffff,ffff) __ 1 \n" +
				"(0008,1140)  0 \n" +
				"(0010,0010) PN 0 René\n",
		},
		{
			"unknown character set",
			[]byte("ISO_IR 999"),
			"(0008,0005) CS 0 ISO_IR 999\n" +
				"(0008,1140) SQ 0 \n" +
				"(0000,0000) ++ 1 \n" +
				"(0008,1155) UI 1 1.2.840.10008.5.1.4.1.1.4\n" +
				"(ffff,ffff) __ 1 \n" +
				"(0008,1140)  0 \n" +
				"(0010,0010) PN 0 Ren\uFFFD\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dw := newDcmWriter()
			if tc.charset != nil {
				dw.Element(0x0008, 0x0005, CS, tc.charset)
			}
			dw.Sequence(0x0008, 0x1140, UndefinedLength).Item(UndefinedLength)
			writeNestedElement(dw).ItemDelimiter().SequenceDelimiter()
			dw.Element(0x0010, 0x0010, PN, []byte{'R', 'e', 'n', 0xE9})

			var out bytes.Buffer
			if err := Deserialize(dw.Reader(), NewDumper(&out), NoFilter()); err != nil {
				t.Fatalf("Deserialize(_, _, _) => %v", err)
			}
			if out.String() != tc.want {
				t.Fatalf("got\n%s\nwant\n%s", out.String(), tc.want)
			}
		})
	}
}

func TestCharacterSetTerm(t *testing.T) {
	testCases := []struct {
		value string
		want  string
	}{
		{"ISO_IR 100", "ISO_IR 100"},
		{"ISO_IR 192 ", "ISO_IR 192"},
		{"\\ISO 2022 IR 87", "ISO 2022 IR 87"},
		{"", ""},
	}

	for _, tc := range testCases {
		if got := characterSetTerm(tc.value); got != tc.want {
			t.Errorf("characterSetTerm(%q) => %q, want %q", tc.value, got, tc.want)
		}
	}
}
