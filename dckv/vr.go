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

import "unicode/utf8"

// vrKind groups VRs by how the decoder reads their length field
type vrKind int

const (
	// unknownVR is for codes outside every known category
	unknownVR vrKind = iota

	// shortVR is for value fields with a 16 bit length
	shortVR

	// longVR is for value fields with 2 reserved bytes and a 32 bit length
	longVR

	// sequenceVR is for VR: SQ
	sequenceVR
)

// UndefinedLength as specified
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.1
const UndefinedLength = 0xffffffff

// VR models a DICOM Value Representation as the 2 ASCII characters of its code packed big endian
// into 16 bits, e.g. PN is 0x504E. The zero VR is used for marker keys that carry no VR.
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
type VR uint16

// NoVR is passed to a Deserializer for item and sequence markers
const NoVR VR = 0

// VR list obtained from
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
const (
	AE VR = 0x4145
	AS VR = 0x4153
	AT VR = 0x4154
	CS VR = 0x4353
	DA VR = 0x4441
	DS VR = 0x4453
	DT VR = 0x4454
	FD VR = 0x4644
	FL VR = 0x464C
	IS VR = 0x4953
	LO VR = 0x4C4F
	LT VR = 0x4C54
	PN VR = 0x504E
	SH VR = 0x5348
	SL VR = 0x534C
	SS VR = 0x5353
	ST VR = 0x5354
	TM VR = 0x544D
	UI VR = 0x5549
	UL VR = 0x554C
	US VR = 0x5553

	OB VR = 0x4F42
	OD VR = 0x4F44
	OF VR = 0x4F46
	OL VR = 0x4F4C
	OV VR = 0x4F56
	OW VR = 0x4F57
	SV VR = 0x5356
	UC VR = 0x5543
	UR VR = 0x5552
	UT VR = 0x5554
	UV VR = 0x5556
	UN VR = 0x554E

	SQ VR = 0x5351
)

func (vr VR) kind() vrKind {
	switch vr {
	case AE, AS, AT, CS, DA, DS, DT, FL, FD, IS, LO, LT, PN, SH, SL, SS, ST, TM, UI, UL, US:
		return shortVR
	case UC, UT, UR, SV, UV, OB, OD, OF, OL, OV, OW, UN:
		return longVR
	case SQ:
		return sequenceVR
	default:
		return unknownVR
	}
}

// IsBinary is true if and only if values of this VR have no textual rendering.
// FD is included for compatibility with existing consumers even though FL is not.
func (vr VR) IsBinary() bool {
	switch vr {
	case OB, OD, OF, OL, OV, OW, SV, UC, UR, UT, UV, UN, FD:
		return true
	default:
		return false
	}
}

// Bytes returns the 2 raw bytes of the VR code in stream order
func (vr VR) Bytes() [2]byte {
	return [2]byte{byte(vr >> 8), byte(vr)}
}

// Text returns the VR code as text, or ErrInvalidVR if the code is not valid UTF-8
func (vr VR) Text() (string, error) {
	b := vr.Bytes()
	if !utf8.Valid(b[:]) {
		return "", ErrInvalidVR
	}
	return string(b[:]), nil
}

func (vr VR) String() string {
	if vr == NoVR {
		return ""
	}
	text, err := vr.Text()
	if err != nil {
		return ""
	}
	return text
}
