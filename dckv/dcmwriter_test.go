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
	"encoding/binary"
	"io"
	"testing"
)

var (
	le binary.ByteOrder = binary.LittleEndian
	be binary.ByteOrder = binary.BigEndian
)

// dcmWriter builds Explicit VR Little Endian test inputs
type dcmWriter struct {
	bytes.Buffer
}

// newDcmWriter returns a dcmWriter holding the bytes skipped by Deserialize
func newDcmWriter() *dcmWriter {
	dw := &dcmWriter{}
	dw.Write(make([]byte, 128))
	dw.WriteString("DICM")
	dw.Element(0x0002, 0x0000, UL, []byte{0, 0, 0, 0})
	return dw
}

func (dw *dcmWriter) UInt16(order binary.ByteOrder, v uint16) *dcmWriter {
	buf := make([]byte, 2)
	order.PutUint16(buf, v)
	dw.Write(buf)
	return dw
}

func (dw *dcmWriter) UInt32(order binary.ByteOrder, v uint32) *dcmWriter {
	buf := make([]byte, 4)
	order.PutUint32(buf, v)
	dw.Write(buf)
	return dw
}

func (dw *dcmWriter) Tag(group, element uint16) *dcmWriter {
	return dw.UInt16(binary.LittleEndian, group).UInt16(binary.LittleEndian, element)
}

func (dw *dcmWriter) VR(vr VR) *dcmWriter {
	return dw.UInt16(binary.BigEndian, uint16(vr))
}

// Element writes a data element with a value field, choosing the length field from the VR
func (dw *dcmWriter) Element(group, element uint16, vr VR, value []byte) *dcmWriter {
	dw.Tag(group, element).VR(vr)
	if vr.kind() == longVR {
		dw.UInt16(binary.LittleEndian, 0).UInt32(binary.LittleEndian, uint32(len(value)))
	} else {
		dw.UInt16(binary.LittleEndian, uint16(len(value)))
	}
	dw.Write(value)
	return dw
}

func (dw *dcmWriter) Sequence(group, element uint16, length uint32) *dcmWriter {
	return dw.Tag(group, element).VR(SQ).UInt16(binary.LittleEndian, 0).UInt32(binary.LittleEndian, length)
}

func (dw *dcmWriter) Item(length uint32) *dcmWriter {
	return dw.Tag(0xFFFE, 0xE000).UInt32(binary.LittleEndian, length)
}

func (dw *dcmWriter) ItemDelimiter() *dcmWriter {
	return dw.Tag(0xFFFE, 0xE00D).UInt32(binary.LittleEndian, 0)
}

func (dw *dcmWriter) SequenceDelimiter() *dcmWriter {
	return dw.Tag(0xFFFE, 0xE0DD).UInt32(binary.LittleEndian, 0)
}

func (dw *dcmWriter) Reader() *bytes.Reader {
	return bytes.NewReader(dw.Bytes())
}

// unit is a decoded unit as seen by a Deserializer
type unit struct {
	key   Key
	kind  Kind
	vr    VR
	value string
}

// recorder is a Deserializer remembering every unit it is given
type recorder struct {
	units []unit
}

func (rec *recorder) Append(r io.ReadSeeker, key Key, length uint32, vr VR) error {
	value, err := ReadValue(r, length)
	if err != nil {
		return err
	}
	rec.units = append(rec.units, unit{key, key.Kind(), vr, string(value.Bytes())})
	return nil
}

func mustKey(t *testing.T, blocks ...Block) Key {
	t.Helper()
	k, err := NewKey(blocks...)
	if err != nil {
		t.Fatalf("NewKey(%v) => %v", blocks, err)
	}
	return k
}
