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
	"encoding/binary"
	"io"
)

// dcmReader is a wrapper around io.ReadSeeker, providing convenience methods for
// parsing tags and numbers while tracking the stream position
type dcmReader struct {
	rs  io.ReadSeeker
	pos uint64 // current offset from the start of the stream
}

func newDcmReader(rs io.ReadSeeker) *dcmReader {
	return &dcmReader{rs: rs}
}

func (dr *dcmReader) Read(p []byte) (int, error) {
	n, err := dr.rs.Read(p)
	dr.pos += uint64(n)
	return n, err
}

func (dr *dcmReader) Seek(offset int64, whence int) (int64, error) {
	abs, err := dr.rs.Seek(offset, whence)
	if err != nil {
		return abs, err
	}
	dr.pos = uint64(abs)
	return abs, nil
}

// Position returns the offset of the next byte to be read
func (dr *dcmReader) Position() uint64 {
	return dr.pos
}

// Skip advances the input stream by n bytes
func (dr *dcmReader) Skip(n int64) error {
	_, err := dr.Seek(n, io.SeekCurrent)
	return err
}

// Tag returns a tag built as element + (group << 16). io.EOF is returned when the stream ends
// within the group number, including a single trailing byte.
func (dr *dcmReader) Tag() (uint32, error) {
	group, err := dr.UInt16(binary.LittleEndian)
	if err == io.ErrUnexpectedEOF {
		return 0, io.EOF
	}
	if err != nil {
		return 0, err
	}
	element, err := dr.UInt16(binary.LittleEndian)
	if err != nil {
		return 0, unexpectedEOF(err)
	}

	return uint32(element) + uint32(group)<<16, nil
}

// VR returns the next 2 bytes as a packed VR code
func (dr *dcmReader) VR() (VR, error) {
	vr, err := dr.UInt16(binary.BigEndian)
	return VR(vr), err
}

// UInt32 returns a uint32 from the input stream
func (dr *dcmReader) UInt32(byteOrder binary.ByteOrder) (uint32, error) {
	var b uint32
	err := binary.Read(dr, byteOrder, &b)
	return b, err
}

// UInt16 returns a uint16 from the input stream
func (dr *dcmReader) UInt16(byteOrder binary.ByteOrder) (uint16, error) {
	var b uint16
	err := binary.Read(dr, byteOrder, &b)
	return b, err
}

// unexpectedEOF reports io.EOF as io.ErrUnexpectedEOF, for reads past the start of an element
func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
