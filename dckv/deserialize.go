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
	"io"
	"math"

	"github.com/pkg/errors"
)

// PreambleLength is the number of bytes skipped before the first data element: the 128 byte
// preamble, the DICM prefix and the File Meta Information Group Length element. The skipped
// bytes are not validated.
const PreambleLength = 144

// Deserializer consumes the units decoded by Deserialize.
type Deserializer interface {
	// Append is called once per decoded unit, in stream order: for every data element, for the
	// container of every sequence, and for the start and end of every item and the end of every
	// sequence. Kind reports which of these the key identifies.
	//
	// length bytes of value field follow in r and Append must read exactly that many before
	// returning. vr is NoVR for item and sequence markers. Returning an error aborts the decode.
	Append(r io.ReadSeeker, key Key, length uint32, vr VR) error
}

// DeserializerFunc adapts a function to a Deserializer
type DeserializerFunc func(r io.ReadSeeker, key Key, length uint32, vr VR) error

// Append calls f(r, key, length, vr)
func (f DeserializerFunc) Append(r io.ReadSeeker, key Key, length uint32, vr VR) error {
	return f(r, key, length, vr)
}

// Deserialize decodes the DICOM file in r and reports every decoded unit to d. Decoding stops
// without error when the stream ends at the start of a data element. Any other error aborts the
// decode; units already reported to d do not form a complete data set.
//
// The filter is accepted for forward compatibility and is not yet applied.
func Deserialize(r io.ReadSeeker, d Deserializer, filter Filter) error {
	dec := newDecoder(r, d, filter)
	if _, err := dec.dr.Seek(PreambleLength, io.SeekStart); err != nil {
		return errors.Wrap(err, "skipping preamble")
	}

	return dec.parse(math.MaxUint64)
}
