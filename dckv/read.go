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

	"github.com/pkg/errors"
)

// decoder holds the state of a single Deserialize call. depth and blocks are shared by every
// nested item of the data set.
type decoder struct {
	dr     *dcmReader
	d      Deserializer
	filter Filter
	depth  int
	blocks keyBlocks
}

func newDecoder(r io.ReadSeeker, d Deserializer, filter Filter) *decoder {
	return &decoder{dr: newDcmReader(r), d: d, filter: filter}
}

// parse reads data elements until the stream position reaches end, the stream ends or an item
// delimitation item is found
func (dec *decoder) parse(end uint64) error {
	for dec.dr.Position() < end {
		done, err := dec.readDataElement()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	return nil
}

// readDataElement reads one data element, reporting it to the Deserializer. done is true when
// the current data set has no more elements.
func (dec *decoder) readDataElement() (done bool, err error) {
	tag, err := dec.dr.Tag()
	if err == io.EOF {
		return true, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "reading tag")
	}

	if tag == ItemDelimitationItemTag {
		// ends a nested data set within an item of undefined length
		if err := dec.dr.Skip(4); err != nil {
			return false, errors.Wrap(err, "skipping item delimitation length")
		}
		return true, nil
	}

	vr, err := dec.dr.VR()
	if err != nil {
		return false, errors.Wrapf(unexpectedEOF(err), "reading VR of %08X", tag)
	}

	// for long VRs and SQ these are the reserved bytes preceding the 32 bit length
	shortLength, err := dec.dr.UInt16(binary.LittleEndian)
	if err != nil {
		return false, errors.Wrapf(unexpectedEOF(err), "reading 16 bit length of %08X", tag)
	}

	switch vr.kind() {
	case shortVR:
		dec.blocks[dec.depth] = Block{Tag: tag, VR: vr}
		return false, dec.append(uint32(shortLength), vr)
	case longVR:
		dec.blocks[dec.depth] = Block{Tag: tag, VR: vr}
		length, err := dec.dr.UInt32(binary.LittleEndian)
		if err != nil {
			return false, errors.Wrapf(unexpectedEOF(err), "reading 32 bit length of %08X", tag)
		}
		return false, dec.append(length, vr)
	case sequenceVR:
		return false, dec.readSequence(tag)
	default:
		return false, unsupportedVR(vr)
	}
}

// append reports the unit identified by the current key blocks to the Deserializer
func (dec *decoder) append(length uint32, vr VR) error {
	key := dec.blocks.key()
	if err := dec.d.Append(dec.dr, key, length, vr); err != nil {
		return errors.Wrapf(err, "appending %v", key)
	}
	return nil
}
