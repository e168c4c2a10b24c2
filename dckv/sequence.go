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
	"math"

	"github.com/pkg/errors"
)

// Tags framing the items of a sequence
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
const (
	ItemTag                     = 0xFFFEE000
	ItemDelimitationItemTag     = 0xFFFEE00D
	SequenceDelimitationItemTag = 0xFFFEE0DD
)

// readSequence reports the sequence container, then each of its items and finally the end of
// the sequence. A sequence of explicit length ends when its bytes are exhausted or at a
// sequence delimitation item; a sequence of undefined length only at the delimitation item.
func (dec *decoder) readSequence(tag uint32) error {
	dec.blocks[dec.depth] = Block{Tag: tag}
	if err := dec.append(0, SQ); err != nil {
		return err
	}

	length, err := dec.dr.UInt32(binary.LittleEndian)
	if err != nil {
		return errors.Wrapf(unexpectedEOF(err), "reading 32 bit length of sequence %08X", tag)
	}

	end := uint64(math.MaxUint64)
	if length != UndefinedLength {
		end = dec.dr.Position() + uint64(length)
	}

	for item := 1; ; item++ {
		if dec.dr.Position() >= end {
			return dec.endSequence(tag)
		}

		itemTag, err := dec.dr.Tag()
		if err != nil {
			return errors.Wrapf(unexpectedEOF(err), "reading item tag of sequence %08X", tag)
		}

		switch itemTag {
		case ItemTag:
			if err := dec.readItem(tag, item, length); err != nil {
				return err
			}
		case SequenceDelimitationItemTag:
			if err := dec.endSequence(tag); err != nil {
				return err
			}
			if err := dec.dr.Skip(4); err != nil {
				return errors.Wrap(err, "skipping sequence delimitation length")
			}
			return nil
		default:
			return errors.Wrapf(ErrInvalidSequenceTag, "got %08X, want %08X or %08X",
				itemTag, ItemTag, SequenceDelimitationItemTag)
		}
	}
}

// readItem numbers the item on the level of its sequence, then reports the item start, the
// nested data set and the item end one level deeper
func (dec *decoder) readItem(tag uint32, item int, seqLength uint32) error {
	if item > math.MaxUint16 {
		return errors.Wrapf(ErrTooManyItems, "sequence %08X", tag)
	}
	if dec.depth+1 >= MaxDepth {
		return errors.Wrapf(ErrDepthExceeded, "item %d of sequence %08X on level %d", item, tag, dec.depth)
	}

	dec.blocks[dec.depth] = Block{Tag: tag, Slot: uint16(item)}
	dec.depth++
	dec.blocks[dec.depth] = Block{VR: itemStartVR}
	if err := dec.append(0, NoVR); err != nil {
		return err
	}

	length, err := dec.dr.UInt32(binary.LittleEndian)
	if err != nil {
		return errors.Wrapf(unexpectedEOF(err), "reading length of item %d", item)
	}
	if length > seqLength {
		return errors.Wrapf(ErrInvalidItemLength, "item %d has length %d, sequence %08X has length %d",
			item, length, tag, seqLength)
	}

	end := uint64(math.MaxUint64)
	if length != UndefinedLength {
		end = dec.dr.Position() + uint64(length)
	}
	if err := dec.parse(end); err != nil {
		return err
	}

	dec.blocks[dec.depth] = Block{Tag: itemEndTag, VR: itemEndVR}
	if err := dec.append(0, NoVR); err != nil {
		return err
	}
	dec.blocks[dec.depth] = Block{}
	dec.depth--

	return nil
}

func (dec *decoder) endSequence(tag uint32) error {
	dec.blocks[dec.depth] = Block{Tag: tag, VR: sequenceEndVR}
	return dec.append(0, NoVR)
}
