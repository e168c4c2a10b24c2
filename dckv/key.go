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
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// MaxDepth is the number of nesting levels a Key can encode. Top level elements are on level 0,
// so the deepest level is MaxDepth-1.
const MaxDepth = 12

// blockSize is the size in bytes of a serialized Block
const blockSize = 8

// Sentinels written into key blocks for sequence markers
const (
	itemStartVR   VR     = 0x2B2B // "++"
	itemEndTag    uint32 = 0xFFFFFFFF
	itemEndVR     VR     = 0x5F5F // "__"
	sequenceEndVR VR     = 0xFFFF
)

// Block is the part of a Key describing one nesting level.
type Block struct {
	// Tag is element + (group << 16), as read from the stream. Keys of existing stores depend on
	// this layout.
	Tag uint32

	// VR is NoVR for sequence containers, or one of the marker codes for item and sequence markers
	VR VR

	// Slot holds the item number on the level of a sequence whose item is being decoded
	Slot uint16
}

func (b Block) isZero() bool {
	return b == Block{}
}

func (b Block) uint64() uint64 {
	return uint64(b.Tag)<<32 | uint64(b.VR)<<16 | uint64(b.Slot)
}

func blockFromUint64(v uint64) Block {
	return Block{uint32(v >> 32), VR(v >> 16), uint16(v)}
}

func (b Block) String() string {
	return fmt.Sprintf("%08X:%04X:%04X", b.Tag, uint16(b.VR), b.Slot)
}

// keyBlocks is the mutable key state of a decode, one Block per nesting level
type keyBlocks [MaxDepth]Block

// key returns the Key made of the non-zero blocks
func (kb *keyBlocks) key() Key {
	var k Key
	for _, b := range kb {
		if b.isZero() {
			continue
		}
		k.blocks[k.n] = b
		k.n++
	}
	return k
}

// Key identifies a decoded unit by its full path through nested sequences. Keys are comparable
// and may be used as map keys; two keys are equal if and only if their serialized bytes are.
type Key struct {
	blocks [MaxDepth]Block
	n      int
}

// NewKey returns the Key made of the given blocks. Zero blocks are dropped.
func NewKey(blocks ...Block) (Key, error) {
	var kb keyBlocks
	n := 0
	for _, b := range blocks {
		if b.isZero() {
			continue
		}
		if n == MaxDepth {
			return Key{}, ErrDepthExceeded
		}
		kb[n] = b
		n++
	}
	return kb.key(), nil
}

// ParseKey returns the Key serialized in b by Key.Bytes
func ParseKey(b []byte) (Key, error) {
	if len(b)%blockSize != 0 || len(b)/blockSize > MaxDepth {
		return Key{}, errors.Wrapf(ErrMalformedKey, "%d bytes", len(b))
	}
	var k Key
	for off := 0; off < len(b); off += blockSize {
		block := blockFromUint64(binary.BigEndian.Uint64(b[off:]))
		if block.isZero() {
			return Key{}, errors.Wrapf(ErrMalformedKey, "zero block at offset %d", off)
		}
		k.blocks[k.n] = block
		k.n++
	}
	return k, nil
}

// Bytes returns the serialized key: 8 big endian bytes (tag, VR, slot) per level
func (k Key) Bytes() []byte {
	buf := make([]byte, 0, k.n*blockSize)
	for _, b := range k.Blocks() {
		buf = binary.BigEndian.AppendUint64(buf, b.uint64())
	}
	return buf
}

// Blocks returns the blocks of the key from the top level down
func (k Key) Blocks() []Block {
	return append([]Block(nil), k.blocks[:k.n]...)
}

// Level returns the nesting level of the unit identified by the key
func (k Key) Level() int {
	if k.n == 0 {
		return 0
	}
	return k.n - 1
}

// Innermost returns the block of the deepest level, which describes the unit itself
func (k Key) Innermost() Block {
	if k.n == 0 {
		return Block{}
	}
	return k.blocks[k.n-1]
}

// Group returns the group number of the innermost tag
func (k Key) Group() uint16 {
	return uint16(k.Innermost().Tag >> 16)
}

// Element returns the element number of the innermost tag
func (k Key) Element() uint16 {
	return uint16(k.Innermost().Tag)
}

// VR returns the innermost VR slot as text. Marker keys return their marker characters.
func (k Key) VR() (string, error) {
	return k.Innermost().VR.Text()
}

// Kind returns which decoded unit the key identifies
func (k Key) Kind() Kind {
	b := k.Innermost()
	switch {
	case b.Tag == 0 && b.VR == itemStartVR:
		return KindItemStart
	case b.Tag == itemEndTag && b.VR == itemEndVR:
		return KindItemEnd
	case b.VR == sequenceEndVR:
		return KindSequenceEnd
	case b.VR == NoVR:
		return KindSequence
	default:
		return KindElement
	}
}

func (k Key) String() string {
	parts := make([]string, k.n)
	for i, b := range k.blocks[:k.n] {
		parts[i] = b.String()
	}
	return strings.Join(parts, "/")
}

// Compare orders keys byte-wise over their serialized form
func Compare(a, b Key) int {
	return bytes.Compare(a.Bytes(), b.Bytes())
}

// Kind describes a unit reported to a Deserializer
type Kind int

const (
	// KindElement is a data element with a value field
	KindElement Kind = iota

	// KindSequence is the container of a sequence, reported before its items
	KindSequence

	// KindItemStart marks the start of a sequence item
	KindItemStart

	// KindItemEnd marks the end of a sequence item
	KindItemEnd

	// KindSequenceEnd marks the end of a sequence
	KindSequenceEnd
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindSequence:
		return "sequence"
	case KindItemStart:
		return "item start"
	case KindItemEnd:
		return "item end"
	case KindSequenceEnd:
		return "sequence end"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}
