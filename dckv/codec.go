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

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = (*KVMap)(nil)
	_ msgpack.CustomDecoder = (*KVMap)(nil)
)

// EncodeMsgpack encodes the map as a msgpack array of [key, value] pairs in insertion order
func (m *KVMap) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(m.Len()); err != nil {
		return err
	}
	for k, v := range m.All() {
		if err := enc.EncodeArrayLen(2); err != nil {
			return err
		}
		if err := enc.EncodeBytes(k.Bytes()); err != nil {
			return err
		}
		if err := enc.EncodeBytes(v); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack replaces the contents of the map with the entries encoded by EncodeMsgpack
func (m *KVMap) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return errors.Wrap(err, "decoding entry count")
	}

	m.entries = nil
	m.init()
	for i := 0; i < n; i++ {
		pairLen, err := dec.DecodeArrayLen()
		if err != nil {
			return errors.Wrapf(err, "decoding entry %d", i)
		}
		if pairLen != 2 {
			return errors.Errorf("entry %d has %d fields, want 2", i, pairLen)
		}
		keyBytes, err := dec.DecodeBytes()
		if err != nil {
			return errors.Wrapf(err, "decoding key of entry %d", i)
		}
		key, err := ParseKey(keyBytes)
		if err != nil {
			return errors.Wrapf(err, "entry %d", i)
		}
		value, err := dec.DecodeBytes()
		if err != nil {
			return errors.Wrapf(err, "decoding value of entry %d", i)
		}
		m.Insert(key, NewValue(value))
	}
	return nil
}

// Encode writes the msgpack encoding of the map to w. This is the format of .ekv files.
func (m *KVMap) Encode(w io.Writer) error {
	return msgpack.NewEncoder(w).Encode(m)
}

// DecodeKVMap reads a map written by KVMap.Encode
func DecodeKVMap(r io.Reader) (*KVMap, error) {
	m := NewKVMap()
	if err := msgpack.NewDecoder(r).Decode(m); err != nil {
		return nil, err
	}
	return m, nil
}
