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
	"iter"

	"github.com/elliotchance/orderedmap/v3"
)

type kvEntry struct {
	key   Key
	value []byte
}

// KVMap is a Deserializer collecting the value field of every decoded unit under its serialized
// Key, in the order the units were decoded. Inserting an existing key replaces its value and
// keeps its position. The zero value is an empty map ready to use.
type KVMap struct {
	entries *orderedmap.OrderedMap[string, kvEntry]
}

// NewKVMap returns an empty KVMap
func NewKVMap() *KVMap {
	return &KVMap{orderedmap.NewOrderedMap[string, kvEntry]()}
}

func (m *KVMap) init() {
	if m.entries == nil {
		m.entries = orderedmap.NewOrderedMap[string, kvEntry]()
	}
}

// Get returns the value stored under key
func (m *KVMap) Get(key Key) ([]byte, bool) {
	if m.entries == nil {
		return nil, false
	}
	e, ok := m.entries.Get(string(key.Bytes()))
	return e.value, ok
}

// GetKeyValue returns the serialized key and the value stored under key
func (m *KVMap) GetKeyValue(key Key) ([]byte, []byte, bool) {
	v, ok := m.Get(key)
	if !ok {
		return nil, nil, false
	}
	return key.Bytes(), v, true
}

// Remove deletes key from the map, returning its value. The order of the remaining entries is
// preserved.
func (m *KVMap) Remove(key Key) ([]byte, bool) {
	v, ok := m.Get(key)
	if ok {
		m.entries.Delete(string(key.Bytes()))
	}
	return v, ok
}

// Insert stores value under key
func (m *KVMap) Insert(key Key, value Value) {
	m.init()
	m.entries.Set(string(key.Bytes()), kvEntry{key, value.Bytes()})
}

// Len returns the number of entries
func (m *KVMap) Len() int {
	if m.entries == nil {
		return 0
	}
	return m.entries.Len()
}

// All iterates over the entries in insertion order
func (m *KVMap) All() iter.Seq2[Key, []byte] {
	return func(yield func(Key, []byte) bool) {
		if m.entries == nil {
			return
		}
		for _, e := range m.entries.AllFromFront() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Equal is true if and only if both maps hold the same entries in the same order
func (m *KVMap) Equal(other *KVMap) bool {
	if m.Len() != other.Len() {
		return false
	}
	next, stop := iter.Pull2(other.All())
	defer stop()
	for k, v := range m.All() {
		otherKey, ov, more := next()
		if !more || k != otherKey || !bytes.Equal(v, ov) {
			return false
		}
	}
	return true
}

// Append reads the value field from r and inserts it under key
func (m *KVMap) Append(r io.ReadSeeker, key Key, length uint32, vr VR) error {
	value, err := ReadValue(r, length)
	if err != nil {
		return err
	}
	m.Insert(key, value)
	return nil
}
