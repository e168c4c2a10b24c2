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
	"reflect"
	"testing"
)

func kvKeys(m *KVMap) []Key {
	var keys []Key
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

func TestKVMap_Insert(t *testing.T) {
	a := mustKey(t, Block{Tag: 0x00100010, VR: PN})
	b := mustKey(t, Block{Tag: 0x00100020, VR: LO})
	c := mustKey(t, Block{Tag: 0x00100030, VR: DA})

	m := NewKVMap()
	m.Insert(a, NewValue([]byte("DOE^JOHN")))
	m.Insert(b, NewValue([]byte("12345678")))
	m.Insert(a, NewValue([]byte("DOE^JOHN")))

	if m.Len() != 2 {
		t.Fatalf("Len() => %v, want 2", m.Len())
	}

	m.Insert(c, NewValue([]byte("19700101")))
	m.Insert(a, NewValue([]byte("ROE^JANE")))

	if want := []Key{a, b, c}; !reflect.DeepEqual(kvKeys(m), want) {
		t.Fatalf("keys => %v, want %v", kvKeys(m), want)
	}
	if v, ok := m.Get(a); !ok || string(v) != "ROE^JANE" {
		t.Fatalf("Get(%v) => (%q, %v), want (%q, true)", a, v, ok, "ROE^JANE")
	}

	keyBytes, v, ok := m.GetKeyValue(b)
	if !ok || !bytes.Equal(keyBytes, b.Bytes()) || string(v) != "12345678" {
		t.Fatalf("GetKeyValue(%v) => (%X, %q, %v)", b, keyBytes, v, ok)
	}
}

func TestKVMap_Remove(t *testing.T) {
	a := mustKey(t, Block{Tag: 0x00100010, VR: PN})
	b := mustKey(t, Block{Tag: 0x00100020, VR: LO})
	c := mustKey(t, Block{Tag: 0x00100030, VR: DA})

	m := NewKVMap()
	for _, k := range []Key{a, b, c} {
		m.Insert(k, NewValue(k.Bytes()))
	}

	v, ok := m.Remove(b)
	if !ok || !bytes.Equal(v, b.Bytes()) {
		t.Fatalf("Remove(%v) => (%X, %v)", b, v, ok)
	}
	if _, ok := m.Remove(b); ok {
		t.Fatalf("Remove(%v) twice => found", b)
	}
	if want := []Key{a, c}; !reflect.DeepEqual(kvKeys(m), want) {
		t.Fatalf("keys => %v, want %v", kvKeys(m), want)
	}
	if _, ok := m.Get(b); ok {
		t.Fatalf("Get(%v) after Remove => found", b)
	}
}

func TestKVMap_ZeroValue(t *testing.T) {
	var m KVMap
	key := mustKey(t, Block{Tag: 0x00100010, VR: PN})

	if _, ok := m.Get(key); ok || m.Len() != 0 {
		t.Fatalf("zero KVMap is not empty")
	}
	if _, ok := m.Remove(key); ok {
		t.Fatalf("Remove(%v) on zero KVMap => found", key)
	}
	m.Insert(key, NewValue([]byte("DOE^JOHN")))
	if m.Len() != 1 {
		t.Fatalf("Len() => %v, want 1", m.Len())
	}
}

func TestKVMap_Equal(t *testing.T) {
	a := mustKey(t, Block{Tag: 0x00100010, VR: PN})
	b := mustKey(t, Block{Tag: 0x00100020, VR: LO})

	m1, m2, m3 := NewKVMap(), NewKVMap(), NewKVMap()
	m1.Insert(a, NewValue([]byte("1")))
	m1.Insert(b, NewValue([]byte("2")))
	m2.Insert(a, NewValue([]byte("1")))
	m2.Insert(b, NewValue([]byte("2")))
	m3.Insert(b, NewValue([]byte("2")))
	m3.Insert(a, NewValue([]byte("1")))

	if !m1.Equal(m2) {
		t.Fatalf("maps with the same entries are not equal")
	}
	if m1.Equal(m3) {
		t.Fatalf("maps with different order are equal")
	}
}
