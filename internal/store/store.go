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

// Package store persists decoded instances as .ekv encoded KVMaps in a bbolt file.
package store

import (
	"bytes"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.etcd.io/bbolt"

	"github.com/opendicom/sirius-pacs/dckv"
)

// ErrNotFound is returned when no instance is stored under a name
var ErrNotFound = errors.New("instance not found")

var instancesBucket = []byte("instances")

// Store is a bbolt file holding one .ekv encoded KVMap per instance name
type Store struct {
	bdb *bbolt.DB
}

// Open opens or creates the store at path, waiting at most timeout for the file lock
func Open(path string, timeout time.Duration) (*Store, error) {
	bdb, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: timeout})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open store %s", path)
	}

	err = bdb.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(instancesBucket)
		return err
	})
	if err != nil {
		bdb.Close()
		return nil, errors.Wrap(err, "failed to create instances bucket")
	}

	return &Store{bdb: bdb}, nil
}

func (s *Store) Close() error {
	return s.bdb.Close()
}

// Put stores m under name, replacing any instance stored under the same name
func (s *Store) Put(name string, m *dckv.KVMap) error {
	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		return errors.Wrapf(err, "failed to encode instance %s", name)
	}

	err := s.bdb.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(instancesBucket).Put([]byte(name), buf.Bytes())
	})
	if err != nil {
		return errors.Wrapf(err, "failed to store instance %s", name)
	}

	logrus.WithFields(logrus.Fields{"name": name, "entries": m.Len(), "bytes": buf.Len()}).Debug("stored instance")
	return nil
}

// Get returns the instance stored under name
func (s *Store) Get(name string) (*dckv.KVMap, error) {
	var m *dckv.KVMap
	err := s.bdb.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(instancesBucket).Get([]byte(name))
		if data == nil {
			return errors.Wrapf(ErrNotFound, "name %s", name)
		}
		// data is only valid during the transaction
		var err error
		m, err = dckv.DecodeKVMap(bytes.NewReader(data))
		return errors.Wrapf(err, "failed to decode instance %s", name)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes the instance stored under name
func (s *Store) Delete(name string) error {
	return s.bdb.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(instancesBucket)
		if b.Get([]byte(name)) == nil {
			return errors.Wrapf(ErrNotFound, "name %s", name)
		}
		return b.Delete([]byte(name))
	})
}

// List returns the names of the stored instances in lexical order
func (s *Store) List() ([]string, error) {
	var names []string
	err := s.bdb.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(instancesBucket).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

// Import decodes the DICOM file in r and stores it under name
func (s *Store) Import(name string, r io.ReadSeeker) (*dckv.KVMap, error) {
	m := dckv.NewKVMap()
	if err := dckv.Deserialize(r, m, dckv.NoFilter()); err != nil {
		return nil, errors.Wrapf(err, "failed to decode instance %s", name)
	}
	if err := s.Put(name, m); err != nil {
		return nil, err
	}
	return m, nil
}
