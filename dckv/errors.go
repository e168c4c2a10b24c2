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
	"fmt"

	"github.com/pkg/errors"
)

// Errors returned by Deserialize. Any error aborts the decode; entries already handed to the
// Deserializer must not be treated as a complete data set.
var (
	// ErrInvalidVR is returned when a VR code cannot be read as text
	ErrInvalidVR = errors.New("invalid VR")

	// ErrInvalidSequenceTag is returned when a sequence holds something other than an item or a
	// sequence delimitation item
	ErrInvalidSequenceTag = errors.New("invalid SQ tag")

	// ErrInvalidItemLength is returned when an item declares a length greater than the length
	// of its sequence
	ErrInvalidItemLength = errors.New("invalid SQ item length")

	// ErrDepthExceeded is returned when sequences nest deeper than MaxDepth levels
	ErrDepthExceeded = errors.New("sequence nesting exceeds maximum depth")

	// ErrTooManyItems is returned when a sequence holds more items than a key slot can number
	ErrTooManyItems = errors.New("sequence item count exceeds 65535")
)

// UnsupportedVRError is returned when an element carries a VR outside every known category
type UnsupportedVRError struct {
	VR string
}

func (e *UnsupportedVRError) Error() string {
	return fmt.Sprintf("unsupported VR [%s]", e.VR)
}

func unsupportedVR(vr VR) error {
	text, err := vr.Text()
	if err != nil {
		return err
	}
	return &UnsupportedVRError{text}
}

// ErrMalformedKey is returned by ParseKey for byte strings that are not a serialized Key
var ErrMalformedKey = errors.New("malformed key")
