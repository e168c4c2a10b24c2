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
	"io"

	"golang.org/x/text/encoding"
)

// Dumper is a Deserializer writing one line per decoded unit to an io.Writer:
//
//	(gggg,eeee) VR level text
//
// Text values are written as raw bytes until a top level Specific Character Set element names a
// known repertoire; from then on SH, LO, ST, LT and PN values are decoded with it.
type Dumper struct {
	w        io.Writer
	encoding encoding.Encoding
}

// NewDumper returns a Dumper writing to w
func NewDumper(w io.Writer) *Dumper {
	return &Dumper{w: w}
}

// Append reads the value field from r and writes the line describing the unit
func (d *Dumper) Append(r io.ReadSeeker, key Key, length uint32, vr VR) error {
	value, err := ReadValue(r, length)
	if err != nil {
		return err
	}

	if key.Level() == 0 && key.Innermost().Tag == SpecificCharacterSetTag && key.Kind() == KindElement {
		// unknown terms keep the raw rendering
		d.encoding, _ = lookupEncoding(characterSetTerm(value.Text(vr)))
	}

	vrText := vr.String()
	if vr == NoVR {
		vrText, _ = key.VR()
	}

	_, err = fmt.Fprintf(d.w, "(%04x,%04x) %s %d %s\n",
		key.Group(), key.Element(), vrText, key.Level(), d.text(value, vr))
	return err
}

func (d *Dumper) text(value Value, vr VR) string {
	if d.encoding == nil {
		return value.Text(vr)
	}
	switch vr {
	case SH, LO, ST, LT, PN:
		decoded, err := d.encoding.NewDecoder().Bytes(value.Bytes())
		if err == nil {
			return string(decoded)
		}
	}
	return value.Text(vr)
}
