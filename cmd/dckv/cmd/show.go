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

package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/opendicom/sirius-pacs/dckv"
)

var exampleForShowCmd = `
  dckv show ct1
  dckv show ct1 --tag 0010,0010
`

func newShowCmd(e *env) *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:     "show NAME",
		Short:   "print the key values of a stored instance",
		Example: exampleForShowCmd,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			match := func(dckv.Key) bool { return true }
			if tag != "" {
				group, element, err := parseTag(tag)
				if err != nil {
					return err
				}
				match = func(key dckv.Key) bool {
					return key.Group() == group && key.Element() == element
				}
			}

			s, err := e.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			m, err := s.Get(args[0])
			if err != nil {
				return err
			}
			writeEntries(cmd.OutOrStdout(), m, match)
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "only show the elements with this tag, as gggg,eeee")
	return cmd
}

// parseTag parses a "gggg,eeee" hexadecimal tag
func parseTag(s string) (uint16, uint16, error) {
	parts := strings.Split(strings.Trim(s, "()"), ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid tag %q, expected gggg,eeee", s)
	}
	group, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 16, 16)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid group in tag %q", s)
	}
	element, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 16, 16)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid element in tag %q", s)
	}
	return uint16(group), uint16(element), nil
}

func writeEntries(w io.Writer, m *dckv.KVMap, match func(dckv.Key) bool) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"tag", "vr", "level", "kind", "value"})
	table.SetAutoWrapText(false)

	for key, value := range m.All() {
		if !match(key) {
			continue
		}
		vr := dckv.NoVR
		vrText := ""
		switch key.Kind() {
		case dckv.KindElement:
			vr = key.Innermost().VR
			vrText = vr.String()
		case dckv.KindSequence:
			vrText = dckv.SQ.String()
		}
		table.Append([]string{
			fmt.Sprintf("(%04x,%04x)", key.Group(), key.Element()),
			vrText,
			strconv.Itoa(key.Level()),
			key.Kind().String(),
			dckv.NewValue(value).Text(vr),
		})
	}
	table.Render()
}
