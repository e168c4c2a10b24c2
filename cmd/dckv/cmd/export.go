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
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/opendicom/sirius-pacs/dckv"
)

const ekvExt = ".ekv"

var exampleForExportCmd = `
  dckv export CT1.dcm
  dckv export CT1.dcm -o /tmp/ct1.ekv
`

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "export FILE",
		Short:   "decode a DICOM file and write its key values to an .ekv file",
		Example: exampleForExportCmd,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = trimExt(args[0]) + ekvExt
			}
			return exportFile(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "path of the .ekv file, defaults to FILE with the .ekv extension")
	return cmd
}

func exportFile(input, output string) error {
	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()

	m := dckv.NewKVMap()
	if err := dckv.Deserialize(in, m, dckv.NoFilter()); err != nil {
		return errors.Wrapf(err, "failed to decode %s", input)
	}

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := m.Encode(out); err != nil {
		out.Close()
		return errors.Wrapf(err, "failed to write %s", output)
	}
	if err := out.Close(); err != nil {
		return err
	}

	logrus.Infof("exported %d entries from %s to %s", m.Len(), input, output)
	return nil
}

// trimExt returns path without its extension
func trimExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}
