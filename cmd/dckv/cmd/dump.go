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
	"bufio"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/opendicom/sirius-pacs/dckv"
)

var exampleForDumpCmd = `
  dckv dump CT1.dcm
  dckv dump --debug CT1.dcm
`

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dump FILE",
		Short:   "print every unit decoded from a DICOM file",
		Example: exampleForDumpCmd,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			w := bufio.NewWriter(cmd.OutOrStdout())
			start := time.Now()
			if err := dckv.Deserialize(f, dckv.NewDumper(w), dckv.NoFilter()); err != nil {
				w.Flush()
				return errors.Wrapf(err, "failed to decode %s", args[0])
			}
			logrus.Debugf("decoded %s in %s", args[0], time.Since(start))
			return w.Flush()
		},
	}
}
