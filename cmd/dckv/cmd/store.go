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

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var exampleForStoreCmd = `
  dckv store CT1.dcm
  dckv store CT1.dcm --name ct-study-1
`

func newStoreCmd(e *env) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "store FILE",
		Short:   "decode a DICOM file and keep its key values in the local store",
		Example: exampleForStoreCmd,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				name = trimExt(filepath.Base(args[0]))
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			s, err := e.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			m, err := s.Import(name, f)
			if err != nil {
				return err
			}
			logrus.Infof("stored %d entries of %s as %s", m.Len(), args[0], name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "name of the stored instance, defaults to the file name without extension")
	return cmd
}
