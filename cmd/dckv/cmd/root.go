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

// Package cmd implements the dckv command line tool.
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/opendicom/sirius-pacs/internal/config"
	"github.com/opendicom/sirius-pacs/internal/logger"
	"github.com/opendicom/sirius-pacs/internal/store"
)

type rootOpts struct {
	cfgFile   string
	storePath string
	debug     bool
	hideTime  bool
	colorMode string
}

const (
	colorModeNever  = "never"
	colorModeAlways = "always"
)

var supportedColorModes = []string{
	colorModeNever,
	colorModeAlways,
}

var longRootCmdDescription = `dckv decodes DICOM files into DICOM Contextualized Key Values: a flat,
ordered list of key-value pairs whose keys encode the path of every element
through nested sequences. Decoded instances can be printed, exported to .ekv
files or kept in a local store.
`

// env is the state shared by subcommands once the root command has loaded the configuration
type env struct {
	conf *config.Config
}

func (e *env) openStore() (*store.Store, error) {
	return store.Open(e.conf.Store.Path, e.conf.Store.Timeout)
}

// NewRootCmd returns the dckv command with all subcommands
func NewRootCmd() *cobra.Command {
	opts := &rootOpts{}
	e := &env{}

	rootCmd := &cobra.Command{
		Use:           "dckv",
		Short:         "A tool to decode DICOM files into contextualized key values.",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger.Init(logger.LogOptions{
				Verbose:      conf.Log.Verbose,
				DisableColor: !conf.Log.Color,
				HideLogTime:  conf.Log.HideTime,
			})
			e.conf = conf
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file of dckv tool")
	rootCmd.PersistentFlags().StringVar(&opts.storePath, "store", "", "path of the instance store (overrides store.path)")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "turn on debug mode")
	rootCmd.PersistentFlags().BoolVar(&opts.hideTime, "hide-time", false, "hide the log time")
	rootCmd.PersistentFlags().StringVar(&opts.colorMode, "color", colorModeAlways, fmt.Sprintf("set the log color mode, the possible values can be %v", supportedColorModes))

	rootCmd.AddCommand(
		newDumpCmd(),
		newExportCmd(),
		newStoreCmd(e),
		newShowCmd(e),
		newListCmd(e),
		newRmCmd(e),
	)
	return rootCmd
}

// loadConfig applies the flags set on the command line on top of the loaded configuration
func loadConfig(cmd *cobra.Command, opts *rootOpts) (*config.Config, error) {
	conf, err := config.Load(opts.cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("store") {
		conf.Store.Path = opts.storePath
	}
	if flags.Changed("debug") {
		conf.Log.Verbose = opts.debug
	}
	if flags.Changed("hide-time") {
		conf.Log.HideTime = opts.hideTime
	}
	if flags.Changed("color") {
		switch opts.colorMode {
		case colorModeNever:
			conf.Log.Color = false
		case colorModeAlways:
			conf.Log.Color = true
		default:
			return nil, fmt.Errorf("invalid color mode %q, the possible values are %v", opts.colorMode, supportedColorModes)
		}
	}
	return conf, nil
}

// Execute runs the dckv command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Errorf("dckv: %v", err)
		os.Exit(1)
	}
}
