// Copyright © 2022 Alibaba Group Holding Ltd.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logger configures the process wide logrus logger used by the dckv tool.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type LogOptions struct {
	// Verbose sets the debug level and reports callers
	Verbose bool
	// DisableColor if true will disable outputting colors.
	DisableColor bool
	HideLogTime  bool
	// Output defaults to os.Stderr
	Output io.Writer
}

func Init(options LogOptions) {
	out := options.Output
	if out == nil {
		out = os.Stderr
	}
	logrus.SetOutput(out)

	logrus.SetLevel(logrus.InfoLevel)
	if options.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.SetReportCaller(options.Verbose)

	logrus.SetFormatter(&Formatter{
		DisableColor: options.DisableColor,
		HideLogTime:  options.HideLogTime,
		HideLogPath:  !options.Verbose,
	})
}
