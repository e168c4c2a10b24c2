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

package logger

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	colorRed    = 31
	colorYellow = 33
	colorBlue   = 36
	colorGray   = 37
)

const defaultTimestampFormat = "2006-01-02 15:04:05"

func getColorByLevel(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return colorGray
	case logrus.WarnLevel:
		return colorYellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return colorRed
	default:
		return colorBlue
	}
}

// Formatter writes one console line per entry:
//
//	2006-01-02 15:04:05 [LEVEL] [file.go:42] message key=value ...
type Formatter struct {
	// DisableColor disables colors
	DisableColor bool
	// HideLogTime drops the timestamp
	HideLogTime bool
	// HideLogPath drops the caller even when the logger reports it
	HideLogPath     bool
	TimestampFormat string
}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	timestampFormat := f.TimestampFormat
	if timestampFormat == "" {
		timestampFormat = defaultTimestampFormat
	}

	if !f.HideLogTime {
		b.WriteString(entry.Time.Format(timestampFormat))
	}

	levelStr := strings.ToUpper(entry.Level.String())
	newLog := fmt.Sprintf(" [%s] %s%s", levelStr, entry.Message, formatFields(entry.Data))
	if !f.HideLogPath && entry.HasCaller() {
		fName := filepath.Base(entry.Caller.File)
		newLog = fmt.Sprintf(" [%s] [%s:%d] %s%s", levelStr, fName, entry.Caller.Line, entry.Message, formatFields(entry.Data))
	}

	if !f.DisableColor {
		fmt.Fprintf(b, "\033[%dm%s\033[0m", getColorByLevel(entry.Level), newLog)
	} else {
		b.WriteString(newLog)
	}

	b.WriteByte('\n')

	return b.Bytes(), nil
}

// formatFields renders entry fields sorted by key
func formatFields(data logrus.Fields) string {
	if len(data) == 0 {
		return ""
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, data[k])
	}
	return sb.String()
}
