// Copyright 2025 Qualytics Inc
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

// Package log provides the CLI's leveled logger. Command output goes to
// stdout; diagnostics go through this package to stderr so they can be
// redirected independently.
package log

import (
	"fmt"
	"io"
	"os"
)

type Level int

const (
	NoneLevel Level = iota
	ErrorLevel
	WarningLevel
	DebugLevel
)

type Logger struct {
	w     io.Writer
	level Level
}

func New(w io.Writer, level Level) *Logger {
	return &Logger{w: w, level: level}
}

var std = New(os.Stderr, WarningLevel)

func Default() *Logger { return std }

func SetLevel(level Level) { std.SetLevel(level) }
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func SetWriter(w io.Writer) { std.w = w }

// Writer returns the underlying writer, for handing to libraries that
// want an io.Writer directly.
func Writer() io.Writer { return std.w }

func Debug(format string, a ...any) { std.Debug(format, a...) }
func (l *Logger) Debug(format string, a ...any) {
	l.logf(DebugLevel, format, a...)
}

func Warning(format string, a ...any) { std.Warning(format, a...) }
func (l *Logger) Warning(format string, a ...any) {
	l.logf(WarningLevel, format, a...)
}

func Error(format string, a ...any) { std.Error(format, a...) }
func (l *Logger) Error(format string, a ...any) {
	l.logf(ErrorLevel, format, a...)
}

func (l *Logger) logf(level Level, format string, a ...any) {
	if level > l.level {
		return
	}
	fmt.Fprintf(l.w, format+"\n", a...)
}
