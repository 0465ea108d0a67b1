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

// Package history keeps a local append-only log of CLI invocations so
// failed imports and operations can be reconstructed after the fact.
// Nothing is ever sent anywhere; the log lives in the user cache dir and
// can be disabled with QUALYTICS_NO_HISTORY=1.
package history

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/qualytics/qualytics-cli/internal/log"
)

const (
	logFilename     = "history"
	dirPermissions  = 0o700
	filePermissions = 0o600

	// maxLogFileSize caps the log so a busy CI account cannot fill the
	// disk; once reached, recording stops silently.
	maxLogFileSize = 500_000
)

// Entry is one recorded invocation.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Command   string    `json:"command"`
	Flags     []string  `json:"flags,omitempty"`
	Duration  string    `json:"duration,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Recorder appends entries to the invocation log.
type Recorder struct {
	fs         afero.Fs
	logDir     string
	maxLogSize int64
	started    time.Time
	cmd        *cobra.Command
}

// Enabled reports whether recording is on. It defaults to on.
func Enabled() bool {
	val, exists := os.LookupEnv("QUALYTICS_NO_HISTORY")
	if !exists {
		return true
	}
	disabled, err := strconv.ParseBool(val)
	if err != nil {
		return true
	}
	return !disabled
}

var current *Recorder

// Start begins tracking the command. Call Finish with the command's
// error once it returns.
func Start(cmd *cobra.Command) {
	if !Enabled() {
		return
	}
	r, err := newRecorder(cmd)
	if err != nil {
		log.Debug("history: %v", err)
		return
	}
	current = r
}

// Finish records the started command. Recording failures are debug-level
// noise, never command failures.
func Finish(cmdErr error) {
	if current == nil {
		return
	}
	if err := current.record(cmdErr); err != nil {
		log.Debug("history: %v", err)
	}
	current = nil
}

func newRecorder(cmd *cobra.Command) (*Recorder, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}
	return &Recorder{
		fs:         afero.NewOsFs(),
		logDir:     filepath.Join(cacheDir, "qualytics"),
		maxLogSize: maxLogFileSize,
		started:    time.Now(),
		cmd:        cmd,
	}, nil
}

func (r *Recorder) record(cmdErr error) error {
	entry := Entry{
		Timestamp: r.started,
		Command:   strings.TrimSpace(r.cmd.CommandPath()),
		Flags:     setFlags(r.cmd.Flags()),
		Duration:  time.Since(r.started).Round(time.Millisecond).String(),
	}
	if cmdErr != nil {
		entry.Error = cmdErr.Error()
	}

	file, err := r.openLogFile()
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = file.Write(data)
	return err
}

// Entries reads the whole log, oldest first.
func (r *Recorder) Entries() ([]Entry, error) {
	filename := filepath.Join(r.logDir, logFilename)
	exists, err := afero.Exists(r.fs, filename)
	if err != nil || !exists {
		return nil, err
	}

	file, err := r.fs.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []Entry
	decoder := json.NewDecoder(file)
	for decoder.More() {
		var entry Entry
		if err := decoder.Decode(&entry); err != nil {
			return entries, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *Recorder) openLogFile() (afero.File, error) {
	if err := r.fs.MkdirAll(r.logDir, dirPermissions); err != nil {
		return nil, err
	}
	filename := filepath.Join(r.logDir, logFilename)
	if info, err := r.fs.Stat(filename); err == nil && info.Size() > r.maxLogSize {
		return nil, errors.New("history log file too large")
	}
	return r.fs.OpenFile(filename, os.O_APPEND|os.O_WRONLY|os.O_CREATE, filePermissions)
}

func setFlags(flags *pflag.FlagSet) []string {
	var set []string
	flags.Visit(func(f *pflag.Flag) {
		set = append(set, f.Name)
	})
	return set
}
