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

package connections

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/qualytics/qualytics-cli/internal/api"
	"github.com/qualytics/qualytics-cli/internal/config"
	"github.com/qualytics/qualytics-cli/internal/flag"
	"github.com/qualytics/qualytics-cli/internal/store"
	"github.com/qualytics/qualytics-cli/internal/usage"
)

type testOpts struct {
	id   int64
	file string

	store store.ConnectionTester
	fs    afero.Fs
	out   io.Writer
}

// Run probes connectivity of an existing connection, optionally with
// replacement credentials from a definition file. The replacements are
// not persisted.
func (opts *testOpts) Run() error {
	var conn *api.Connection
	if opts.file != "" {
		loaded, err := loadConnection(opts.fs, opts.file)
		if err != nil {
			return err
		}
		conn = loaded
	}
	if err := opts.store.TestConnection(opts.id, conn); err != nil {
		return fmt.Errorf("connection test failed: %w", err)
	}
	fmt.Fprintln(opts.out, "connection ok")
	return nil
}

func testBuilder() *cobra.Command {
	opts := &testOpts{}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test connectivity of a connection.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := store.NewFromProfile(cmd.Context(), config.Default())
			if err != nil {
				return err
			}
			opts.store = st
			opts.fs = afero.NewOsFs()
			opts.out = cmd.OutOrStdout()
			return opts.Run()
		},
	}
	cmd.Flags().Int64Var(&opts.id, flag.ID, 0, usage.ID)
	cmd.Flags().StringVarP(&opts.file, flag.File, flag.FileShort, "", usage.File)
	_ = cmd.MarkFlagRequired(flag.ID)
	return cmd
}
