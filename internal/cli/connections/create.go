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
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/qualytics/qualytics-cli/internal/api"
	"github.com/qualytics/qualytics-cli/internal/config"
	"github.com/qualytics/qualytics-cli/internal/configcode"
	"github.com/qualytics/qualytics-cli/internal/flag"
	"github.com/qualytics/qualytics-cli/internal/store"
	"github.com/qualytics/qualytics-cli/internal/usage"
)

type createOpts struct {
	file string

	store store.ConnectionCreator
	fs    afero.Fs
	out   io.Writer
}

func (opts *createOpts) Run() error {
	conn, err := loadConnection(opts.fs, opts.file)
	if err != nil {
		return err
	}
	created, err := opts.store.CreateConnection(conn)
	if err != nil {
		return err
	}
	fmt.Fprintf(opts.out, "created connection %d (%s)\n", created.ID, created.Name)
	return nil
}

// loadConnection reads a connection definition and expands ${ENV_VAR}
// placeholders in its secret fields. An unset variable is an error.
func loadConnection(fs afero.Fs, path string) (*api.Connection, error) {
	var conn api.Connection
	if err := configcode.ReadYAML(fs, path, &conn); err != nil {
		return nil, err
	}
	if conn.Name == "" {
		return nil, errors.New("connection definition has no name")
	}
	for _, target := range []*string{&conn.Password, &conn.SecretKey, &conn.AccessKey, &conn.CredentialsPayload, &conn.URI} {
		if *target == "" {
			continue
		}
		resolved, err := configcode.ResolveEnvVars(*target)
		if err != nil {
			return nil, err
		}
		*target = resolved
	}
	return &conn, nil
}

func createBuilder() *cobra.Command {
	opts := &createOpts{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a connection from a YAML definition.",
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
	cmd.Flags().StringVarP(&opts.file, flag.File, flag.FileShort, "", usage.File)
	_ = cmd.MarkFlagRequired(flag.File)
	_ = cmd.MarkFlagFilename(flag.File, "yaml", "yml")
	return cmd
}
