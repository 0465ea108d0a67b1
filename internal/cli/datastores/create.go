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

package datastores

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

	store store.DatastoreCreator
	fs    afero.Fs
	out   io.Writer
}

func (opts *createOpts) Run() error {
	ds, err := loadDatastore(opts.fs, opts.file)
	if err != nil {
		return err
	}
	created, err := opts.store.CreateDatastore(ds)
	if err != nil {
		return err
	}
	fmt.Fprintf(opts.out, "created datastore %d (%s)\n", created.ID, created.Name)
	return nil
}

func loadDatastore(fs afero.Fs, path string) (*api.Datastore, error) {
	var ds api.Datastore
	if err := configcode.ReadYAML(fs, path, &ds); err != nil {
		return nil, err
	}
	if ds.Name == "" {
		return nil, errors.New("datastore definition has no name")
	}
	if ds.ConnectionID == 0 {
		return nil, errors.New("datastore definition has no connection_id")
	}
	return &ds, nil
}

func createBuilder() *cobra.Command {
	opts := &createOpts{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a datastore from a YAML definition.",
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
