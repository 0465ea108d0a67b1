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

package containers

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
	datastoreID int64
	file        string

	store store.ContainerCreator
	fs    afero.Fs
	out   io.Writer
}

func (opts *createOpts) Run() error {
	container, err := loadContainer(opts.fs, opts.file)
	if err != nil {
		return err
	}
	container.DatastoreID = opts.datastoreID
	created, err := opts.store.CreateContainer(container)
	if err != nil {
		return err
	}
	fmt.Fprintf(opts.out, "created %s %d (%s)\n", created.ContainerType, created.ID, created.Name)
	return nil
}

func loadContainer(fs afero.Fs, path string) (*api.Container, error) {
	var container api.Container
	if err := configcode.ReadYAML(fs, path, &container); err != nil {
		return nil, err
	}
	if container.Name == "" {
		return nil, errors.New("container definition has no name")
	}
	if !api.IsComputedContainer(container.ContainerType) {
		return nil, fmt.Errorf("container type %q is managed by the catalog operation, only computed containers can be written", container.ContainerType)
	}
	return &container, nil
}

func createBuilder() *cobra.Command {
	opts := &createOpts{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a computed container from a YAML definition.",
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
	cmd.Flags().Int64Var(&opts.datastoreID, flag.DatastoreID, 0, usage.DatastoreID)
	cmd.Flags().StringVarP(&opts.file, flag.File, flag.FileShort, "", usage.File)
	_ = cmd.MarkFlagRequired(flag.DatastoreID)
	_ = cmd.MarkFlagRequired(flag.File)
	_ = cmd.MarkFlagFilename(flag.File, "yaml", "yml")
	return cmd
}
