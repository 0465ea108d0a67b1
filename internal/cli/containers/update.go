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
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/qualytics/qualytics-cli/internal/config"
	"github.com/qualytics/qualytics-cli/internal/flag"
	"github.com/qualytics/qualytics-cli/internal/store"
	"github.com/qualytics/qualytics-cli/internal/usage"
)

type updateOpts struct {
	id              int64
	file            string
	forceDropFields bool

	store store.ContainerUpdater
	fs    afero.Fs
	out   io.Writer
}

func (opts *updateOpts) Run() error {
	container, err := loadContainer(opts.fs, opts.file)
	if err != nil {
		return err
	}
	updated, err := opts.store.UpdateContainer(opts.id, container, opts.forceDropFields)
	if err != nil {
		return err
	}
	fmt.Fprintf(opts.out, "updated %s %d (%s)\n", updated.ContainerType, updated.ID, updated.Name)
	return nil
}

func updateBuilder() *cobra.Command {
	opts := &updateOpts{}
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a computed container from a YAML definition.",
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
	cmd.Flags().BoolVar(&opts.forceDropFields, flag.ForceDropFields, false, usage.ForceDropFields)
	_ = cmd.MarkFlagRequired(flag.ID)
	_ = cmd.MarkFlagRequired(flag.File)
	_ = cmd.MarkFlagFilename(flag.File, "yaml", "yml")
	return cmd
}
