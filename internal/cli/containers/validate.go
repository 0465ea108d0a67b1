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

type validateOpts struct {
	datastoreID int64
	file        string

	store store.ContainerValidator
	fs    afero.Fs
	out   io.Writer
}

// Run asks the platform to validate a computed container definition
// against its datastore without creating anything.
func (opts *validateOpts) Run() error {
	container, err := loadContainer(opts.fs, opts.file)
	if err != nil {
		return err
	}
	container.DatastoreID = opts.datastoreID
	if err := opts.store.ValidateContainer(container); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	fmt.Fprintf(opts.out, "%s (%s) is valid\n", container.Name, container.ContainerType)
	return nil
}

func validateBuilder() *cobra.Command {
	opts := &validateOpts{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a computed container definition without creating it.",
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
