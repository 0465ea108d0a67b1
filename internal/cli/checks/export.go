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

package checks

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/qualytics/qualytics-cli/internal/config"
	"github.com/qualytics/qualytics-cli/internal/configcode"
	"github.com/qualytics/qualytics-cli/internal/flag"
	"github.com/qualytics/qualytics-cli/internal/store"
	"github.com/qualytics/qualytics-cli/internal/usage"
)

type exportOpts struct {
	datastoreID int64
	outputDir   string
	tags        []string
	status      string

	store store.QualityCheckLister
	fs    afero.Fs
	out   io.Writer
}

func (opts *exportOpts) Run() error {
	var filters *store.CheckFilters
	if len(opts.tags) > 0 || opts.status != "" {
		filters = &store.CheckFilters{Tags: opts.tags, Status: opts.status}
	}
	checks, err := opts.store.QualityChecks(opts.datastoreID, filters)
	if err != nil {
		return err
	}
	exported, err := configcode.ExportChecks(opts.fs, opts.outputDir, checks)
	if err != nil {
		return err
	}
	fmt.Fprintf(opts.out, "exported %d checks to %s\n", exported, opts.outputDir)
	return nil
}

func exportBuilder() *cobra.Command {
	opts := &exportOpts{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the checks of a datastore as a YAML tree.",
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
	cmd.Flags().StringVarP(&opts.outputDir, flag.Output, flag.OutputShort, "qualytics-checks", usage.CheckExportOutput)
	cmd.Flags().StringSliceVar(&opts.tags, flag.Tags, nil, usage.Tags)
	cmd.Flags().StringVar(&opts.status, flag.Status, "", usage.CheckStatus)
	_ = cmd.MarkFlagRequired(flag.DatastoreID)
	return cmd
}
