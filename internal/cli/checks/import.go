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
	"github.com/qualytics/qualytics-cli/internal/log"
	"github.com/qualytics/qualytics-cli/internal/store"
	"github.com/qualytics/qualytics-cli/internal/usage"
)

type importOpts struct {
	datastoreIDs []int64
	inputDir     string
	dryRun       bool

	store store.ConfigImporter
	fs    afero.Fs
	out   io.Writer
}

// Run upserts the check tree into every target datastore. Containers
// resolve by name per datastore, so the same tree can seed several
// environments in one call.
func (opts *importOpts) Run() error {
	checks, err := configcode.LoadChecks(opts.fs, opts.inputDir)
	if err != nil {
		return err
	}
	if len(checks) == 0 {
		fmt.Fprintf(opts.out, "no check files found under %s\n", opts.inputDir)
		return nil
	}

	for _, datastoreID := range opts.datastoreIDs {
		report := configcode.ImportChecks(opts.store, datastoreID, checks, opts.dryRun)
		created, updated := "created", "updated"
		if opts.dryRun {
			created, updated = "would create", "would update"
		}
		fmt.Fprintf(opts.out, "datastore %d: %s %d, %s %d, failed %d\n",
			datastoreID, created, report.Created, updated, report.Updated, report.Failed)
		for _, item := range report.Errors {
			log.Warning("%s", item)
		}
	}
	return nil
}

func importBuilder() *cobra.Command {
	opts := &importOpts{}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a check tree into one or more datastores.",
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
	cmd.Flags().Int64SliceVar(&opts.datastoreIDs, flag.DatastoreID, nil, usage.DatastoreID)
	cmd.Flags().StringVarP(&opts.inputDir, flag.Input, flag.InputShort, "qualytics-checks", usage.CheckImportInput)
	cmd.Flags().BoolVar(&opts.dryRun, flag.DryRun, false, usage.DryRun)
	_ = cmd.MarkFlagRequired(flag.DatastoreID)
	return cmd
}
