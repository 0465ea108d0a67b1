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

package configcmd

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/qualytics/qualytics-cli/internal/cli/output"
	"github.com/qualytics/qualytics-cli/internal/config"
	"github.com/qualytics/qualytics-cli/internal/configcode"
	"github.com/qualytics/qualytics-cli/internal/flag"
	"github.com/qualytics/qualytics-cli/internal/log"
	"github.com/qualytics/qualytics-cli/internal/store"
	"github.com/qualytics/qualytics-cli/internal/usage"
)

type exportOpts struct {
	datastoreIDs []int64
	outputDir    string
	include      []string
	store        store.ConfigExporter
	fs           afero.Fs
	out          io.Writer
}

func (opts *exportOpts) Run() error {
	include, err := configcode.ParseKinds(opts.include)
	if err != nil {
		return err
	}

	summary, err := configcode.Export(opts.store, opts.fs, configcode.ExportOptions{
		DatastoreIDs: opts.datastoreIDs,
		OutputDir:    opts.outputDir,
		Include:      include,
	})
	if err != nil {
		return err
	}

	t := output.NewTable(opts.out)
	t.AppendHeader(table.Row{"Kind", "Files written"})
	t.AppendRows([]table.Row{
		{"connections", summary.Connections},
		{"datastores", summary.Datastores},
		{"containers", summary.Containers},
		{"computed fields", summary.ComputedFields},
		{"checks", summary.Checks},
	})
	t.Render()

	for _, warning := range summary.Warnings {
		log.Warning("%s", warning)
	}
	return nil
}

func exportBuilder() *cobra.Command {
	opts := &exportOpts{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export datastore configuration into a directory tree.",
		Long: `Writes one file per resource under the output directory. Files are only
rewritten when their content changes, so repeated exports leave a clean
version-control diff. Secret connection fields are replaced with
environment variable placeholders.`,
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
	cmd.Flags().StringVarP(&opts.outputDir, flag.Output, flag.OutputShort, "qualytics-config", usage.ExportOutput)
	cmd.Flags().StringSliceVar(&opts.include, flag.Include, nil, usage.IncludeKinds)
	_ = cmd.MarkFlagRequired(flag.DatastoreID)
	return cmd
}
