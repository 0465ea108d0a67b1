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

type importOpts struct {
	inputDir string
	include  []string
	dryRun   bool
	store    store.ConfigImporter
	fs       afero.Fs
	out      io.Writer
}

func (opts *importOpts) Run() error {
	include, err := configcode.ParseKinds(opts.include)
	if err != nil {
		return err
	}

	report, err := configcode.Import(opts.store, opts.fs, configcode.ImportOptions{
		InputDir: opts.inputDir,
		Include:  include,
		DryRun:   opts.dryRun,
	})
	if err != nil {
		return err
	}

	renderImportReport(opts.out, report, opts.dryRun)
	return nil
}

// renderImportReport prints the per-kind classification table plus every
// per-item failure. Per-item failures are reported, never fatal; only
// setup problems make the command exit non-zero.
func renderImportReport(w io.Writer, report *configcode.ImportReport, dryRun bool) {
	created, updated := "Created", "Updated"
	if dryRun {
		created, updated = "Would create", "Would update"
	}

	t := output.NewTable(w)
	t.AppendHeader(table.Row{"Kind", created, updated, "Failed"})
	for _, row := range []struct {
		kind   string
		report configcode.KindReport
	}{
		{"connections", report.Connections},
		{"datastores", report.Datastores},
		{"containers", report.Containers},
		{"computed fields", report.ComputedFields},
		{"checks", report.Checks},
	} {
		t.AppendRow(table.Row{row.kind, row.report.Created, row.report.Updated, row.report.Failed})
	}
	t.Render()

	for _, kind := range []configcode.KindReport{
		report.Connections, report.Datastores, report.Containers,
		report.ComputedFields, report.Checks,
	} {
		for _, msg := range kind.Errors {
			log.Warning("%s", msg)
		}
	}
	for _, msg := range report.Warnings {
		log.Warning("%s", msg)
	}
}

func importBuilder() *cobra.Command {
	opts := &importOpts{}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Apply an exported configuration tree to the instance.",
		Long: `Upserts resources in dependency order: connections, then datastores, then
computed containers, then computed fields, then quality checks. Resources
are matched by name (checks by their stable UID), so re-importing an
unchanged tree is a no-op. Secret placeholders are resolved from
environment variables before anything is sent.`,
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
	cmd.Flags().StringVarP(&opts.inputDir, flag.Input, flag.InputShort, "qualytics-config", usage.ImportInput)
	cmd.Flags().StringSliceVar(&opts.include, flag.Include, nil, usage.IncludeKinds)
	cmd.Flags().BoolVar(&opts.dryRun, flag.DryRun, false, usage.DryRun)
	return cmd
}
