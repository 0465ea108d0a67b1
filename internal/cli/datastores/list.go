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
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/qualytics/qualytics-cli/internal/api"
	"github.com/qualytics/qualytics-cli/internal/cli/output"
	"github.com/qualytics/qualytics-cli/internal/config"
	"github.com/qualytics/qualytics-cli/internal/flag"
	"github.com/qualytics/qualytics-cli/internal/store"
	"github.com/qualytics/qualytics-cli/internal/usage"
)

type listOpts struct {
	page int
	size int

	store store.DatastoreLister
	out   io.Writer
}

func (opts *listOpts) Run() error {
	result, err := opts.store.Datastores(opts.page, opts.size)
	if err != nil {
		return err
	}

	tbl := output.NewTable(opts.out)
	tbl.AppendHeader([]any{"ID", "Name", "Type", "Connection", "Enrichment"})
	for i := range result.Items {
		ds := &result.Items[i]
		tbl.AppendRow([]any{ds.ID, ds.Name, ds.Type, connectionName(ds), enrichmentName(ds)})
	}
	tbl.Render()
	fmt.Fprintf(opts.out, "page %d of %d datastores\n", result.Page, result.Total)
	return nil
}

func connectionName(ds *api.Datastore) string {
	if ds.Connection == nil {
		return ""
	}
	return ds.Connection.Name
}

func enrichmentName(ds *api.Datastore) string {
	if ds.EnrichmentDatastore == nil {
		return ""
	}
	return ds.EnrichmentDatastore.Name
}

func listBuilder() *cobra.Command {
	opts := &listOpts{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List datastores.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := store.NewFromProfile(cmd.Context(), config.Default())
			if err != nil {
				return err
			}
			opts.store = st
			opts.out = cmd.OutOrStdout()
			return opts.Run()
		},
	}
	cmd.Flags().IntVar(&opts.page, flag.Page, 1, usage.Page)
	cmd.Flags().IntVar(&opts.size, flag.Size, 100, usage.Size)
	return cmd
}
