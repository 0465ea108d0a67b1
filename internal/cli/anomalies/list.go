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

package anomalies

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
	datastoreID int64
	containerID int64
	status      string
	tags        []string
	page        int
	size        int

	store store.AnomalyLister
	out   io.Writer
}

func (opts *listOpts) Run() error {
	filters := &store.AnomalyFilters{
		Datastore: opts.datastoreID,
		Container: opts.containerID,
		Status:    opts.status,
		Tags:      opts.tags,
	}
	result, err := opts.store.Anomalies(filters, opts.page, opts.size)
	if err != nil {
		return err
	}

	tbl := output.NewTable(opts.out)
	tbl.AppendHeader([]any{"ID", "Type", "Status", "Container", "Description"})
	for i := range result.Items {
		a := &result.Items[i]
		tbl.AppendRow([]any{a.ID, a.Type, a.Status, anomalyContainer(a), a.Description})
	}
	tbl.Render()
	fmt.Fprintf(opts.out, "page %d of %d anomalies\n", result.Page, result.Total)
	return nil
}

func anomalyContainer(a *api.Anomaly) string {
	if a.Container == nil {
		return ""
	}
	return a.Container.Name
}

func listBuilder() *cobra.Command {
	opts := &listOpts{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List anomalies of a datastore.",
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
	cmd.Flags().Int64Var(&opts.datastoreID, flag.DatastoreID, 0, usage.DatastoreID)
	cmd.Flags().Int64Var(&opts.containerID, flag.ContainerID, 0, usage.ContainerID)
	cmd.Flags().StringVar(&opts.status, flag.Status, "", usage.AnomalyStatus)
	cmd.Flags().StringSliceVar(&opts.tags, flag.Tags, nil, usage.Tags)
	cmd.Flags().IntVar(&opts.page, flag.Page, 1, usage.Page)
	cmd.Flags().IntVar(&opts.size, flag.Size, 100, usage.Size)
	_ = cmd.MarkFlagRequired(flag.DatastoreID)
	return cmd
}
