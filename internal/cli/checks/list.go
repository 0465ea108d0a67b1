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

	"github.com/spf13/cobra"

	"github.com/qualytics/qualytics-cli/internal/api"
	"github.com/qualytics/qualytics-cli/internal/cli/output"
	"github.com/qualytics/qualytics-cli/internal/config"
	"github.com/qualytics/qualytics-cli/internal/flag"
	"github.com/qualytics/qualytics-cli/internal/store"
	"github.com/qualytics/qualytics-cli/internal/usage"
)

type listOpts struct {
	datastoreID  int64
	containerIDs []int64
	tags         []string
	status       string

	store store.QualityCheckLister
	out   io.Writer
}

func (opts *listOpts) Run() error {
	checks, err := opts.store.QualityChecks(opts.datastoreID, opts.filters())
	if err != nil {
		return err
	}

	tbl := output.NewTable(opts.out)
	tbl.AppendHeader([]any{"ID", "Rule", "Container", "Status", "Anomalies", "Description"})
	for i := range checks {
		c := &checks[i]
		tbl.AppendRow([]any{c.ID, c.RuleType, containerName(c), c.Status, c.AnomalyCount, c.Description})
	}
	tbl.Render()
	fmt.Fprintf(opts.out, "%d checks in datastore %d\n", len(checks), opts.datastoreID)
	return nil
}

func (opts *listOpts) filters() *store.CheckFilters {
	if len(opts.containerIDs) == 0 && len(opts.tags) == 0 && opts.status == "" {
		return nil
	}
	return &store.CheckFilters{
		Containers: opts.containerIDs,
		Tags:       opts.tags,
		Status:     opts.status,
	}
}

func containerName(c *api.QualityCheck) string {
	if c.Container == nil {
		return ""
	}
	return c.Container.Name
}

func listBuilder() *cobra.Command {
	opts := &listOpts{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quality checks of a datastore.",
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
	cmd.Flags().Int64SliceVar(&opts.containerIDs, flag.ContainerID, nil, usage.ContainerID)
	cmd.Flags().StringSliceVar(&opts.tags, flag.Tags, nil, usage.Tags)
	cmd.Flags().StringVar(&opts.status, flag.Status, "", usage.CheckStatus)
	_ = cmd.MarkFlagRequired(flag.DatastoreID)
	return cmd
}
