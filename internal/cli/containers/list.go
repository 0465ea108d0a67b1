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
	"strings"

	"github.com/spf13/cobra"

	"github.com/qualytics/qualytics-cli/internal/cli/output"
	"github.com/qualytics/qualytics-cli/internal/config"
	"github.com/qualytics/qualytics-cli/internal/flag"
	"github.com/qualytics/qualytics-cli/internal/store"
	"github.com/qualytics/qualytics-cli/internal/usage"
)

type listOpts struct {
	datastoreID int64

	store store.ContainerLister
	out   io.Writer
}

func (opts *listOpts) Run() error {
	containers, err := opts.store.ContainersByDatastore(opts.datastoreID)
	if err != nil {
		return err
	}

	tbl := output.NewTable(opts.out)
	tbl.AppendHeader([]any{"ID", "Name", "Type", "Tags"})
	for i := range containers {
		c := &containers[i]
		tbl.AppendRow([]any{c.ID, c.Name, c.ContainerType, strings.Join(c.Tags, ",")})
	}
	tbl.Render()
	fmt.Fprintf(opts.out, "%d containers in datastore %d\n", len(containers), opts.datastoreID)
	return nil
}

func listBuilder() *cobra.Command {
	opts := &listOpts{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every container of a datastore.",
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
	_ = cmd.MarkFlagRequired(flag.DatastoreID)
	return cmd
}
