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

package operations

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/qualytics/qualytics-cli/internal/cli/output"
	"github.com/qualytics/qualytics-cli/internal/config"
	"github.com/qualytics/qualytics-cli/internal/flag"
	"github.com/qualytics/qualytics-cli/internal/store"
	"github.com/qualytics/qualytics-cli/internal/usage"
)

type listOpts struct {
	datastoreID int64
	page        int
	size        int

	service store.OperationLister
	out     io.Writer
}

func (opts *listOpts) Run() error {
	result, err := opts.service.Operations(opts.datastoreID, opts.page, opts.size)
	if err != nil {
		return err
	}

	tbl := output.NewTable(opts.out)
	tbl.AppendHeader(statusHeader)
	for i := range result.Items {
		op := &result.Items[i]
		tbl.AppendRow([]any{op.ID, op.Type, op.DatastoreID, statusResult(op), message(op)})
	}
	tbl.Render()
	fmt.Fprintf(opts.out, "page %d of %d operations\n", result.Page, result.Total)
	return nil
}

func listBuilder() *cobra.Command {
	opts := &listOpts{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent operations for a datastore.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := store.NewFromProfile(cmd.Context(), config.Default())
			if err != nil {
				return err
			}
			opts.service = st
			opts.out = cmd.OutOrStdout()
			return opts.Run()
		},
	}
	cmd.Flags().Int64Var(&opts.datastoreID, flag.DatastoreID, 0, usage.OperationDatastore)
	cmd.Flags().IntVar(&opts.page, flag.Page, 1, usage.Page)
	cmd.Flags().IntVar(&opts.size, flag.Size, 100, usage.Size)
	_ = cmd.MarkFlagRequired(flag.DatastoreID)
	return cmd
}
