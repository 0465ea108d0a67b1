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
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/qualytics/qualytics-cli/internal/api"
	"github.com/qualytics/qualytics-cli/internal/cli/output"
	"github.com/qualytics/qualytics-cli/internal/config"
	"github.com/qualytics/qualytics-cli/internal/flag"
	"github.com/qualytics/qualytics-cli/internal/store"
	"github.com/qualytics/qualytics-cli/internal/usage"
)

type statusOpts struct {
	operationIDs []int64

	service store.OperationDescriber
	out     io.Writer
}

func (opts *statusOpts) Run() error {
	tbl := output.NewTable(opts.out)
	tbl.AppendHeader(statusHeader)
	for _, id := range opts.operationIDs {
		op, err := opts.service.Operation(id)
		switch {
		case errors.Is(err, api.ErrNotFound):
			tbl.AppendRow([]any{id, "", "", "not found", ""})
		case err != nil:
			return err
		default:
			tbl.AppendRow([]any{op.ID, op.Type, op.DatastoreID, statusResult(op), message(op)})
		}
	}
	tbl.Render()
	return nil
}

var statusHeader = []any{"ID", "Type", "Datastore", "Result", "Message"}

func statusResult(op *api.Operation) string {
	if !op.Finished() {
		return "running"
	}
	return op.Result
}

func message(op *api.Operation) string {
	if op.Message == nil {
		return ""
	}
	return *op.Message
}

func statusBuilder() *cobra.Command {
	opts := &statusOpts{}
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current state of one or more operations.",
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
	cmd.Flags().Int64SliceVar(&opts.operationIDs, flag.OperationID, nil, usage.OperationID)
	_ = cmd.MarkFlagRequired(flag.OperationID)
	return cmd
}
