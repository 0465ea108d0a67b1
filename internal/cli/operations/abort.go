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

	"github.com/qualytics/qualytics-cli/internal/config"
	"github.com/qualytics/qualytics-cli/internal/flag"
	ops "github.com/qualytics/qualytics-cli/internal/operations"
	"github.com/qualytics/qualytics-cli/internal/store"
	"github.com/qualytics/qualytics-cli/internal/usage"
)

type abortOpts struct {
	operationIDs []int64

	service store.OperationAborter
	out     io.Writer
}

func (opts *abortOpts) Run() error {
	for _, id := range opts.operationIDs {
		if err := ops.Abort(opts.service, id); err != nil {
			return fmt.Errorf("aborting operation %d: %w", id, err)
		}
		fmt.Fprintf(opts.out, "requested abort of operation %d\n", id)
	}
	return nil
}

func abortBuilder() *cobra.Command {
	opts := &abortOpts{}
	cmd := &cobra.Command{
		Use:   "abort",
		Short: "Request cancellation of running operations.",
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
