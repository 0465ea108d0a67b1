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
	"github.com/spf13/cobra"

	"github.com/qualytics/qualytics-cli/internal/flag"
	ops "github.com/qualytics/qualytics-cli/internal/operations"
	"github.com/qualytics/qualytics-cli/internal/usage"
)

func materializeBuilder() *cobra.Command {
	opts := &runOpts{}
	materialize := ops.MaterializeOptions{}

	cmd := &cobra.Command{
		Use:   "materialize",
		Short: "Build the queryable form of computed containers.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.bind(cmd); err != nil {
				return err
			}
			return opts.run(cmd.Context(), materialize)
		},
	}
	opts.addFlags(cmd)
	cmd.Flags().StringSliceVar(&materialize.ContainerNames, flag.ContainerNames, nil, usage.ContainerNames)
	return cmd
}
