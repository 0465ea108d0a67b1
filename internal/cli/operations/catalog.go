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

func catalogBuilder() *cobra.Command {
	opts := &runOpts{}
	catalog := ops.CatalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Discover the containers in one or more datastores.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.bind(cmd); err != nil {
				return err
			}
			return opts.run(cmd.Context(), catalog)
		},
	}
	opts.addFlags(cmd)
	cmd.Flags().StringSliceVar(&catalog.Include, flag.Include, nil, usage.CatalogInclude)
	cmd.Flags().BoolVar(&catalog.Prune, flag.Prune, false, usage.CatalogPrune)
	cmd.Flags().BoolVar(&catalog.Recreate, flag.Recreate, false, usage.CatalogRecreate)
	return cmd
}
