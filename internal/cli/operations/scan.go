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

func scanBuilder() *cobra.Command {
	opts := &runOpts{}
	scan := ops.ScanOptions{}
	var maxRecords int64

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan container data against its quality checks.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.bind(cmd); err != nil {
				return err
			}
			if cmd.Flags().Changed(flag.MaxRecords) {
				scan.MaxRecordsAnalyzedPerPartition = &maxRecords
			}
			return opts.run(cmd.Context(), scan)
		},
	}
	opts.addFlags(cmd)
	cmd.Flags().StringSliceVar(&scan.ContainerNames, flag.ContainerNames, nil, usage.ContainerNames)
	cmd.Flags().StringSliceVar(&scan.ContainerTags, flag.ContainerTags, nil, usage.ContainerTags)
	cmd.Flags().BoolVar(&scan.Incremental, flag.Incremental, false, usage.Incremental)
	cmd.Flags().StringVar(&scan.Remediation, flag.Remediation, "", usage.Remediation)
	cmd.Flags().Int64Var(&maxRecords, flag.MaxRecords, 0, usage.MaxRecords)
	return cmd
}
