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

func profileBuilder() *cobra.Command {
	opts := &runOpts{}
	profile := ops.ProfileOptions{}
	var inferenceThreshold int
	var maxRecords int64

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile container data and infer quality checks.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.bind(cmd); err != nil {
				return err
			}
			// Unset numeric flags stay out of the payload so the platform
			// applies its own defaults.
			if cmd.Flags().Changed(flag.InferenceThreshold) {
				profile.InferenceThreshold = &inferenceThreshold
			}
			if cmd.Flags().Changed(flag.MaxRecords) {
				profile.MaxRecordsAnalyzedPerPartition = &maxRecords
			}
			return opts.run(cmd.Context(), profile)
		},
	}
	opts.addFlags(cmd)
	cmd.Flags().StringSliceVar(&profile.ContainerNames, flag.ContainerNames, nil, usage.ContainerNames)
	cmd.Flags().StringSliceVar(&profile.ContainerTags, flag.ContainerTags, nil, usage.ContainerTags)
	cmd.Flags().IntVar(&inferenceThreshold, flag.InferenceThreshold, 0, usage.InferenceThreshold)
	cmd.Flags().BoolVar(&profile.InferAsDraft, flag.InferAsDraft, false, usage.InferAsDraft)
	cmd.Flags().Int64Var(&maxRecords, flag.MaxRecords, 0, usage.MaxRecords)
	return cmd
}
