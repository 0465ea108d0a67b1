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
	"io"

	"github.com/spf13/cobra"

	"github.com/qualytics/qualytics-cli/internal/cli/output"
	"github.com/qualytics/qualytics-cli/internal/config"
	"github.com/qualytics/qualytics-cli/internal/flag"
	"github.com/qualytics/qualytics-cli/internal/store"
	"github.com/qualytics/qualytics-cli/internal/usage"
)

type describeOpts struct {
	id     int64
	format string

	store store.AnomalyDescriber
	out   io.Writer
}

func (opts *describeOpts) Run() error {
	anomaly, err := opts.store.Anomaly(opts.id)
	if err != nil {
		return err
	}
	return output.Print(opts.out, opts.format, anomaly)
}

func describeBuilder() *cobra.Command {
	opts := &describeOpts{}
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Show one anomaly.",
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
	cmd.Flags().Int64Var(&opts.id, flag.ID, 0, usage.ID)
	cmd.Flags().StringVar(&opts.format, flag.Format, output.FormatYAML, usage.Format)
	_ = cmd.MarkFlagRequired(flag.ID)
	return cmd
}
