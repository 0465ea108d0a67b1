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
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/qualytics/qualytics-cli/internal/api"
	"github.com/qualytics/qualytics-cli/internal/config"
	"github.com/qualytics/qualytics-cli/internal/flag"
	"github.com/qualytics/qualytics-cli/internal/store"
	"github.com/qualytics/qualytics-cli/internal/usage"
	"github.com/qualytics/qualytics-cli/internal/validate"
)

type updateOpts struct {
	ids    []int64
	status string

	store store.AnomalyUpdater
	out   io.Writer
}

// Run transitions anomalies between open statuses. A single ID goes
// through the per-anomaly endpoint; several go through the bulk form.
func (opts *updateOpts) Run() error {
	if err := validate.AnomalyStatus(opts.status, false); err != nil {
		return err
	}

	if len(opts.ids) == 1 {
		updated, err := opts.store.UpdateAnomaly(opts.ids[0], &api.Anomaly{ID: opts.ids[0], Status: opts.status})
		if err != nil {
			return err
		}
		fmt.Fprintf(opts.out, "anomaly %d is now %s\n", updated.ID, updated.Status)
		return nil
	}

	items := make([]api.Anomaly, 0, len(opts.ids))
	for _, id := range opts.ids {
		items = append(items, api.Anomaly{ID: id, Status: opts.status})
	}
	if err := opts.store.BulkUpdateAnomalies(items); err != nil {
		return err
	}
	fmt.Fprintf(opts.out, "%d anomalies are now %s\n", len(items), opts.status)
	return nil
}

func updateBuilder() *cobra.Command {
	opts := &updateOpts{}
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Transition anomalies between open statuses.",
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
	cmd.Flags().Int64SliceVar(&opts.ids, flag.ID, nil, usage.ID)
	cmd.Flags().StringVar(&opts.status, flag.Status, "", usage.AnomalyStatus)
	_ = cmd.MarkFlagRequired(flag.ID)
	_ = cmd.MarkFlagRequired(flag.Status)
	return cmd
}
