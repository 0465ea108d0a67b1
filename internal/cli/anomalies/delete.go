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

type deleteOpts struct {
	id      int64
	archive bool
	status  string

	store store.AnomalyDeleter
	out   io.Writer
}

func (opts *deleteOpts) Run() error {
	if opts.archive {
		if opts.status == "" {
			opts.status = api.AnomalyResolved
		}
		if err := validate.AnomalyStatus(opts.status, true); err != nil {
			return err
		}
	}
	if err := opts.store.DeleteAnomaly(opts.id, opts.archive, opts.status); err != nil {
		return err
	}
	if opts.archive {
		fmt.Fprintf(opts.out, "archived anomaly %d as %s\n", opts.id, opts.status)
		return nil
	}
	fmt.Fprintf(opts.out, "deleted anomaly %d\n", opts.id)
	return nil
}

func deleteBuilder() *cobra.Command {
	opts := &deleteOpts{}
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an anomaly, or archive it with a terminal status.",
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
	cmd.Flags().BoolVar(&opts.archive, flag.Archive, false, usage.Archive)
	cmd.Flags().StringVar(&opts.status, flag.Status, "", usage.ArchiveStatus)
	_ = cmd.MarkFlagRequired(flag.ID)
	return cmd
}
