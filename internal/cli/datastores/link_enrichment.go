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

package datastores

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/qualytics/qualytics-cli/internal/config"
	"github.com/qualytics/qualytics-cli/internal/flag"
	"github.com/qualytics/qualytics-cli/internal/store"
	"github.com/qualytics/qualytics-cli/internal/usage"
)

type linkEnrichmentOpts struct {
	id           int64
	enrichmentID int64

	store store.EnrichmentLinker
	out   io.Writer
}

func (opts *linkEnrichmentOpts) Run() error {
	if err := opts.store.LinkEnrichment(opts.id, opts.enrichmentID); err != nil {
		return err
	}
	fmt.Fprintf(opts.out, "linked enrichment datastore %d to datastore %d\n", opts.enrichmentID, opts.id)
	return nil
}

func linkEnrichmentBuilder() *cobra.Command {
	opts := &linkEnrichmentOpts{}
	cmd := &cobra.Command{
		Use:   "link-enrichment",
		Short: "Link an enrichment datastore to receive exported metadata.",
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
	cmd.Flags().Int64Var(&opts.enrichmentID, flag.EnrichmentID, 0, usage.EnrichmentID)
	_ = cmd.MarkFlagRequired(flag.ID)
	_ = cmd.MarkFlagRequired(flag.EnrichmentID)
	return cmd
}
