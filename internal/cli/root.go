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

// Package cli assembles the qualytics command tree.
package cli

import (
	"os"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/qualytics/qualytics-cli/internal/cli/anomalies"
	"github.com/qualytics/qualytics-cli/internal/cli/auth"
	"github.com/qualytics/qualytics-cli/internal/cli/checks"
	"github.com/qualytics/qualytics-cli/internal/cli/configcmd"
	"github.com/qualytics/qualytics-cli/internal/cli/connections"
	"github.com/qualytics/qualytics-cli/internal/cli/containers"
	"github.com/qualytics/qualytics-cli/internal/cli/datastores"
	"github.com/qualytics/qualytics-cli/internal/cli/operations"
	"github.com/qualytics/qualytics-cli/internal/config"
	"github.com/qualytics/qualytics-cli/internal/flag"
	"github.com/qualytics/qualytics-cli/internal/history"
	"github.com/qualytics/qualytics-cli/internal/log"
	"github.com/qualytics/qualytics-cli/internal/sighandle"
	"github.com/qualytics/qualytics-cli/internal/usage"
	"github.com/qualytics/qualytics-cli/internal/version"
)

// Builder assembles the root command.
func Builder() *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:     "qualytics",
		Short:   "Manage a Qualytics data quality platform instance.",
		Long:    `The Qualytics CLI triggers platform operations and moves configuration between instances and version-controlled file trees.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Load(); err != nil {
				return err
			}
			if debug {
				log.SetLevel(log.DebugLevel)
			}
			history.Start(cmd)
			handleSignal()
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			history.Finish(nil)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVar(&debug, flag.Debug, false, usage.Debug)

	rootCmd.AddCommand(
		auth.Builder(),
		configcmd.Builder(),
		operations.Builder(),
		connections.Builder(),
		datastores.Builder(),
		containers.Builder(),
		checks.Builder(),
		anomalies.Builder(),
	)
	return rootCmd
}

func handleSignal() {
	sighandle.Notify(func(sig os.Signal) {
		log.Error("received %s, exiting", sig)
		history.Finish(nil)
		os.Exit(1)
	}, os.Interrupt, syscall.SIGTERM)
}
