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

// Package checks manages quality checks, including the standalone
// check-tree export and import that predates the full config tree.
package checks

import (
	"github.com/spf13/cobra"
)

func Builder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checks",
		Short: "Manage quality checks.",
	}
	cmd.AddCommand(
		listBuilder(),
		describeBuilder(),
		deleteBuilder(),
		exportBuilder(),
		importBuilder(),
	)
	return cmd
}
