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

// Package configcmd moves platform configuration between an instance and
// a version-controlled file tree.
package configcmd

import (
	"github.com/spf13/cobra"
)

func Builder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Export and import platform configuration as files.",
		Long: `Serializes connections, datastores, computed containers, computed fields,
and quality checks into a git-friendly directory tree, and applies such a
tree back with dependency-ordered create-or-update calls.`,
	}
	cmd.AddCommand(exportBuilder(), importBuilder())
	return cmd
}
