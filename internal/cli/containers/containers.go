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

// Package containers lists cataloged containers and manages the computed
// ones. Non-computed containers (table, view, file) only exist through
// the catalog operation and are read-only here.
package containers

import (
	"github.com/spf13/cobra"
)

func Builder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "containers",
		Short: "Inspect containers and manage computed ones.",
	}
	cmd.AddCommand(
		listBuilder(),
		describeBuilder(),
		createBuilder(),
		updateBuilder(),
		deleteBuilder(),
		validateBuilder(),
	)
	return cmd
}
