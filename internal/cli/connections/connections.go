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

// Package connections manages the source system credentials datastores
// read through. Secret values are resolved from ${ENV_VAR} placeholders
// on writes and redacted on display.
package connections

import (
	"github.com/spf13/cobra"
)

func Builder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connections",
		Short: "Manage source system connections.",
	}
	cmd.AddCommand(
		listBuilder(),
		describeBuilder(),
		createBuilder(),
		updateBuilder(),
		deleteBuilder(),
		testBuilder(),
	)
	return cmd
}
