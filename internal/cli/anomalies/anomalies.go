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

// Package anomalies inspects detected violations and transitions their
// status. Anomalies are only ever created by the platform's scan
// operation.
package anomalies

import (
	"github.com/spf13/cobra"
)

func Builder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anomalies",
		Short: "Inspect and triage detected anomalies.",
	}
	cmd.AddCommand(
		listBuilder(),
		describeBuilder(),
		updateBuilder(),
		deleteBuilder(),
	)
	return cmd
}
