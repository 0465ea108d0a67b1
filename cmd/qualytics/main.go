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

package main

import (
	"os"

	"github.com/qualytics/qualytics-cli/internal/cli"
	"github.com/qualytics/qualytics-cli/internal/history"
)

func main() {
	rootCmd := cli.Builder()

	if err := rootCmd.Execute(); err != nil {
		// cobra skips PersistentPostRun on error, so the history entry
		// is closed here instead.
		history.Finish(err)
		os.Exit(1)
	}
}
