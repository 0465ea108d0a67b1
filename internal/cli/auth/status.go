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

package auth

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/qualytics/qualytics-cli/internal/config"
)

type statusOpts struct {
	profile *config.Profile
	out     io.Writer
}

func (opts *statusOpts) Run() error {
	url := opts.profile.URL()
	token := opts.profile.Token()
	if url == "" || token == "" {
		return config.ErrNotConfigured
	}

	fmt.Fprintf(opts.out, "URL:              %s\n", url)
	fmt.Fprintf(opts.out, "Token:            %s\n", maskToken(token))
	fmt.Fprintf(opts.out, "SSL verification: %s\n", enabledLabel(opts.profile.SSLVerify()))

	expiry, err := opts.profile.TokenExpiresAt()
	switch {
	case err != nil:
		fmt.Fprintf(opts.out, "Expiry:           could not decode token: %v\n", err)
	case expiry == nil:
		fmt.Fprintln(opts.out, "Expiry:           no expiry set")
	case expiry.Before(time.Now()):
		fmt.Fprintf(opts.out, "Expiry:           expired %s\n", expiry.Format(time.RFC3339))
		return config.ErrTokenExpired
	default:
		fmt.Fprintf(opts.out, "Expiry:           %s\n", expiry.Format(time.RFC3339))
	}
	return nil
}

func maskToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return token[:4] + strings.Repeat("*", 16)
}

func enabledLabel(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}

func statusBuilder() *cobra.Command {
	opts := &statusOpts{}
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the configured instance and token state.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.profile = config.Default()
			opts.out = cmd.OutOrStdout()
			return opts.Run()
		},
	}
	return cmd
}
