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
	"github.com/spf13/cobra"

	"github.com/qualytics/qualytics-cli/internal/config"
	"github.com/qualytics/qualytics-cli/internal/flag"
	"github.com/qualytics/qualytics-cli/internal/log"
	"github.com/qualytics/qualytics-cli/internal/usage"
	"github.com/qualytics/qualytics-cli/internal/validate"
)

type initOpts struct {
	url         string
	token       string
	sslNoVerify bool
	profile     *config.Profile
}

func (opts *initOpts) Run() error {
	if err := validate.URL(opts.url); err != nil {
		return err
	}

	opts.profile.Set(config.URLField, validate.NormalizeURL(opts.url))
	opts.profile.Set(config.TokenField, opts.token)
	opts.profile.Set(config.SSLVerifyField, !opts.sslNoVerify)

	if err := opts.profile.ValidateToken(); err != nil {
		return err
	}
	if err := opts.profile.Save(); err != nil {
		return err
	}

	log.Warning("configuration saved")
	if opts.sslNoVerify {
		log.Warning("TLS certificate verification is disabled, use with caution")
	}
	return nil
}

func initBuilder() *cobra.Command {
	opts := &initOpts{}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Configure the CLI with an instance URL and token.",
		RunE: func(_ *cobra.Command, _ []string) error {
			opts.profile = config.Default()
			return opts.Run()
		},
	}
	cmd.Flags().StringVar(&opts.url, flag.URL, "", usage.URL)
	cmd.Flags().StringVar(&opts.token, flag.Token, "", usage.Token)
	cmd.Flags().BoolVar(&opts.sslNoVerify, flag.SSLNoVerify, false, usage.SSLNoVerify)
	_ = cmd.MarkFlagRequired(flag.URL)
	_ = cmd.MarkFlagRequired(flag.Token)
	return cmd
}
