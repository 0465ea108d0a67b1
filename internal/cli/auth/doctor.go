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
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/qualytics/qualytics-cli/internal/config"
	"github.com/qualytics/qualytics-cli/internal/store"
	"github.com/qualytics/qualytics-cli/internal/version"
)

// minPlatformVersion is the oldest platform release this client's API
// calls are known to work against.
const minPlatformVersion = "2.0.0"

// tokenExpiryWarning is how close to expiry a token gets before doctor
// starts warning about it.
const tokenExpiryWarning = 7 * 24 * time.Hour

type doctorOpts struct {
	profile  *config.Profile
	platform store.PlatformDescriber
	out      io.Writer
	failed   int
	warned   int
}

func (opts *doctorOpts) Run() error {
	opts.pass("CLI version", "qualytics v"+version.Version)

	if opts.profile.URL() == "" || opts.profile.Token() == "" {
		opts.fail("Configuration", "not configured, run 'qualytics auth init'")
		return opts.summary()
	}
	opts.pass("Configuration", opts.profile.URL())

	opts.checkToken()
	if opts.platform == nil {
		opts.warn("API connection", "skipped, fix the token first")
	} else {
		opts.checkPlatform()
	}

	if !opts.profile.SSLVerify() {
		opts.warn("SSL verification", "disabled")
	} else {
		opts.pass("SSL verification", "enabled")
	}
	return opts.summary()
}

func (opts *doctorOpts) checkToken() {
	expiry, err := opts.profile.TokenExpiresAt()
	switch {
	case err != nil:
		opts.warn("Token", fmt.Sprintf("could not decode: %v", err))
	case expiry == nil:
		opts.pass("Token", "valid, no expiry set")
	case expiry.Before(time.Now()):
		opts.fail("Token", "expired "+expiry.Format(time.RFC3339))
	case time.Until(*expiry) < tokenExpiryWarning:
		opts.warn("Token", "expires "+expiry.Format(time.RFC3339))
	default:
		opts.pass("Token", "valid until "+expiry.Format(time.RFC3339))
	}
}

func (opts *doctorOpts) checkPlatform() {
	start := time.Now()
	info, err := opts.platform.PlatformInfo()
	if err != nil {
		opts.fail("API connection", err.Error())
		return
	}
	opts.pass("API connection", fmt.Sprintf("reachable in %s", time.Since(start).Round(time.Millisecond)))

	if err := checkPlatformVersion(info.Version); err != nil {
		opts.warn("Platform version", err.Error())
		return
	}
	opts.pass("Platform version", info.Version)
}

// checkPlatformVersion verifies the platform is recent enough for this
// client. A version string that does not parse as semver is reported
// rather than trusted.
func checkPlatformVersion(reported string) error {
	if reported == "" {
		return errors.New("platform did not report a version")
	}
	v, err := semver.NewVersion(reported)
	if err != nil {
		return fmt.Errorf("unrecognized platform version %q", reported)
	}
	floor := semver.MustParse(minPlatformVersion)
	if v.LessThan(floor) {
		return fmt.Errorf("platform v%s is older than the oldest supported release v%s", v, floor)
	}
	return nil
}

func (opts *doctorOpts) pass(name, detail string) {
	fmt.Fprintf(opts.out, "  ok    %-18s %s\n", name, detail)
}

func (opts *doctorOpts) warn(name, detail string) {
	opts.warned++
	fmt.Fprintf(opts.out, "  warn  %-18s %s\n", name, detail)
}

func (opts *doctorOpts) fail(name, detail string) {
	opts.failed++
	fmt.Fprintf(opts.out, "  FAIL  %-18s %s\n", name, detail)
}

func (opts *doctorOpts) summary() error {
	fmt.Fprintf(opts.out, "\n%d warning(s), %d failure(s)\n", opts.warned, opts.failed)
	if opts.failed > 0 {
		return fmt.Errorf("%d check(s) failed", opts.failed)
	}
	return nil
}

func doctorBuilder() *cobra.Command {
	opts := &doctorOpts{}
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the CLI setup and instance connectivity.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.profile = config.Default()
			opts.out = cmd.OutOrStdout()
			// A broken profile is what doctor diagnoses, so a store
			// construction failure is reported, not returned.
			if st, err := store.NewFromProfile(cmd.Context(), opts.profile); err == nil {
				opts.platform = st
			}
			return opts.Run()
		},
	}
	return cmd
}
