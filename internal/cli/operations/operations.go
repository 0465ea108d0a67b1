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

// Package operations exposes the platform's asynchronous jobs as
// commands: catalog, profile, scan, materialize, and export triggers,
// plus list, status, and abort.
package operations

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/qualytics/qualytics-cli/internal/api"
	"github.com/qualytics/qualytics-cli/internal/config"
	"github.com/qualytics/qualytics-cli/internal/flag"
	"github.com/qualytics/qualytics-cli/internal/log"
	ops "github.com/qualytics/qualytics-cli/internal/operations"
	"github.com/qualytics/qualytics-cli/internal/store"
	"github.com/qualytics/qualytics-cli/internal/usage"
)

func Builder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "operations",
		Short: "Trigger and track asynchronous platform operations.",
	}
	cmd.AddCommand(
		catalogBuilder(),
		profileBuilder(),
		scanBuilder(),
		materializeBuilder(),
		exportBuilder(),
		listBuilder(),
		statusBuilder(),
		abortBuilder(),
	)
	return cmd
}

// runOpts carries the trigger-and-wait settings every operation command
// shares. Intervals are in seconds to match the flag surface.
type runOpts struct {
	datastoreIDs []int64
	background   bool
	pollInterval int64
	timeout      int64

	service store.OperationService
	fs      afero.Fs
	out     io.Writer
}

func (opts *runOpts) addFlags(cmd *cobra.Command) {
	cmd.Flags().Int64SliceVar(&opts.datastoreIDs, flag.DatastoreID, nil, usage.DatastoreID)
	cmd.Flags().BoolVar(&opts.background, flag.Background, false, usage.Background)
	cmd.Flags().Int64Var(&opts.pollInterval, flag.PollInterval, int64(ops.DefaultPollInterval.Seconds()), usage.PollInterval)
	cmd.Flags().Int64Var(&opts.timeout, flag.Timeout, int64(ops.DefaultTimeout.Seconds()), usage.Timeout)
	_ = cmd.MarkFlagRequired(flag.DatastoreID)
}

func (opts *runOpts) bind(cmd *cobra.Command) error {
	st, err := store.NewFromProfile(cmd.Context(), config.Default())
	if err != nil {
		return err
	}
	opts.service = st
	opts.fs = afero.NewOsFs()
	opts.out = cmd.OutOrStdout()
	return nil
}

// run fans the operation out to every target datastore and, unless
// backgrounded, waits for each started operation in turn. A target that
// fails to start or finishes with a failure never blocks the others.
func (opts *runOpts) run(ctx context.Context, o ops.Options) error {
	results := ops.Trigger(ctx, opts.service, opts.datastoreIDs, o)

	var startFailures int
	for _, r := range results {
		if r.Err != nil {
			startFailures++
			msg := fmt.Sprintf("failed to start %s for datastore %d: %v", o.Type(), r.DatastoreID, r.Err)
			log.Error("%s", msg)
			opts.appendErrorLog(msg)
			continue
		}
		fmt.Fprintf(opts.out, "started %s operation %d for datastore %d\n", o.Type(), r.OperationID, r.DatastoreID)

		if opts.background {
			continue
		}
		opts.wait(ctx, o.Type(), r)
	}

	if startFailures == len(results) && startFailures > 0 {
		return errors.New("no operation could be started")
	}
	return nil
}

func (opts *runOpts) wait(ctx context.Context, opType string, r ops.TriggerResult) {
	outcome, finished, err := ops.Wait(ctx, opts.service, r.OperationID, ops.WaitOptions{
		PollInterval: time.Duration(opts.pollInterval) * time.Second,
		Timeout:      time.Duration(opts.timeout) * time.Second,
		OnProgress: func(op *api.Operation) {
			fmt.Fprintf(opts.out, "operation %d: %d containers analyzed, %d records processed\n",
				op.ID, op.ContainersAnalyzed, op.RecordsProcessed)
		},
	})
	switch {
	case err != nil:
		msg := fmt.Sprintf("lost track of %s operation %d: %v", opType, r.OperationID, err)
		log.Error("%s", msg)
		opts.appendErrorLog(msg)
	case !finished:
		fmt.Fprintf(opts.out, "gave up waiting for operation %d after %ds; it may still be running, check with 'qualytics operations status'\n",
			r.OperationID, opts.timeout)
	case outcome.Succeeded() && outcome.Message == "":
		fmt.Fprintf(opts.out, "finished %s operation %d for datastore %d\n", opType, r.OperationID, r.DatastoreID)
	case outcome.Succeeded():
		fmt.Fprintf(opts.out, "finished %s operation %d for datastore %d with warning: %s\n",
			opType, r.OperationID, r.DatastoreID, outcome.Message)
	default:
		msg := fmt.Sprintf("%s operation %d for datastore %d ended %s: %s",
			opType, r.OperationID, r.DatastoreID, outcome.Result, outcome.Message)
		log.Error("%s", msg)
		opts.appendErrorLog(msg)
	}
}

// appendErrorLog keeps a local record of operation failures for triage.
// Logging failures are never worth failing the command over.
func (opts *runOpts) appendErrorLog(msg string) {
	path, err := config.OperationErrorLog()
	if err != nil {
		return
	}
	file, err := opts.fs.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o600)
	if err != nil {
		return
	}
	defer file.Close()
	fmt.Fprintf(file, "[%s] %s\n", time.Now().Format(time.RFC3339), msg)
}
