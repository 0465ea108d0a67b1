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

// Package operations drives asynchronous platform jobs: trigger one
// operation per target datastore, poll until a terminal result or a
// wall-clock timeout, and abort best-effort. A timeout is a client-local
// outcome; the remote operation may still be running.
package operations

import (
	"context"
	"errors"
	"time"

	"github.com/qualytics/qualytics-cli/internal/api"
	"github.com/qualytics/qualytics-cli/internal/store"
)

const (
	DefaultPollInterval     = 10 * time.Second
	DefaultTimeout          = 30 * time.Minute
	DefaultProgressInterval = time.Minute

	// Consecutive transport failures tolerated between polls before the
	// wait escalates.
	maxPollRetries = 3
)

// TriggerResult is the per-datastore outcome of one fan-out trigger call.
type TriggerResult struct {
	DatastoreID int64
	OperationID int64
	Err         error
}

// Outcome is the terminal state of one finished operation.
type Outcome struct {
	OperationID int64
	DatastoreID int64
	Result      string
	Message     string
}

// Succeeded reports whether the operation finished without failing. The
// platform reports warnings as a success result with a message attached.
func (o *Outcome) Succeeded() bool {
	return o.Result == api.OperationSuccess
}

// Trigger starts one operation per datastore. A failed trigger for one
// target never blocks the remaining targets; each result carries its own
// error. A canceled context stops the fan-out, marking the remaining
// targets with the context error.
func Trigger(ctx context.Context, st store.OperationRunner, datastoreIDs []int64, opts Options) []TriggerResult {
	results := make([]TriggerResult, 0, len(datastoreIDs))
	for _, id := range datastoreIDs {
		if err := ctx.Err(); err != nil {
			results = append(results, TriggerResult{DatastoreID: id, Err: err})
			continue
		}
		payload, err := opts.payload(id)
		if err != nil {
			results = append(results, TriggerResult{DatastoreID: id, Err: err})
			continue
		}
		op, err := st.RunOperation(payload)
		if err != nil {
			results = append(results, TriggerResult{DatastoreID: id, Err: err})
			continue
		}
		results = append(results, TriggerResult{DatastoreID: id, OperationID: op.ID})
	}
	return results
}

// WaitOptions tunes the polling loop. Zero values take the defaults, so
// the zero WaitOptions is valid. Progress cadence is independent of the
// poll interval.
type WaitOptions struct {
	PollInterval     time.Duration
	Timeout          time.Duration
	ProgressInterval time.Duration
	OnProgress       func(op *api.Operation)
}

// Wait polls until the operation reaches a terminal remote state. It
// returns (outcome, true, nil) on a terminal state, (nil, false, nil)
// when the timeout elapses first, and a non-nil error when the context
// is canceled or polling keeps failing past the retry budget.
func Wait(ctx context.Context, st store.OperationDescriber, operationID int64, opts WaitOptions) (*Outcome, bool, error) {
	poll := opts.PollInterval
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	progressEvery := opts.ProgressInterval
	if progressEvery <= 0 {
		progressEvery = DefaultProgressInterval
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	lastProgress := time.Now()
	failures := 0
	for {
		op, err := st.Operation(operationID)
		switch {
		case err != nil:
			failures++
			if failures > maxPollRetries {
				return nil, false, err
			}
		case op.Finished():
			return outcomeOf(op), true, nil
		default:
			failures = 0
			if opts.OnProgress != nil && time.Since(lastProgress) >= progressEvery {
				opts.OnProgress(op)
				lastProgress = time.Now()
			}
		}

		select {
		case <-ctx.Done():
			return nil, false, ctx.Err()
		case <-deadline.C:
			return nil, false, nil
		case <-ticker.C:
		}
	}
}

func outcomeOf(op *api.Operation) *Outcome {
	out := &Outcome{
		OperationID: op.ID,
		DatastoreID: op.DatastoreID,
		Result:      op.Result,
	}
	if op.Message != nil {
		out.Message = *op.Message
	}
	return out
}

// Abort requests cancellation. An operation already in a terminal state
// makes the platform answer with a conflict or a miss; both mean there is
// nothing left to abort.
func Abort(st store.OperationAborter, operationID int64) error {
	err := st.AbortOperation(operationID)
	if errors.Is(err, api.ErrConflict) || errors.Is(err, api.ErrNotFound) {
		return nil
	}
	return err
}
