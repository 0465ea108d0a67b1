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

//go:build unit

package operations

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qualytics/qualytics-cli/internal/api"
	"github.com/qualytics/qualytics-cli/internal/mocks"
)

func strPtr(s string) *string { return &s }

func runningOp(id int64) *api.Operation {
	return &api.Operation{ID: id, Result: api.OperationRunning}
}

func finishedOp(id int64, result string) *api.Operation {
	return &api.Operation{ID: id, DatastoreID: 42, Result: result, EndTime: strPtr("2025-06-01T12:00:00Z")}
}

func TestTriggerPartialFailureIsolatesTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockOperationService(ctrl)

	st.EXPECT().RunOperation(gomock.Any()).DoAndReturn(func(p map[string]any) (*api.Operation, error) {
		assert.Equal(t, int64(1), p["datastore_id"])
		assert.Equal(t, TypeCatalog, p["type"])
		return &api.Operation{ID: 101}, nil
	})
	st.EXPECT().RunOperation(gomock.Any()).Return(nil, api.ErrServer)

	results := Trigger(context.Background(), st, []int64{1, 2}, CatalogOptions{Prune: true})
	require.Len(t, results, 2)

	assert.Equal(t, int64(101), results[0].OperationID)
	require.NoError(t, results[0].Err)

	assert.Equal(t, int64(2), results[1].DatastoreID)
	require.Error(t, results[1].Err)
	assert.True(t, errors.Is(results[1].Err, api.ErrServer))
}

func TestTriggerRejectsInvalidOptionsWithoutCalling(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockOperationService(ctrl)

	threshold := 9
	results := Trigger(context.Background(), st, []int64{1, 2}, ProfileOptions{InferenceThreshold: &threshold})
	require.Len(t, results, 2)
	for _, r := range results {
		require.Error(t, r.Err)
		assert.Contains(t, r.Err.Error(), "out of range")
	}
}

func TestTriggerStopsOnCanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockOperationService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Trigger(ctx, st, []int64{1, 2}, CatalogOptions{})
	require.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, errors.Is(r.Err, context.Canceled))
	}
}

func TestWaitReturnsTerminalOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockOperationService(ctrl)

	st.EXPECT().Operation(int64(7)).Return(runningOp(7), nil)
	st.EXPECT().Operation(int64(7)).Return(finishedOp(7, api.OperationSuccess), nil)

	outcome, finished, err := Wait(context.Background(), st, 7, WaitOptions{
		PollInterval: 10 * time.Millisecond,
		Timeout:      time.Second,
	})
	require.NoError(t, err)
	require.True(t, finished)
	assert.Equal(t, int64(7), outcome.OperationID)
	assert.Equal(t, int64(42), outcome.DatastoreID)
	assert.True(t, outcome.Succeeded())
}

func TestWaitTimeoutReturnsSentinel(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockOperationService(ctrl)

	var polls int64
	st.EXPECT().Operation(int64(7)).DoAndReturn(func(int64) (*api.Operation, error) {
		atomic.AddInt64(&polls, 1)
		return runningOp(7), nil
	}).AnyTimes()

	start := time.Now()
	outcome, finished, err := Wait(context.Background(), st, 7, WaitOptions{
		PollInterval: 20 * time.Millisecond,
		Timeout:      70 * time.Millisecond,
	})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.False(t, finished)
	assert.Nil(t, outcome)
	assert.GreaterOrEqual(t, atomic.LoadInt64(&polls), int64(3))
	assert.Less(t, elapsed, time.Second)
}

func TestWaitRetriesTransientPollFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockOperationService(ctrl)

	st.EXPECT().Operation(int64(7)).Return(nil, api.ErrServer).Times(3)
	st.EXPECT().Operation(int64(7)).Return(finishedOp(7, api.OperationSuccess), nil)

	outcome, finished, err := Wait(context.Background(), st, 7, WaitOptions{
		PollInterval: 5 * time.Millisecond,
		Timeout:      time.Second,
	})
	require.NoError(t, err)
	require.True(t, finished)
	assert.True(t, outcome.Succeeded())
}

func TestWaitEscalatesPastRetryBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockOperationService(ctrl)

	st.EXPECT().Operation(int64(7)).Return(nil, api.ErrServer).Times(4)

	outcome, finished, err := Wait(context.Background(), st, 7, WaitOptions{
		PollInterval: 5 * time.Millisecond,
		Timeout:      time.Second,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrServer))
	assert.False(t, finished)
	assert.Nil(t, outcome)
}

func TestWaitSurfacesFailureAsOutcomeNotError(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockOperationService(ctrl)

	failed := finishedOp(7, api.OperationFailure)
	failed.Message = strPtr("table vanished mid-scan")
	st.EXPECT().Operation(int64(7)).Return(failed, nil)

	outcome, finished, err := Wait(context.Background(), st, 7, WaitOptions{
		PollInterval: 5 * time.Millisecond,
		Timeout:      time.Second,
	})
	require.NoError(t, err)
	require.True(t, finished)
	assert.False(t, outcome.Succeeded())
	assert.Equal(t, "table vanished mid-scan", outcome.Message)
}

func TestWaitReportsProgressAtItsOwnCadence(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockOperationService(ctrl)

	running := runningOp(7)
	running.ContainersAnalyzed = 12
	st.EXPECT().Operation(int64(7)).Return(running, nil).Times(3)
	st.EXPECT().Operation(int64(7)).Return(finishedOp(7, api.OperationSuccess), nil)

	var progressCalls int64
	_, finished, err := Wait(context.Background(), st, 7, WaitOptions{
		PollInterval:     10 * time.Millisecond,
		Timeout:          time.Second,
		ProgressInterval: 15 * time.Millisecond,
		OnProgress: func(op *api.Operation) {
			atomic.AddInt64(&progressCalls, 1)
			assert.Equal(t, int64(12), op.ContainersAnalyzed)
		},
	})
	require.NoError(t, err)
	require.True(t, finished)
	assert.GreaterOrEqual(t, atomic.LoadInt64(&progressCalls), int64(1))
	assert.Less(t, atomic.LoadInt64(&progressCalls), int64(3))
}

func TestWaitHonorsContextCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockOperationService(ctrl)

	st.EXPECT().Operation(int64(7)).Return(runningOp(7), nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, finished, err := Wait(ctx, st, 7, WaitOptions{
		PollInterval: 10 * time.Millisecond,
		Timeout:      time.Minute,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, finished)
}

func TestAbortTreatsTerminalOperationAsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockOperationService(ctrl)

	st.EXPECT().AbortOperation(int64(7)).Return(api.ErrConflict)
	assert.NoError(t, Abort(st, 7))

	st.EXPECT().AbortOperation(int64(8)).Return(api.ErrNotFound)
	assert.NoError(t, Abort(st, 8))

	st.EXPECT().AbortOperation(int64(9)).Return(nil)
	assert.NoError(t, Abort(st, 9))

	st.EXPECT().AbortOperation(int64(10)).Return(api.ErrServer)
	assert.Error(t, Abort(st, 10))
}
