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
	"bytes"
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qualytics/qualytics-cli/internal/api"
	"github.com/qualytics/qualytics-cli/internal/mocks"
	ops "github.com/qualytics/qualytics-cli/internal/operations"
)

func strPtr(s string) *string { return &s }

func finishedOp(id, datastoreID int64, result string) *api.Operation {
	return &api.Operation{
		ID:          id,
		DatastoreID: datastoreID,
		Result:      result,
		EndTime:     strPtr("2025-06-01T12:00:00Z"),
	}
}

func newRunOpts(service *mocks.MockOperationService) (*runOpts, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &runOpts{
		service: service,
		fs:      afero.NewMemMapFs(),
		out:     out,
	}, out
}

func TestRunIsolatesStartFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockOperationService(ctrl)
	opts, out := newRunOpts(service)
	opts.datastoreIDs = []int64{1, 2}

	service.EXPECT().RunOperation(gomock.Any()).Return(&api.Operation{ID: 100, DatastoreID: 1}, nil)
	service.EXPECT().RunOperation(gomock.Any()).Return(nil, api.ErrServer)
	service.EXPECT().Operation(int64(100)).Return(finishedOp(100, 1, api.OperationSuccess), nil)

	require.NoError(t, opts.run(context.Background(), ops.CatalogOptions{}))
	assert.Contains(t, out.String(), "started catalog operation 100 for datastore 1")
	assert.Contains(t, out.String(), "finished catalog operation 100 for datastore 1")
}

func TestRunAllStartFailuresIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockOperationService(ctrl)
	opts, _ := newRunOpts(service)
	opts.datastoreIDs = []int64{1, 2}

	service.EXPECT().RunOperation(gomock.Any()).Return(nil, api.ErrServer).Times(2)

	err := opts.run(context.Background(), ops.CatalogOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no operation could be started")
}

func TestRunBackgroundSkipsWaiting(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockOperationService(ctrl)
	opts, out := newRunOpts(service)
	opts.datastoreIDs = []int64{7}
	opts.background = true

	service.EXPECT().RunOperation(gomock.Any()).Return(&api.Operation{ID: 200, DatastoreID: 7}, nil)

	require.NoError(t, opts.run(context.Background(), ops.ScanOptions{}))
	assert.Contains(t, out.String(), "started scan operation 200 for datastore 7")
	assert.NotContains(t, out.String(), "finished")
}

func TestRunReportsRemoteFailureWithoutFailingSiblings(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockOperationService(ctrl)
	opts, out := newRunOpts(service)
	opts.datastoreIDs = []int64{1, 2}

	service.EXPECT().RunOperation(gomock.Any()).Return(&api.Operation{ID: 300, DatastoreID: 1}, nil)
	service.EXPECT().RunOperation(gomock.Any()).Return(&api.Operation{ID: 301, DatastoreID: 2}, nil)
	failed := finishedOp(300, 1, api.OperationFailure)
	failed.Message = strPtr("source unreachable")
	service.EXPECT().Operation(int64(300)).Return(failed, nil)
	service.EXPECT().Operation(int64(301)).Return(finishedOp(301, 2, api.OperationSuccess), nil)

	require.NoError(t, opts.run(context.Background(), ops.ProfileOptions{}))
	assert.Contains(t, out.String(), "finished profile operation 301 for datastore 2")
}

func TestStatusRunRendersNotFoundPerRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockOperationService(ctrl)
	out := &bytes.Buffer{}
	opts := &statusOpts{operationIDs: []int64{10, 11}, service: service, out: out}

	running := &api.Operation{ID: 10, Type: "scan", DatastoreID: 4}
	service.EXPECT().Operation(int64(10)).Return(running, nil)
	service.EXPECT().Operation(int64(11)).Return(nil, api.ErrNotFound)

	require.NoError(t, opts.Run())
	assert.Contains(t, out.String(), "running")
	assert.Contains(t, out.String(), "not found")
}

func TestAbortRunRequestsEveryID(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockOperationService(ctrl)
	out := &bytes.Buffer{}
	opts := &abortOpts{operationIDs: []int64{20, 21}, service: service, out: out}

	service.EXPECT().AbortOperation(int64(20)).Return(nil)
	service.EXPECT().AbortOperation(int64(21)).Return(api.ErrConflict)

	require.NoError(t, opts.Run())
	assert.Contains(t, out.String(), "requested abort of operation 20")
	assert.Contains(t, out.String(), "requested abort of operation 21")
}

func TestListRendersOnePage(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockOperationLister(ctrl)
	out := &bytes.Buffer{}
	opts := &listOpts{datastoreID: 7, page: 1, size: 25, service: service, out: out}

	done := finishedOp(30, 7, api.OperationSuccess)
	done.Type = "catalog"
	page := &api.Page[api.Operation]{
		Items: []api.Operation{
			*done,
			{ID: 31, Type: "profile", DatastoreID: 7},
		},
		Total: 3,
		Page:  1,
		Size:  25,
	}
	service.EXPECT().Operations(int64(7), 1, 25).Return(page, nil)

	require.NoError(t, opts.Run())
	assert.Contains(t, out.String(), "catalog")
	assert.Contains(t, out.String(), "running")
	assert.Contains(t, out.String(), "page 1 of 3 operations")
}
