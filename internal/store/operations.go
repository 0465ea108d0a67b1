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

package store

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/qualytics/qualytics-cli/internal/api"
)

type OperationRunner interface {
	RunOperation(payload map[string]any) (*api.Operation, error)
}

type OperationDescriber interface {
	Operation(operationID int64) (*api.Operation, error)
}

type OperationAborter interface {
	AbortOperation(operationID int64) error
}

//go:generate mockgen -destination=../mocks/mock_operation_lister.go -package=mocks github.com/qualytics/qualytics-cli/internal/store OperationLister

type OperationLister interface {
	Operations(datastoreID int64, page, size int) (*api.Page[api.Operation], error)
}

// RunOperation schedules a new operation and returns its initial state.
// The payload shape varies per operation type, so it stays untyped here
// and is assembled by the operations package.
func (s *Store) RunOperation(payload map[string]any) (*api.Operation, error) {
	var result api.Operation
	if err := s.client.Post(s.ctx, "operations/run", nil, payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Operation returns the current state of an operation.
func (s *Store) Operation(operationID int64) (*api.Operation, error) {
	var result api.Operation
	if err := s.client.Get(s.ctx, fmt.Sprintf("operations/%d", operationID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AbortOperation requests cancellation of a running operation.
func (s *Store) AbortOperation(operationID int64) error {
	return s.client.Put(s.ctx, fmt.Sprintf("operations/abort/%d", operationID), nil, nil)
}

// Operations returns one page of operations for a datastore, most
// recent first.
func (s *Store) Operations(datastoreID int64, page, size int) (*api.Page[api.Operation], error) {
	params := url.Values{}
	params.Set("datastore", strconv.FormatInt(datastoreID, 10))
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(fixPageSize(size)))
	params.Set("sort_created", "desc")
	var result api.Page[api.Operation]
	if err := s.client.Get(s.ctx, "operations", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
