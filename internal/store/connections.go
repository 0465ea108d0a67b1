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

//go:generate mockgen -destination=../mocks/mock_connections.go -package=mocks github.com/qualytics/qualytics-cli/internal/store ConnectionLister,ConnectionDescriber,ConnectionCreator,ConnectionUpdater,ConnectionDeleter,ConnectionTester

type ConnectionLister interface {
	Connections(page, size int) (*api.Page[api.Connection], error)
}

type ConnectionDescriber interface {
	Connection(connectionID int64) (*api.Connection, error)
	ConnectionByName(name string) (*api.Connection, error)
}

type ConnectionCreator interface {
	CreateConnection(conn *api.Connection) (*api.Connection, error)
}

type ConnectionUpdater interface {
	UpdateConnection(connectionID int64, conn *api.Connection) (*api.Connection, error)
}

type ConnectionDeleter interface {
	DeleteConnection(connectionID int64) error
}

type ConnectionTester interface {
	TestConnection(connectionID int64, conn *api.Connection) error
}

// Connections returns one page of connections.
func (s *Store) Connections(page, size int) (*api.Page[api.Connection], error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(fixPageSize(size)))
	var result api.Page[api.Connection]
	if err := s.client.Get(s.ctx, "connections", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Connection returns a single connection by ID. Secret fields arrive
// masked.
func (s *Store) Connection(connectionID int64) (*api.Connection, error) {
	var result api.Connection
	if err := s.client.Get(s.ctx, fmt.Sprintf("connections/%d", connectionID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ConnectionByName walks the paginated listing for an exact name match.
// Returns (nil, nil) when no connection has that name.
func (s *Store) ConnectionByName(name string) (*api.Connection, error) {
	for page := 1; ; page++ {
		data, err := s.Connections(page, lookupPageSize)
		if err != nil {
			return nil, err
		}
		for i := range data.Items {
			if data.Items[i].Name == name {
				return &data.Items[i], nil
			}
		}
		if len(data.Items) < lookupPageSize {
			return nil, nil
		}
	}
}

// CreateConnection creates a new connection and returns it with its ID.
func (s *Store) CreateConnection(conn *api.Connection) (*api.Connection, error) {
	var result api.Connection
	if err := s.client.Post(s.ctx, "connections", nil, conn, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateConnection applies a partial update to an existing connection.
func (s *Store) UpdateConnection(connectionID int64, conn *api.Connection) (*api.Connection, error) {
	var result api.Connection
	if err := s.client.Put(s.ctx, fmt.Sprintf("connections/%d", connectionID), conn, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteConnection removes a connection. The API answers 409 while
// datastores still reference it.
func (s *Store) DeleteConnection(connectionID int64) error {
	return s.client.Delete(s.ctx, fmt.Sprintf("connections/%d", connectionID), nil, nil, nil)
}

// TestConnection verifies connectivity, optionally with replacement
// credentials that are not persisted.
func (s *Store) TestConnection(connectionID int64, conn *api.Connection) error {
	var body any
	if conn != nil {
		body = conn
	}
	return s.client.Post(s.ctx, fmt.Sprintf("connections/%d/test", connectionID), nil, body, nil)
}

func fixPageSize(size int) int {
	if size < 1 || size > MaxAPIPageSize {
		return MaxAPIPageSize
	}
	return size
}
