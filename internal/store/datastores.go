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

//go:generate mockgen -destination=../mocks/mock_datastores.go -package=mocks github.com/qualytics/qualytics-cli/internal/store DatastoreLister,DatastoreDescriber,DatastoreCreator,DatastoreUpdater,DatastoreDeleter,EnrichmentLinker

type DatastoreLister interface {
	Datastores(page, size int) (*api.Page[api.Datastore], error)
}

type DatastoreDescriber interface {
	Datastore(datastoreID int64) (*api.Datastore, error)
	DatastoreByName(name string) (*api.Datastore, error)
}

type DatastoreCreator interface {
	CreateDatastore(ds *api.Datastore) (*api.Datastore, error)
}

type DatastoreUpdater interface {
	UpdateDatastore(datastoreID int64, ds *api.Datastore) (*api.Datastore, error)
}

type DatastoreDeleter interface {
	DeleteDatastore(datastoreID int64) error
}

type EnrichmentLinker interface {
	LinkEnrichment(datastoreID, enrichmentDatastoreID int64) error
}

// Datastores returns one page of datastores.
func (s *Store) Datastores(page, size int) (*api.Page[api.Datastore], error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(fixPageSize(size)))
	var result api.Page[api.Datastore]
	if err := s.client.Get(s.ctx, "datastores", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Datastore returns full detail for one datastore, including its
// connection and enrichment link.
func (s *Store) Datastore(datastoreID int64) (*api.Datastore, error) {
	var result api.Datastore
	if err := s.client.Get(s.ctx, fmt.Sprintf("datastores/%d", datastoreID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DatastoreByName walks the paginated listing for an exact name match.
// Returns (nil, nil) when no datastore has that name.
func (s *Store) DatastoreByName(name string) (*api.Datastore, error) {
	for page := 1; ; page++ {
		data, err := s.Datastores(page, lookupPageSize)
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

// CreateDatastore creates a new datastore and returns it with its ID.
func (s *Store) CreateDatastore(ds *api.Datastore) (*api.Datastore, error) {
	var result api.Datastore
	if err := s.client.Post(s.ctx, "datastores", nil, ds, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateDatastore applies a partial update to an existing datastore.
func (s *Store) UpdateDatastore(datastoreID int64, ds *api.Datastore) (*api.Datastore, error) {
	var result api.Datastore
	if err := s.client.Put(s.ctx, fmt.Sprintf("datastores/%d", datastoreID), ds, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteDatastore removes a datastore.
func (s *Store) DeleteDatastore(datastoreID int64) error {
	return s.client.Delete(s.ctx, fmt.Sprintf("datastores/%d", datastoreID), nil, nil, nil)
}

// LinkEnrichment connects a datastore to its enrichment datastore. The
// link is a mutable relation, not ownership.
func (s *Store) LinkEnrichment(datastoreID, enrichmentDatastoreID int64) error {
	path := fmt.Sprintf("datastores/%d/enrichment/%d", datastoreID, enrichmentDatastoreID)
	return s.client.Put(s.ctx, path, nil, nil)
}
