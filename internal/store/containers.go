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

//go:generate mockgen -destination=../mocks/mock_containers.go -package=mocks github.com/qualytics/qualytics-cli/internal/store ContainerLister,ContainerResolver,ContainerDescriber,ContainerCreator,ContainerUpdater,ContainerDeleter,ContainerValidator

type ContainerLister interface {
	ContainersByDatastore(datastoreID int64) ([]api.Container, error)
}

// ContainerResolver provides the lightweight name-to-ID listing used by
// import reference resolution.
type ContainerResolver interface {
	ContainerListing(datastoreID int64) ([]api.ContainerListing, error)
	ContainerByName(datastoreID int64, name string) (*api.ContainerListing, error)
}

type ContainerDescriber interface {
	Container(containerID int64) (*api.Container, error)
}

type ContainerCreator interface {
	CreateContainer(container *api.Container) (*api.Container, error)
}

type ContainerUpdater interface {
	UpdateContainer(containerID int64, container *api.Container, forceDropFields bool) (*api.Container, error)
}

type ContainerDeleter interface {
	DeleteContainer(containerID int64) error
}

type ContainerValidator interface {
	ValidateContainer(container *api.Container) error
}

// ContainersByDatastore fetches every container of a datastore across all
// pages.
func (s *Store) ContainersByDatastore(datastoreID int64) ([]api.Container, error) {
	var all []api.Container
	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("datastore", strconv.FormatInt(datastoreID, 10))
		params.Set("page", strconv.Itoa(page))
		params.Set("size", strconv.Itoa(MaxAPIPageSize))
		var data api.Page[api.Container]
		if err := s.client.Get(s.ctx, "containers", params, &data); err != nil {
			return nil, err
		}
		all = append(all, data.Items...)
		if page*MaxAPIPageSize >= data.Total {
			return all, nil
		}
	}
}

// ContainerListing returns the non-paginated {id, name} listing of a
// datastore's containers.
func (s *Store) ContainerListing(datastoreID int64) ([]api.ContainerListing, error) {
	params := url.Values{}
	params.Set("datastore", strconv.FormatInt(datastoreID, 10))
	var result []api.ContainerListing
	if err := s.client.Get(s.ctx, "containers/listing", params, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ContainerByName resolves a container by exact name within a datastore.
// Returns (nil, nil) when no container has that name.
func (s *Store) ContainerByName(datastoreID int64, name string) (*api.ContainerListing, error) {
	listing, err := s.ContainerListing(datastoreID)
	if err != nil {
		return nil, err
	}
	for i := range listing {
		if listing[i].Name == name {
			return &listing[i], nil
		}
	}
	return nil, nil
}

// Container returns full detail for one container, including its
// computed fields.
func (s *Store) Container(containerID int64) (*api.Container, error) {
	var result api.Container
	if err := s.client.Get(s.ctx, fmt.Sprintf("containers/%d", containerID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateContainer creates a computed container.
func (s *Store) CreateContainer(container *api.Container) (*api.Container, error) {
	var result api.Container
	if err := s.client.Post(s.ctx, "containers", nil, container, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateContainer updates a computed container. Without forceDropFields
// the API answers 409 when the new definition would drop fields that have
// checks or anomalies attached.
func (s *Store) UpdateContainer(containerID int64, container *api.Container, forceDropFields bool) (*api.Container, error) {
	var params url.Values
	if forceDropFields {
		params = url.Values{}
		params.Set("force_drop_fields", "true")
	}
	path := fmt.Sprintf("containers/%d", containerID)
	if params != nil {
		path += "?" + params.Encode()
	}
	var result api.Container
	if err := s.client.Put(s.ctx, path, container, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteContainer removes a container.
func (s *Store) DeleteContainer(containerID int64) error {
	return s.client.Delete(s.ctx, fmt.Sprintf("containers/%d", containerID), nil, nil, nil)
}

// ValidateContainer asks the platform to validate a computed container
// definition without persisting it.
func (s *Store) ValidateContainer(container *api.Container) error {
	params := url.Values{}
	params.Set("timeout_seconds", "60")
	body := map[string]*api.Container{"container": container}
	return s.client.Post(s.ctx, "containers/validate", params, body, nil)
}
