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

//go:generate mockgen -destination=../mocks/mock_anomalies.go -package=mocks github.com/qualytics/qualytics-cli/internal/store AnomalyLister,AnomalyDescriber,AnomalyUpdater,AnomalyDeleter

// AnomalyFilters narrows anomaly listings.
type AnomalyFilters struct {
	Datastore int64
	Container int64
	Status    string
	Tags      []string
	Archived  string
}

type AnomalyLister interface {
	Anomalies(filters *AnomalyFilters, page, size int) (*api.Page[api.Anomaly], error)
}

type AnomalyDescriber interface {
	Anomaly(anomalyID int64) (*api.Anomaly, error)
}

type AnomalyUpdater interface {
	UpdateAnomaly(anomalyID int64, anomaly *api.Anomaly) (*api.Anomaly, error)
	BulkUpdateAnomalies(items []api.Anomaly) error
}

type AnomalyDeleter interface {
	DeleteAnomaly(anomalyID int64, archive bool, status string) error
}

// Anomalies returns one page of anomalies.
func (s *Store) Anomalies(filters *AnomalyFilters, page, size int) (*api.Page[api.Anomaly], error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(fixPageSize(size)))
	if filters != nil {
		if filters.Datastore != 0 {
			params.Set("datastore", strconv.FormatInt(filters.Datastore, 10))
		}
		if filters.Container != 0 {
			params.Set("container", strconv.FormatInt(filters.Container, 10))
		}
		if filters.Status != "" {
			params.Set("status", filters.Status)
		}
		for _, t := range filters.Tags {
			params.Add("tag", t)
		}
		if filters.Archived != "" {
			params.Set("archived", filters.Archived)
		}
	}
	var result api.Page[api.Anomaly]
	if err := s.client.Get(s.ctx, "anomalies", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Anomaly returns a single anomaly by ID.
func (s *Store) Anomaly(anomalyID int64) (*api.Anomaly, error) {
	var result api.Anomaly
	if err := s.client.Get(s.ctx, fmt.Sprintf("anomalies/%d", anomalyID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateAnomaly transitions an open anomaly. Only open statuses are
// accepted here; archived statuses go through DeleteAnomaly.
func (s *Store) UpdateAnomaly(anomalyID int64, anomaly *api.Anomaly) (*api.Anomaly, error) {
	var result api.Anomaly
	if err := s.client.Put(s.ctx, fmt.Sprintf("anomalies/%d", anomalyID), anomaly, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// BulkUpdateAnomalies applies status/tag updates to many anomalies.
func (s *Store) BulkUpdateAnomalies(items []api.Anomaly) error {
	return s.client.Patch(s.ctx, "anomalies", items, nil)
}

// DeleteAnomaly archives (with a terminal status) or hard-deletes an
// anomaly.
func (s *Store) DeleteAnomaly(anomalyID int64, archive bool, status string) error {
	params := url.Values{}
	params.Set("archive", strconv.FormatBool(archive))
	if status != "" {
		params.Set("status", status)
	}
	return s.client.Delete(s.ctx, fmt.Sprintf("anomalies/%d", anomalyID), params, nil, nil)
}
