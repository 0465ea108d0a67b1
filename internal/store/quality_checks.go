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

//go:generate mockgen -destination=../mocks/mock_quality_checks.go -package=mocks github.com/qualytics/qualytics-cli/internal/store QualityCheckLister,QualityCheckDescriber,QualityCheckCreator,QualityCheckUpdater,QualityCheckDeleter

// CheckFilters narrows quality check listings.
type CheckFilters struct {
	Containers []int64
	Tags       []string
	Status     string // Active or Draft
	Archived   string // "only" to list archived checks
}

type QualityCheckLister interface {
	QualityChecks(datastoreID int64, filters *CheckFilters) ([]api.QualityCheck, error)
}

type QualityCheckDescriber interface {
	QualityCheck(checkID int64) (*api.QualityCheck, error)
}

type QualityCheckCreator interface {
	CreateQualityCheck(payload *api.CheckPayload) (*api.QualityCheck, error)
}

type QualityCheckUpdater interface {
	UpdateQualityCheck(checkID int64, payload *api.CheckPayload) (*api.QualityCheck, error)
}

type QualityCheckDeleter interface {
	DeleteQualityCheck(checkID int64, archive bool, status string) error
}

// QualityChecks fetches every check of a datastore across all pages,
// honoring the optional filters on each page request.
func (s *Store) QualityChecks(datastoreID int64, filters *CheckFilters) ([]api.QualityCheck, error) {
	var all []api.QualityCheck
	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("datastore", strconv.FormatInt(datastoreID, 10))
		params.Set("page", strconv.Itoa(page))
		params.Set("size", strconv.Itoa(MaxAPIPageSize))
		params.Set("sort_created", "asc")
		if filters != nil {
			for _, c := range filters.Containers {
				params.Add("container", strconv.FormatInt(c, 10))
			}
			for _, t := range filters.Tags {
				params.Add("tag", t)
			}
			if filters.Status != "" {
				params.Set("status", filters.Status)
			}
			if filters.Archived != "" {
				params.Set("archived", filters.Archived)
			}
		}
		var data api.Page[api.QualityCheck]
		if err := s.client.Get(s.ctx, "quality-checks", params, &data); err != nil {
			return nil, err
		}
		all = append(all, data.Items...)
		if page*MaxAPIPageSize >= data.Total {
			return all, nil
		}
	}
}

// QualityCheck returns a single check by ID.
func (s *Store) QualityCheck(checkID int64) (*api.QualityCheck, error) {
	var result api.QualityCheck
	if err := s.client.Get(s.ctx, fmt.Sprintf("quality-checks/%d", checkID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateQualityCheck creates a check against a container.
func (s *Store) CreateQualityCheck(payload *api.CheckPayload) (*api.QualityCheck, error) {
	var result api.QualityCheck
	if err := s.client.Post(s.ctx, "quality-checks", nil, payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateQualityCheck updates an existing check. The payload must not
// carry container_id or rule; checks stay bound to both.
func (s *Store) UpdateQualityCheck(checkID int64, payload *api.CheckPayload) (*api.QualityCheck, error) {
	var result api.QualityCheck
	if err := s.client.Put(s.ctx, fmt.Sprintf("quality-checks/%d", checkID), payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteQualityCheck archives or hard-deletes a check. Archiving requires
// a target archived status.
func (s *Store) DeleteQualityCheck(checkID int64, archive bool, status string) error {
	params := url.Values{}
	params.Set("archive", strconv.FormatBool(archive))
	if status != "" {
		params.Set("status", status)
	}
	params.Set("delete_anomalies", "true")
	return s.client.Delete(s.ctx, fmt.Sprintf("quality-checks/%d", checkID), params, nil, nil)
}
