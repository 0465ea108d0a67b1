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

	"github.com/qualytics/qualytics-cli/internal/api"
)

//go:generate mockgen -destination=../mocks/mock_computed_fields.go -package=mocks github.com/qualytics/qualytics-cli/internal/store ComputedFieldCreator,ComputedFieldUpdater,ComputedFieldDeleter

type ComputedFieldCreator interface {
	CreateComputedField(field *api.ComputedField) (*api.ComputedField, error)
}

type ComputedFieldUpdater interface {
	UpdateComputedField(fieldID int64, field *api.ComputedField) (*api.ComputedField, error)
}

type ComputedFieldDeleter interface {
	DeleteComputedField(fieldID int64) error
}

// CreateComputedField creates a computed field on a container. The field
// only becomes queryable after the container is profiled again.
func (s *Store) CreateComputedField(field *api.ComputedField) (*api.ComputedField, error) {
	var result api.ComputedField
	if err := s.client.Post(s.ctx, "computed-fields", nil, field, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateComputedField updates a computed field in place. Fields cannot
// move between containers.
func (s *Store) UpdateComputedField(fieldID int64, field *api.ComputedField) (*api.ComputedField, error) {
	var result api.ComputedField
	if err := s.client.Put(s.ctx, fmt.Sprintf("computed-fields/%d", fieldID), field, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteComputedField removes a computed field.
func (s *Store) DeleteComputedField(fieldID int64) error {
	return s.client.Delete(s.ctx, fmt.Sprintf("computed-fields/%d", fieldID), nil, nil, nil)
}
