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

package containers

import (
	"bytes"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qualytics/qualytics-cli/internal/api"
	"github.com/qualytics/qualytics-cli/internal/mocks"
)

const computedTableYAML = "name: daily_orders\ncontainer_type: computed_table\nquery: SELECT * FROM orders\n"

func TestLoadContainerRejectsNonComputed(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "table.yaml",
		[]byte("name: orders\ncontainer_type: table\n"), 0o644))

	_, err := loadContainer(fs, "table.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only computed containers")
}

func TestCreateBindsDatastore(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "container.yaml", []byte(computedTableYAML), 0o644))

	ctrl := gomock.NewController(t)
	creator := mocks.NewMockContainerCreator(ctrl)
	out := &bytes.Buffer{}
	opts := &createOpts{datastoreID: 42, file: "container.yaml", store: creator, fs: fs, out: out}

	creator.EXPECT().CreateContainer(gomock.Any()).DoAndReturn(func(c *api.Container) (*api.Container, error) {
		assert.Equal(t, int64(42), c.DatastoreID)
		assert.Equal(t, api.ContainerComputedTable, c.ContainerType)
		created := *c
		created.ID = 7
		return &created, nil
	})

	require.NoError(t, opts.Run())
	assert.Contains(t, out.String(), "created computed_table 7")
}

func TestUpdatePassesForceDropFields(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "container.yaml", []byte(computedTableYAML), 0o644))

	ctrl := gomock.NewController(t)
	updater := mocks.NewMockContainerUpdater(ctrl)
	opts := &updateOpts{id: 7, file: "container.yaml", forceDropFields: true, store: updater, fs: fs, out: &bytes.Buffer{}}

	updater.EXPECT().UpdateContainer(int64(7), gomock.Any(), true).
		Return(&api.Container{ID: 7, Name: "daily_orders", ContainerType: api.ContainerComputedTable}, nil)

	require.NoError(t, opts.Run())
}

func TestValidateReportsFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "container.yaml", []byte(computedTableYAML), 0o644))

	ctrl := gomock.NewController(t)
	validator := mocks.NewMockContainerValidator(ctrl)
	opts := &validateOpts{datastoreID: 42, file: "container.yaml", store: validator, fs: fs, out: &bytes.Buffer{}}

	validator.EXPECT().ValidateContainer(gomock.Any()).Return(api.ErrServer)

	err := opts.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadContainerDecodesJoinDefinition(t *testing.T) {
	fs := afero.NewMemMapFs()
	def := "name: orders_enriched\n" +
		"container_type: computed_join\n" +
		"select_clause: o.id, o.total, c.segment\n" +
		"join_type: inner\n" +
		"join_criteria: o.customer_id = c.id\n" +
		"left_container_id: 11\n" +
		"right_container_id: 12\n"
	require.NoError(t, afero.WriteFile(fs, "join.yaml", []byte(def), 0o644))

	container, err := loadContainer(fs, "join.yaml")
	require.NoError(t, err)
	assert.Equal(t, api.ContainerComputedJoin, container.ContainerType)
	assert.Equal(t, "o.id, o.total, c.segment", container.SelectClause)
	assert.Equal(t, "inner", container.JoinType)
	assert.Equal(t, "o.customer_id = c.id", container.JoinCriteria)
	assert.Equal(t, int64(11), container.LeftContainerID)
	assert.Equal(t, int64(12), container.RightContainerID)
}
