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

package configcode

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qualytics/qualytics-cli/internal/api"
	"github.com/qualytics/qualytics-cli/internal/mocks"
)

// writeImportTree lays down a complete single-datastore config tree.
func writeImportTree(t *testing.T, fs afero.Fs) {
	t.Helper()
	files := map[string]string{
		"tree/connections/prod_postgres.yaml": "name: Prod Postgres\n" +
			"type: postgresql\n" +
			"host: db.internal\n" +
			"port: 5432\n" +
			"username: qualytics\n" +
			"password: ${PROD_POSTGRES_PASSWORD}\n",
		"tree/datastores/analytics_prod/_datastore.yaml": "name: Analytics Prod\n" +
			"type: postgresql\n" +
			"database: analytics\n" +
			"schema: public\n" +
			"connection_name: Prod Postgres\n",
		"tree/datastores/analytics_prod/containers/daily_orders/_container.yaml": "name: Daily Orders\n" +
			"container_type: computed_table\n" +
			"query: select * from orders where day = current_date\n",
		"tree/datastores/analytics_prod/containers/daily_orders/computed_fields/full_name.yaml": "name: full_name\n" +
			"transformation: customExpression\n" +
			"source_fields: [first, last]\n" +
			"properties:\n  expression: first || last\n",
		"tree/datastores/analytics_prod/checks/daily_orders/notnull__order_id.yaml": "rule_type: notNull\n" +
			"container: Daily Orders\n" +
			"fields: [order_id]\n" +
			"coverage: 1.0\n",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
}

func TestImportCreatesAllLayersInOrder(t *testing.T) {
	t.Setenv("PROD_POSTGRES_PASSWORD", "hunter2")
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigImporter(ctrl)
	fs := afero.NewMemMapFs()
	writeImportTree(t, fs)

	// Layer 1: connection created with the resolved secret.
	st.EXPECT().ConnectionByName("Prod Postgres").Return(nil, nil)
	st.EXPECT().CreateConnection(gomock.Any()).DoAndReturn(func(c *api.Connection) (*api.Connection, error) {
		assert.Equal(t, "hunter2", c.Password)
		return &api.Connection{ID: 5, Name: c.Name}, nil
	})

	// Layer 2: datastore created against the layer-1 connection.
	st.EXPECT().ConnectionByName("Prod Postgres").Return(&api.Connection{ID: 5, Name: "Prod Postgres"}, nil)
	st.EXPECT().DatastoreByName("Analytics Prod").Return(nil, nil)
	st.EXPECT().CreateDatastore(gomock.Any()).DoAndReturn(func(ds *api.Datastore) (*api.Datastore, error) {
		assert.Equal(t, int64(5), ds.ConnectionID)
		return &api.Datastore{ID: 42, Name: ds.Name}, nil
	})

	// Layer 3: container created inside the resolved datastore.
	st.EXPECT().ContainerByName(int64(42), "Daily Orders").Return(nil, nil)
	st.EXPECT().CreateContainer(gomock.Any()).DoAndReturn(func(c *api.Container) (*api.Container, error) {
		assert.Equal(t, int64(42), c.DatastoreID)
		assert.Equal(t, api.ContainerComputedTable, c.ContainerType)
		return &api.Container{ID: 7, Name: c.Name}, nil
	})

	// Layer 4: computed field created on the resolved container.
	st.EXPECT().ContainersByDatastore(int64(42)).Return([]api.Container{
		{ID: 7, Name: "Daily Orders", ContainerType: api.ContainerComputedTable},
	}, nil)
	st.EXPECT().CreateComputedField(gomock.Any()).DoAndReturn(func(f *api.ComputedField) (*api.ComputedField, error) {
		assert.Equal(t, int64(7), f.ContainerID)
		return &api.ComputedField{ID: 70, Name: f.Name}, nil
	})

	// Layer 5: check created against the resolved container.
	st.EXPECT().ContainerListing(int64(42)).Return([]api.ContainerListing{{ID: 7, Name: "Daily Orders"}}, nil)
	st.EXPECT().QualityChecks(int64(42), nil).Return(nil, nil)
	st.EXPECT().CreateQualityCheck(gomock.Any()).DoAndReturn(func(p *api.CheckPayload) (*api.QualityCheck, error) {
		assert.Equal(t, int64(7), p.ContainerID)
		assert.Equal(t, "notNull", p.Rule)
		return &api.QualityCheck{ID: 999}, nil
	})

	report, err := Import(st, fs, ImportOptions{InputDir: "tree"})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Connections.Created)
	assert.Equal(t, 1, report.Datastores.Created)
	assert.Equal(t, 1, report.Containers.Created)
	assert.Equal(t, 1, report.ComputedFields.Created)
	assert.Equal(t, 1, report.Checks.Created)
	assert.Equal(t, 0, report.Connections.Failed+report.Datastores.Failed+report.Containers.Failed+report.ComputedFields.Failed+report.Checks.Failed)
}

func TestImportEarlierLayersUnaffectedByLaterFailure(t *testing.T) {
	t.Setenv("PROD_POSTGRES_PASSWORD", "hunter2")
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigImporter(ctrl)
	fs := afero.NewMemMapFs()
	writeImportTree(t, fs)
	// A check whose container exists nowhere in tree or target.
	require.NoError(t, afero.WriteFile(fs, "tree/datastores/analytics_prod/checks/ghost/notnull__id.yaml",
		[]byte("rule_type: notNull\ncontainer: ghost\nfields: [id]\n"), 0o644))

	st.EXPECT().ConnectionByName("Prod Postgres").Return(nil, nil)
	st.EXPECT().CreateConnection(gomock.Any()).Return(&api.Connection{ID: 5}, nil)
	st.EXPECT().ConnectionByName("Prod Postgres").Return(&api.Connection{ID: 5}, nil)
	st.EXPECT().DatastoreByName("Analytics Prod").Return(nil, nil)
	st.EXPECT().CreateDatastore(gomock.Any()).Return(&api.Datastore{ID: 42}, nil)
	st.EXPECT().ContainerByName(int64(42), "Daily Orders").Return(nil, nil)
	st.EXPECT().CreateContainer(gomock.Any()).Return(&api.Container{ID: 7}, nil)
	st.EXPECT().ContainersByDatastore(int64(42)).Return([]api.Container{
		{ID: 7, Name: "Daily Orders", ContainerType: api.ContainerComputedTable},
	}, nil)
	st.EXPECT().CreateComputedField(gomock.Any()).Return(&api.ComputedField{ID: 70}, nil)
	st.EXPECT().ContainerListing(int64(42)).Return([]api.ContainerListing{{ID: 7, Name: "Daily Orders"}}, nil)
	st.EXPECT().QualityChecks(int64(42), nil).Return(nil, nil)
	st.EXPECT().CreateQualityCheck(gomock.Any()).Return(&api.QualityCheck{ID: 999}, nil)

	report, err := Import(st, fs, ImportOptions{InputDir: "tree"})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Connections.Created)
	assert.Equal(t, 1, report.Datastores.Created)
	assert.Equal(t, 1, report.Checks.Created)
	assert.Equal(t, 1, report.Checks.Failed)
	require.NotEmpty(t, report.Checks.Errors)
	assert.Contains(t, report.Checks.Errors[0], "ghost")
}

func TestImportDryRunClassifiesWithoutMutating(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigImporter(ctrl)
	fs := afero.NewMemMapFs()
	writeImportTree(t, fs)

	uid := CheckUID("Daily Orders", "notNull", []string{"order_id"})
	st.EXPECT().ConnectionByName("Prod Postgres").Return(&api.Connection{ID: 5, Name: "Prod Postgres"}, nil).Times(2)
	st.EXPECT().DatastoreByName("Analytics Prod").Return(&api.Datastore{ID: 42, Name: "Analytics Prod"}, nil)
	st.EXPECT().ContainerByName(int64(42), "Daily Orders").Return(&api.ContainerListing{ID: 7, Name: "Daily Orders"}, nil)
	st.EXPECT().ContainersByDatastore(int64(42)).Return([]api.Container{
		{
			ID: 7, Name: "Daily Orders", ContainerType: api.ContainerComputedTable,
			ComputedFields: []api.ComputedField{{ID: 70, Name: "full_name"}},
		},
	}, nil)
	st.EXPECT().ContainerListing(int64(42)).Return([]api.ContainerListing{{ID: 7, Name: "Daily Orders"}}, nil)
	st.EXPECT().QualityChecks(int64(42), nil).Return([]api.QualityCheck{
		{ID: 50, AdditionalMetadata: map[string]string{UIDKey: uid}},
	}, nil)
	// No mutation expectations: any create or update call fails the test.

	report, err := Import(st, fs, ImportOptions{InputDir: "tree", DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Connections.Updated)
	assert.Equal(t, 1, report.Datastores.Updated)
	assert.Equal(t, 1, report.Containers.Updated)
	assert.Equal(t, 1, report.ComputedFields.Updated)
	assert.Equal(t, 1, report.Checks.Updated)
}

func TestImportDryRunNewDatastoreClassifiesDependentsAsCreates(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigImporter(ctrl)
	fs := afero.NewMemMapFs()
	writeImportTree(t, fs)

	st.EXPECT().ConnectionByName("Prod Postgres").Return(nil, nil).Times(2)
	st.EXPECT().DatastoreByName("Analytics Prod").Return(nil, nil)
	// The datastore does not exist yet, so no container or check lookups
	// are possible; dependents are all classified as creates.

	report, err := Import(st, fs, ImportOptions{InputDir: "tree", DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Connections.Created)
	assert.Equal(t, 1, report.Datastores.Created)
	assert.Equal(t, 1, report.Containers.Created)
	assert.Equal(t, 1, report.ComputedFields.Created)
	assert.Equal(t, 1, report.Checks.Created)
}

func TestImportUnresolvedSecretFailsConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigImporter(ctrl)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "tree/connections/prod_postgres.yaml",
		[]byte("name: Prod Postgres\ntype: postgresql\npassword: ${QUALYTICS_TEST_UNSET_SECRET}\n"), 0o644))

	st.EXPECT().ConnectionByName("Prod Postgres").Return(nil, nil)
	// No CreateConnection expectation: the literal placeholder must never
	// be sent upstream.

	report, err := Import(st, fs, ImportOptions{InputDir: "tree"})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Connections.Failed)
	assert.Equal(t, 0, report.Connections.Created)
	require.NotEmpty(t, report.Connections.Errors)
	assert.Contains(t, report.Connections.Errors[0], "QUALYTICS_TEST_UNSET_SECRET")
}

func TestImportMissingConnectionFailsDatastore(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigImporter(ctrl)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "tree/datastores/ds/_datastore.yaml",
		[]byte("name: Analytics Prod\nconnection_name: Missing Conn\n"), 0o644))

	st.EXPECT().ConnectionByName("Missing Conn").Return(nil, nil)

	report, err := Import(st, fs, ImportOptions{InputDir: "tree"})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Datastores.Failed)
	require.NotEmpty(t, report.Datastores.Errors)
	assert.Contains(t, report.Datastores.Errors[0], "Missing Conn")
}

func TestImportChecksOnlyUsesReadOnlyResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigImporter(ctrl)
	fs := afero.NewMemMapFs()
	writeImportTree(t, fs)

	include, err := ParseKinds([]string{"checks"})
	require.NoError(t, err)

	st.EXPECT().DatastoreByName("Analytics Prod").Return(&api.Datastore{ID: 42}, nil)
	st.EXPECT().ContainerListing(int64(42)).Return([]api.ContainerListing{{ID: 7, Name: "Daily Orders"}}, nil)
	st.EXPECT().QualityChecks(int64(42), nil).Return(nil, nil)
	st.EXPECT().CreateQualityCheck(gomock.Any()).Return(&api.QualityCheck{ID: 999}, nil)

	report, err := Import(st, fs, ImportOptions{InputDir: "tree", Include: include})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Checks.Created)
	assert.Equal(t, 0, report.Connections.Created+report.Connections.Updated)
	assert.Equal(t, 0, report.Datastores.Created+report.Datastores.Updated)
}

func TestImportUpdatesExistingResources(t *testing.T) {
	t.Setenv("PROD_POSTGRES_PASSWORD", "hunter2")
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigImporter(ctrl)
	fs := afero.NewMemMapFs()
	writeImportTree(t, fs)

	uid := CheckUID("Daily Orders", "notNull", []string{"order_id"})
	st.EXPECT().ConnectionByName("Prod Postgres").Return(&api.Connection{ID: 5, Name: "Prod Postgres"}, nil).Times(2)
	st.EXPECT().UpdateConnection(int64(5), gomock.Any()).Return(&api.Connection{ID: 5}, nil)
	st.EXPECT().DatastoreByName("Analytics Prod").Return(&api.Datastore{ID: 42}, nil)
	st.EXPECT().UpdateDatastore(int64(42), gomock.Any()).DoAndReturn(func(_ int64, ds *api.Datastore) (*api.Datastore, error) {
		assert.False(t, ds.TriggerCatalog)
		return &api.Datastore{ID: 42}, nil
	})
	st.EXPECT().ContainerByName(int64(42), "Daily Orders").Return(&api.ContainerListing{ID: 7, Name: "Daily Orders"}, nil)
	st.EXPECT().UpdateContainer(int64(7), gomock.Any(), false).Return(&api.Container{ID: 7}, nil)
	st.EXPECT().ContainersByDatastore(int64(42)).Return([]api.Container{
		{
			ID: 7, Name: "Daily Orders", ContainerType: api.ContainerComputedTable,
			ComputedFields: []api.ComputedField{{ID: 70, Name: "full_name"}},
		},
	}, nil)
	st.EXPECT().UpdateComputedField(int64(70), gomock.Any()).Return(&api.ComputedField{ID: 70}, nil)
	st.EXPECT().ContainerListing(int64(42)).Return([]api.ContainerListing{{ID: 7, Name: "Daily Orders"}}, nil)
	st.EXPECT().QualityChecks(int64(42), nil).Return([]api.QualityCheck{
		{ID: 50, AdditionalMetadata: map[string]string{UIDKey: uid}},
	}, nil)
	st.EXPECT().UpdateQualityCheck(int64(50), gomock.Any()).Return(&api.QualityCheck{ID: 50}, nil)

	report, err := Import(st, fs, ImportOptions{InputDir: "tree"})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Connections.Updated)
	assert.Equal(t, 1, report.Datastores.Updated)
	assert.Equal(t, 1, report.Containers.Updated)
	assert.Equal(t, 1, report.ComputedFields.Updated)
	assert.Equal(t, 1, report.Checks.Updated)
}

func TestImportMissingInputDirIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigImporter(ctrl)
	fs := afero.NewMemMapFs()

	_, err := Import(st, fs, ImportOptions{InputDir: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestImportDryRunNewContainerInExistingDatastore(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigImporter(ctrl)
	fs := afero.NewMemMapFs()
	writeImportTree(t, fs)

	st.EXPECT().ConnectionByName("Prod Postgres").Return(&api.Connection{ID: 5, Name: "Prod Postgres"}, nil).Times(2)
	st.EXPECT().DatastoreByName("Analytics Prod").Return(&api.Datastore{ID: 42, Name: "Analytics Prod"}, nil)
	st.EXPECT().ContainerByName(int64(42), "Daily Orders").Return(nil, nil)
	st.EXPECT().ContainersByDatastore(int64(42)).Return(nil, nil)
	st.EXPECT().ContainerListing(int64(42)).Return(nil, nil)
	st.EXPECT().QualityChecks(int64(42), nil).Return(nil, nil)
	// No mutation expectations: the computed field and check belong to a
	// container this run would create, so they classify as creates
	// instead of failures.

	report, err := Import(st, fs, ImportOptions{InputDir: "tree", DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Containers.Created)
	assert.Equal(t, 1, report.ComputedFields.Created)
	assert.Equal(t, 1, report.Checks.Created)
	assert.Equal(t, 0, report.ComputedFields.Failed)
	assert.Equal(t, 0, report.Checks.Failed)
}

func TestImportChecksOnlyUnresolvedDatastoreIsRunWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigImporter(ctrl)
	fs := afero.NewMemMapFs()
	writeImportTree(t, fs)

	include, err := ParseKinds([]string{"checks"})
	require.NoError(t, err)

	st.EXPECT().DatastoreByName("Analytics Prod").Return(nil, nil)

	report, err := Import(st, fs, ImportOptions{InputDir: "tree", Include: include})
	require.NoError(t, err)

	assert.Empty(t, report.Datastores.Errors)
	assert.Equal(t, 0, report.Datastores.Failed)
	require.NotEmpty(t, report.Warnings)
	assert.Contains(t, report.Warnings[0], "analytics_prod")
}
