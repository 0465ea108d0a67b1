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
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qualytics/qualytics-cli/internal/api"
	"github.com/qualytics/qualytics-cli/internal/mocks"
)

func sharedConnection() *api.Connection {
	return &api.Connection{
		ID:       1,
		Name:     "Prod Postgres",
		Type:     "postgresql",
		Host:     "db.internal",
		Port:     5432,
		Username: "qualytics",
		Password: "masked",
	}
}

func exportDatastore(id int64, name string) *api.Datastore {
	return &api.Datastore{
		ID:         id,
		Name:       name,
		Type:       "postgresql",
		Database:   "analytics",
		Schema:     "public",
		Connection: sharedConnection(),
	}
}

func computedContainer() api.Container {
	return api.Container{
		ID:            7,
		Name:          "Daily Orders",
		ContainerType: api.ContainerComputedTable,
		Query:         "select * from orders where day = current_date",
		ComputedFields: []api.ComputedField{
			{ID: 70, Name: "full_name", TransformationType: "customExpression", SourceFields: []string{"first", "last"}},
		},
	}
}

func TestExportLayout(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigExporter(ctrl)
	fs := afero.NewMemMapFs()

	st.EXPECT().Datastore(int64(1)).Return(exportDatastore(1, "Analytics Prod"), nil)
	st.EXPECT().ContainersByDatastore(int64(1)).Return([]api.Container{
		computedContainer(),
		{ID: 8, Name: "orders", ContainerType: "table"},
	}, nil)
	st.EXPECT().QualityChecks(int64(1), nil).Return([]api.QualityCheck{
		apiCheck(1, "notNull", "orders", []string{"order_id"}, nil),
	}, nil)

	summary, err := Export(st, fs, ExportOptions{DatastoreIDs: []int64{1}, OutputDir: "out"})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Connections)
	assert.Equal(t, 1, summary.Datastores)
	assert.Equal(t, 1, summary.Containers)
	assert.Equal(t, 1, summary.ComputedFields)
	assert.Equal(t, 1, summary.Checks)

	for _, path := range []string{
		"out/connections/prod_postgres.yaml",
		"out/datastores/analytics_prod/_datastore.yaml",
		"out/datastores/analytics_prod/containers/daily_orders/_container.yaml",
		"out/datastores/analytics_prod/containers/daily_orders/computed_fields/full_name.yaml",
		"out/datastores/analytics_prod/checks/orders/notnull__order_id.yaml",
	} {
		ok, _ := afero.Exists(fs, path)
		assert.True(t, ok, path)
	}

	// Non-computed containers are never serialized.
	ok, _ := afero.Exists(fs, "out/datastores/analytics_prod/containers/orders/_container.yaml")
	assert.False(t, ok)
}

func TestExportSecretPlaceholders(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigExporter(ctrl)
	fs := afero.NewMemMapFs()

	st.EXPECT().Datastore(int64(1)).Return(exportDatastore(1, "Analytics Prod"), nil)
	st.EXPECT().ContainersByDatastore(int64(1)).Return(nil, nil)
	st.EXPECT().QualityChecks(int64(1), nil).Return(nil, nil)

	_, err := Export(st, fs, ExportOptions{DatastoreIDs: []int64{1}, OutputDir: "out"})
	require.NoError(t, err)

	content, err := afero.ReadFile(fs, "out/connections/prod_postgres.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(content), "${PROD_POSTGRES_PASSWORD}")
	assert.NotContains(t, string(content), "masked")
}

func TestExportConnectionDeduplication(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigExporter(ctrl)
	fs := afero.NewMemMapFs()

	st.EXPECT().Datastore(int64(1)).Return(exportDatastore(1, "Analytics Prod"), nil)
	st.EXPECT().Datastore(int64(2)).Return(exportDatastore(2, "Analytics Staging"), nil)
	st.EXPECT().ContainersByDatastore(gomock.Any()).Return(nil, nil).Times(2)
	st.EXPECT().QualityChecks(gomock.Any(), nil).Return(nil, nil).Times(2)

	summary, err := Export(st, fs, ExportOptions{DatastoreIDs: []int64{1, 2}, OutputDir: "out"})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Connections)
	entries, err := afero.ReadDir(fs, "out/connections")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestExportEnrichmentConnectionIncluded(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigExporter(ctrl)
	fs := afero.NewMemMapFs()

	ds := exportDatastore(1, "Analytics Prod")
	ds.EnrichmentDatastore = &api.Datastore{ID: 9, Name: "Enrichment"}

	st.EXPECT().Datastore(int64(1)).Return(ds, nil)
	st.EXPECT().Datastore(int64(9)).Return(&api.Datastore{
		ID:         9,
		Name:       "Enrichment",
		Connection: &api.Connection{ID: 2, Name: "Enrichment S3", Type: "s3", SecretKey: "masked"},
	}, nil)
	st.EXPECT().ContainersByDatastore(int64(1)).Return(nil, nil)
	st.EXPECT().QualityChecks(int64(1), nil).Return(nil, nil)

	summary, err := Export(st, fs, ExportOptions{DatastoreIDs: []int64{1}, OutputDir: "out"})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Connections)

	ok, _ := afero.Exists(fs, "out/connections/enrichment_s3.yaml")
	assert.True(t, ok)
}

func TestExportIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigExporter(ctrl)
	fs := afero.NewMemMapFs()

	st.EXPECT().Datastore(int64(1)).Return(exportDatastore(1, "Analytics Prod"), nil).Times(2)
	st.EXPECT().ContainersByDatastore(int64(1)).Return([]api.Container{computedContainer()}, nil).Times(2)
	st.EXPECT().QualityChecks(int64(1), nil).Return([]api.QualityCheck{
		apiCheck(1, "notNull", "orders", []string{"order_id"}, nil),
	}, nil).Times(2)

	opts := ExportOptions{DatastoreIDs: []int64{1}, OutputDir: "out"}
	_, err := Export(st, fs, opts)
	require.NoError(t, err)

	first := snapshotTree(t, fs, "out")
	_, err = Export(st, fs, opts)
	require.NoError(t, err)
	second := snapshotTree(t, fs, "out")

	assert.Equal(t, first, second)
}

func TestExportIncludeFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigExporter(ctrl)
	fs := afero.NewMemMapFs()

	include, err := ParseKinds([]string{"checks"})
	require.NoError(t, err)

	st.EXPECT().Datastore(int64(1)).Return(exportDatastore(1, "Analytics Prod"), nil)
	st.EXPECT().QualityChecks(int64(1), nil).Return([]api.QualityCheck{
		apiCheck(1, "notNull", "orders", []string{"order_id"}, nil),
	}, nil)
	// No ContainersByDatastore expectation: excluded kinds are not fetched.

	summary, err := Export(st, fs, ExportOptions{DatastoreIDs: []int64{1}, OutputDir: "out", Include: include})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Checks)
	assert.Equal(t, 0, summary.Datastores)
	assert.Equal(t, 0, summary.Connections)

	ok, _ := afero.Exists(fs, "out/datastores/analytics_prod/_datastore.yaml")
	assert.False(t, ok)
}

func TestExportMissingDatastoreSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigExporter(ctrl)
	fs := afero.NewMemMapFs()

	st.EXPECT().Datastore(int64(1)).Return(nil, api.ErrNotFound)
	st.EXPECT().Datastore(int64(2)).Return(exportDatastore(2, "Analytics Prod"), nil)
	st.EXPECT().ContainersByDatastore(int64(2)).Return(nil, nil)
	st.EXPECT().QualityChecks(int64(2), nil).Return(nil, nil)

	summary, err := Export(st, fs, ExportOptions{DatastoreIDs: []int64{1, 2}, OutputDir: "out"})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Datastores)
	require.Len(t, summary.Warnings, 1)
	assert.Contains(t, summary.Warnings[0], "datastore 1")
}

func TestParseKinds(t *testing.T) {
	all, err := ParseKinds(nil)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	set, err := ParseKinds([]string{"Connections", " checks "})
	require.NoError(t, err)
	assert.True(t, set.Has(KindConnections))
	assert.True(t, set.Has(KindChecks))
	assert.False(t, set.Has(KindDatastores))

	_, err = ParseKinds([]string{"tables"})
	require.Error(t, err)
}

// snapshotTree maps every file path under root to its content.
func snapshotTree(t *testing.T, fs afero.Fs, root string) map[string]string {
	t.Helper()
	tree := map[string]string{}
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		data, readErr := afero.ReadFile(fs, path)
		if readErr != nil {
			return readErr
		}
		tree[filepath.ToSlash(path)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return tree
}
