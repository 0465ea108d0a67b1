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

package configcmd

import (
	"bytes"
	"testing"

	"github.com/go-test/deep"
	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qualytics/qualytics-cli/internal/api"
	"github.com/qualytics/qualytics-cli/internal/configcode"
	"github.com/qualytics/qualytics-cli/internal/mocks"
)

func TestExportRunWritesTreeAndSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigExporter(ctrl)
	fs := afero.NewMemMapFs()

	st.EXPECT().Datastore(int64(1)).Return(&api.Datastore{
		ID:   1,
		Name: "Analytics Prod",
		Type: "postgresql",
		Connection: &api.Connection{
			ID: 5, Name: "Prod Postgres", Type: "postgresql", Password: "masked",
		},
	}, nil)
	st.EXPECT().ContainersByDatastore(int64(1)).Return(nil, nil)
	st.EXPECT().QualityChecks(int64(1), nil).Return(nil, nil)

	var buf bytes.Buffer
	opts := &exportOpts{
		datastoreIDs: []int64{1},
		outputDir:    "out",
		store:        st,
		fs:           fs,
		out:          &buf,
	}
	require.NoError(t, opts.Run())

	exists, err := afero.Exists(fs, "out/connections/prod_postgres.yaml")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Contains(t, buf.String(), "connections")
}

func TestExportRunRejectsUnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigExporter(ctrl)

	opts := &exportOpts{
		datastoreIDs: []int64{1},
		outputDir:    "out",
		include:      []string{"widgets"},
		store:        st,
		fs:           afero.NewMemMapFs(),
		out:          &bytes.Buffer{},
	}
	require.Error(t, opts.Run())
}

func TestImportRunReportsPerItemFailuresWithoutFailing(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigImporter(ctrl)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "tree/connections/broken.yaml",
		[]byte("type: postgresql\n"), 0o644))

	var buf bytes.Buffer
	opts := &importOpts{
		inputDir: "tree",
		store:    st,
		fs:       fs,
		out:      &buf,
	}
	// The file has no name, a per-item failure. The command still exits
	// cleanly; the failure shows up in the table.
	require.NoError(t, opts.Run())
	assert.Contains(t, buf.String(), "connections")
}

func TestImportRunDryRunReportMatchesRealClassification(t *testing.T) {
	tree := func() afero.Fs {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "tree/connections/prod.yaml",
			[]byte("name: Prod Postgres\ntype: postgresql\n"), 0o644))
		return fs
	}

	run := func(dryRun bool) *configcode.ImportReport {
		ctrl := gomock.NewController(t)
		st := mocks.NewMockConfigImporter(ctrl)
		st.EXPECT().ConnectionByName("Prod Postgres").Return(&api.Connection{ID: 5}, nil)
		if !dryRun {
			st.EXPECT().UpdateConnection(int64(5), gomock.Any()).Return(&api.Connection{ID: 5}, nil)
		}
		report, err := configcode.Import(st, tree(), configcode.ImportOptions{InputDir: "tree", DryRun: dryRun})
		require.NoError(t, err)
		return report
	}

	if diff := deep.Equal(run(true), run(false)); diff != nil {
		t.Errorf("dry-run report differs from real report: %v", diff)
	}
}
