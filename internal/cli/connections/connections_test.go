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

package connections

import (
	"bytes"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qualytics/qualytics-cli/internal/api"
	"github.com/qualytics/qualytics-cli/internal/cli/output"
	"github.com/qualytics/qualytics-cli/internal/mocks"
)

func TestDescribeRedactsSecrets(t *testing.T) {
	ctrl := gomock.NewController(t)
	describer := mocks.NewMockConnectionDescriber(ctrl)
	out := &bytes.Buffer{}
	opts := &describeOpts{id: 5, format: output.FormatYAML, store: describer, out: out}

	describer.EXPECT().Connection(int64(5)).Return(&api.Connection{
		ID:       5,
		Name:     "Prod Postgres",
		Type:     "postgresql",
		Password: "hunter2",
	}, nil)

	require.NoError(t, opts.Run())
	assert.Contains(t, out.String(), "Prod Postgres")
	assert.NotContains(t, out.String(), "hunter2")
	assert.Contains(t, out.String(), output.Redacted)
}

func TestDescribeByNameWinsOverID(t *testing.T) {
	ctrl := gomock.NewController(t)
	describer := mocks.NewMockConnectionDescriber(ctrl)
	opts := &describeOpts{name: "Prod Postgres", store: describer, out: &bytes.Buffer{}}

	describer.EXPECT().ConnectionByName("Prod Postgres").Return(&api.Connection{ID: 5, Name: "Prod Postgres"}, nil)

	require.NoError(t, opts.Run())
}

func TestCreateResolvesSecretPlaceholders(t *testing.T) {
	t.Setenv("QUALYTICS_TEST_PG_PASSWORD", "hunter2")

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "conn.yaml",
		[]byte("name: Prod Postgres\ntype: postgresql\npassword: ${QUALYTICS_TEST_PG_PASSWORD}\n"), 0o644))

	ctrl := gomock.NewController(t)
	creator := mocks.NewMockConnectionCreator(ctrl)
	out := &bytes.Buffer{}
	opts := &createOpts{file: "conn.yaml", store: creator, fs: fs, out: out}

	creator.EXPECT().CreateConnection(gomock.Any()).DoAndReturn(func(conn *api.Connection) (*api.Connection, error) {
		assert.Equal(t, "hunter2", conn.Password)
		created := *conn
		created.ID = 9
		return &created, nil
	})

	require.NoError(t, opts.Run())
	assert.Contains(t, out.String(), "created connection 9")
}

func TestCreateFailsOnUnsetSecret(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "conn.yaml",
		[]byte("name: Prod Postgres\npassword: ${QUALYTICS_TEST_UNSET_PG_SECRET}\n"), 0o644))

	ctrl := gomock.NewController(t)
	opts := &createOpts{file: "conn.yaml", store: mocks.NewMockConnectionCreator(ctrl), fs: fs, out: &bytes.Buffer{}}

	err := opts.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QUALYTICS_TEST_UNSET_PG_SECRET")
}

func TestCreateRequiresName(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "conn.yaml", []byte("type: postgresql\n"), 0o644))

	ctrl := gomock.NewController(t)
	opts := &createOpts{file: "conn.yaml", store: mocks.NewMockConnectionCreator(ctrl), fs: fs, out: &bytes.Buffer{}}

	err := opts.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no name")
}

func TestTestSendsReplacementCredentials(t *testing.T) {
	t.Setenv("QUALYTICS_TEST_PG_PASSWORD", "hunter2")

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "conn.yaml",
		[]byte("name: Prod Postgres\npassword: ${QUALYTICS_TEST_PG_PASSWORD}\n"), 0o644))

	ctrl := gomock.NewController(t)
	tester := mocks.NewMockConnectionTester(ctrl)
	out := &bytes.Buffer{}
	opts := &testOpts{id: 5, file: "conn.yaml", store: tester, fs: fs, out: out}

	tester.EXPECT().TestConnection(int64(5), gomock.Any()).DoAndReturn(func(_ int64, conn *api.Connection) error {
		assert.Equal(t, "hunter2", conn.Password)
		return nil
	})

	require.NoError(t, opts.Run())
	assert.Contains(t, out.String(), "connection ok")
}

func TestListRendersTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockConnectionLister(ctrl)
	out := &bytes.Buffer{}
	opts := &listOpts{page: 1, size: 100, store: lister, out: out}

	lister.EXPECT().Connections(1, 100).Return(&api.Page[api.Connection]{
		Items: []api.Connection{{ID: 5, Name: "Prod Postgres", Type: "postgresql", Host: "db.internal"}},
		Total: 1,
		Page:  1,
	}, nil)

	require.NoError(t, opts.Run())
	assert.Contains(t, out.String(), "Prod Postgres")
	assert.Contains(t, out.String(), "db.internal")
}

func TestLoadConnectionDecodesSnakeCaseKeys(t *testing.T) {
	t.Setenv("QUALYTICS_TEST_S3_SECRET", "sekrit")

	fs := afero.NewMemMapFs()
	def := "name: Raw Bucket\n" +
		"type: s3\n" +
		"access_key: AKIAEXAMPLE\n" +
		"secret_key: ${QUALYTICS_TEST_S3_SECRET}\n" +
		"jdbc_fetch_size: 5000\n" +
		"max_parallelization: 4\n"
	require.NoError(t, afero.WriteFile(fs, "conn.yaml", []byte(def), 0o644))

	conn, err := loadConnection(fs, "conn.yaml")
	require.NoError(t, err)
	assert.Equal(t, "AKIAEXAMPLE", conn.AccessKey)
	assert.Equal(t, "sekrit", conn.SecretKey)
	assert.Equal(t, 5000, conn.JDBCFetchSize)
	assert.Equal(t, 4, conn.MaxParallelization)
}
