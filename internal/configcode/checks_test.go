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
	"sort"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qualytics/qualytics-cli/internal/api"
	"github.com/qualytics/qualytics-cli/internal/mocks"
)

func apiCheck(id int64, rule, container string, fields []string, tags []string) api.QualityCheck {
	refs := make([]api.Ref, 0, len(fields))
	for i, f := range fields {
		refs = append(refs, api.Ref{ID: int64(i + 1), Name: f})
	}
	tagRefs := make([]api.Ref, 0, len(tags))
	for i, tg := range tags {
		tagRefs = append(tagRefs, api.Ref{ID: int64(i + 1), Name: tg})
	}
	return api.QualityCheck{
		ID:           id,
		RuleType:     rule,
		Description:  rule + " check on " + container,
		Container:    &api.Ref{ID: 10, Name: container},
		Fields:       refs,
		Coverage:     1.0,
		Properties:   map[string]any{},
		GlobalTags:   tagRefs,
		Status:       "Active",
		Created:      "2024-01-01T00:00:00Z",
		AnomalyCount: 5,
	}
}

func portableCheck(rule, container string, fields []string) *PortableCheck {
	return &PortableCheck{
		RuleType:   rule,
		Container:  container,
		Fields:     fields,
		Coverage:   1.0,
		Properties: map[string]any{},
		Tags:       []string{"data-quality"},
		Status:     "Active",
		SourceFile: Slugify(container) + "/" + CheckFileName(rule, fields),
	}
}

func TestStripCheck(t *testing.T) {
	check := apiCheck(42, "notNull", "orders", []string{"order_id"}, []string{"data-quality"})
	p := StripCheck(&check)

	assert.Equal(t, "notNull", p.RuleType)
	assert.Equal(t, "orders", p.Container)
	assert.Equal(t, []string{"order_id"}, p.Fields)
	assert.Equal(t, []string{"data-quality"}, p.Tags)
	assert.Equal(t, "Active", p.Status)
	assert.Equal(t, "orders__notnull__order_id", p.AdditionalMetadata[UIDKey])
}

func TestStripCheckMetadata(t *testing.T) {
	check := apiCheck(42, "notNull", "orders", []string{"order_id"}, nil)
	check.AdditionalMetadata = map[string]string{
		"from quality check id": "99",
		"main datastore id":     "1",
		"owner":                 "data-team",
	}
	p := StripCheck(&check)

	assert.NotContains(t, p.AdditionalMetadata, "from quality check id")
	assert.NotContains(t, p.AdditionalMetadata, "main datastore id")
	assert.Equal(t, "data-team", p.AdditionalMetadata["owner"])
}

func TestStripCheckMissingRefs(t *testing.T) {
	check := apiCheck(42, "notNull", "orders", nil, nil)
	check.Container = nil
	p := StripCheck(&check)

	assert.Equal(t, "", p.Container)
	assert.Equal(t, []string{}, p.Fields)
	assert.Equal(t, []string{}, p.Tags)
}

func TestExportChecksLayout(t *testing.T) {
	fs := afero.NewMemMapFs()
	checks := []api.QualityCheck{
		apiCheck(1, "notNull", "users", []string{"email"}, nil),
		apiCheck(2, "between", "users", []string{"age"}, []string{"validation"}),
		apiCheck(3, "notNull", "orders", []string{"order_id"}, nil),
	}

	exported, err := exportChecks(fs, "checks", checks)
	require.NoError(t, err)
	assert.Equal(t, 3, exported)

	for _, path := range []string{
		"checks/users/notnull__email.yaml",
		"checks/users/between__age.yaml",
		"checks/orders/notnull__order_id.yaml",
	} {
		ok, _ := afero.Exists(fs, path)
		assert.True(t, ok, path)
	}
}

func TestExportChecksDuplicateFilenames(t *testing.T) {
	fs := afero.NewMemMapFs()
	checks := []api.QualityCheck{
		apiCheck(1, "notNull", "users", []string{"email"}, nil),
		apiCheck(2, "notNull", "users", []string{"email"}, nil),
		apiCheck(3, "notNull", "users", []string{"email"}, nil),
	}

	exported, err := exportChecks(fs, "checks", checks)
	require.NoError(t, err)
	assert.Equal(t, 3, exported)

	entries, err := afero.ReadDir(fs, "checks/users")
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	assert.Equal(t, []string{
		"notnull__email.yaml",
		"notnull__email_2.yaml",
		"notnull__email_3.yaml",
	}, names)
}

func TestExportChecksNoContainerFallback(t *testing.T) {
	fs := afero.NewMemMapFs()
	check := apiCheck(1, "notNull", "orders", []string{"id"}, nil)
	check.Container = nil

	exported, err := exportChecks(fs, "checks", []api.QualityCheck{check})
	require.NoError(t, err)
	assert.Equal(t, 1, exported)
	ok, _ := afero.DirExists(fs, "checks/_no_container")
	assert.True(t, ok)
}

func TestLoadChecks(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("checks/orders", 0o755))
	require.NoError(t, afero.WriteFile(fs, "checks/orders/notnull__id.yaml",
		[]byte("rule_type: notNull\ncontainer: orders\nfields: [id]\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "checks/readme.yaml",
		[]byte("title: not a check\n"), 0o644))

	loaded, err := LoadChecks(fs, "checks")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "notNull", loaded[0].RuleType)
	assert.Equal(t, "orders/notnull__id.yaml", loaded[0].SourceFile)
}

func TestExportLoadRoundTripPreservesUID(t *testing.T) {
	fs := afero.NewMemMapFs()
	checks := []api.QualityCheck{
		apiCheck(1, "notNull", "orders", []string{"order_id"}, []string{"data-quality"}),
		apiCheck(2, "matchesPattern", "users", []string{"email"}, []string{"validation"}),
	}
	_, err := exportChecks(fs, "checks", checks)
	require.NoError(t, err)

	loaded, err := LoadChecks(fs, "checks")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	for _, check := range loaded {
		assert.Equal(t, check.UID(), check.AdditionalMetadata[UIDKey])
	}
}

func checkListing() []api.ContainerListing {
	return []api.ContainerListing{
		{ID: 100, Name: "orders"},
		{ID: 200, Name: "users"},
	}
}

func TestImportChecksCreatesNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigImporter(ctrl)

	st.EXPECT().ContainerListing(int64(42)).Return(checkListing(), nil)
	st.EXPECT().QualityChecks(int64(42), nil).Return(nil, nil)
	st.EXPECT().CreateQualityCheck(gomock.Any()).DoAndReturn(func(p *api.CheckPayload) (*api.QualityCheck, error) {
		assert.Equal(t, int64(100), p.ContainerID)
		assert.Equal(t, "notNull", p.Rule)
		assert.Equal(t, "orders__notnull__order_id", p.AdditionalMetadata[UIDKey])
		return &api.QualityCheck{ID: 999}, nil
	})

	report := ImportChecks(st, 42, []*PortableCheck{portableCheck("notNull", "orders", []string{"order_id"})}, false)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 0, report.Updated)
	assert.Equal(t, 0, report.Failed)
}

func TestImportChecksUpdatesExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigImporter(ctrl)

	uid := CheckUID("orders", "notNull", []string{"order_id"})
	st.EXPECT().ContainerListing(int64(42)).Return(checkListing(), nil)
	st.EXPECT().QualityChecks(int64(42), nil).Return([]api.QualityCheck{
		{ID: 50, AdditionalMetadata: map[string]string{UIDKey: uid}},
	}, nil)
	st.EXPECT().UpdateQualityCheck(int64(50), gomock.Any()).DoAndReturn(func(_ int64, p *api.CheckPayload) (*api.QualityCheck, error) {
		assert.Zero(t, p.ContainerID)
		assert.Empty(t, p.Rule)
		return &api.QualityCheck{ID: 50}, nil
	})

	report := ImportChecks(st, 42, []*PortableCheck{portableCheck("notNull", "orders", []string{"order_id"})}, false)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 0, report.Created)
}

func TestImportChecksContainerNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigImporter(ctrl)

	st.EXPECT().ContainerListing(int64(42)).Return(checkListing(), nil)
	st.EXPECT().QualityChecks(int64(42), nil).Return(nil, nil)

	report := ImportChecks(st, 42, []*PortableCheck{portableCheck("notNull", "products", []string{"sku"})}, false)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, report.Created)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "products")
}

func TestImportChecksDryRunIssuesNoMutations(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigImporter(ctrl)

	uid := CheckUID("orders", "notNull", []string{"order_id"})
	st.EXPECT().ContainerListing(int64(42)).Return(checkListing(), nil)
	st.EXPECT().QualityChecks(int64(42), nil).Return([]api.QualityCheck{
		{ID: 50, AdditionalMetadata: map[string]string{UIDKey: uid}},
	}, nil)
	// No CreateQualityCheck or UpdateQualityCheck expectations: any
	// mutating call fails the test.

	checks := []*PortableCheck{
		portableCheck("notNull", "orders", []string{"order_id"}),
		portableCheck("between", "users", []string{"age"}),
	}
	report := ImportChecks(st, 42, checks, true)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 0, report.Failed)
}

func TestImportChecksUIDRegisteredWithinRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigImporter(ctrl)

	st.EXPECT().ContainerListing(int64(42)).Return(checkListing(), nil)
	st.EXPECT().QualityChecks(int64(42), nil).Return(nil, nil)
	st.EXPECT().CreateQualityCheck(gomock.Any()).Return(&api.QualityCheck{ID: 999}, nil)
	st.EXPECT().UpdateQualityCheck(int64(999), gomock.Any()).Return(&api.QualityCheck{ID: 999}, nil)

	checks := []*PortableCheck{
		portableCheck("notNull", "orders", []string{"order_id"}),
		portableCheck("notNull", "orders", []string{"order_id"}),
	}
	report := ImportChecks(st, 42, checks, false)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 1, report.Updated)
}

func TestImportChecksFieldOrderInvariantUpsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigImporter(ctrl)

	// Existing check was created with fields [a, b]; the tree carries
	// [b, a]. Same UID, so this is an update.
	uid := CheckUID("orders", "unique", []string{"a", "b"})
	st.EXPECT().ContainerListing(int64(42)).Return(checkListing(), nil)
	st.EXPECT().QualityChecks(int64(42), nil).Return([]api.QualityCheck{
		{ID: 7, AdditionalMetadata: map[string]string{UIDKey: uid}},
	}, nil)
	st.EXPECT().UpdateQualityCheck(int64(7), gomock.Any()).Return(&api.QualityCheck{ID: 7}, nil)

	report := ImportChecks(st, 42, []*PortableCheck{portableCheck("unique", "orders", []string{"b", "a"})}, false)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 0, report.Created)
}

func TestImportChecksListingFailureFailsAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockConfigImporter(ctrl)

	st.EXPECT().ContainerListing(int64(42)).Return(nil, api.ErrServer)

	checks := []*PortableCheck{
		portableCheck("notNull", "orders", []string{"order_id"}),
		portableCheck("between", "users", []string{"age"}),
	}
	report := ImportChecks(st, 42, checks, false)
	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, 0, report.Created)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "could not resolve containers")
}
