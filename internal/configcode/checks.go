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

package configcode

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/qualytics/qualytics-cli/internal/api"
	"github.com/qualytics/qualytics-cli/internal/store"
)

// noContainerDir collects checks whose container reference is missing.
const noContainerDir = "_no_container"

type checkImportStore interface {
	ContainerListing(datastoreID int64) ([]api.ContainerListing, error)
	QualityChecks(datastoreID int64, filters *store.CheckFilters) ([]api.QualityCheck, error)
	CreateQualityCheck(payload *api.CheckPayload) (*api.QualityCheck, error)
	UpdateQualityCheck(checkID int64, payload *api.CheckPayload) (*api.QualityCheck, error)
}

// ExportChecks writes one YAML file per check under dir, grouped into
// per-container subdirectories. Checks sharing a container, rule type,
// and field set get _2, _3 suffixes in encounter order. Returns how many
// checks were serialized.
func ExportChecks(fs afero.Fs, dir string, checks []api.QualityCheck) (int, error) {
	return exportChecks(fs, dir, checks)
}

func exportChecks(fs afero.Fs, dir string, checks []api.QualityCheck) (int, error) {
	used := map[string]struct{}{}
	exported := 0
	for i := range checks {
		portable := StripCheck(&checks[i])
		containerDir := noContainerDir
		if portable.Container != "" {
			containerDir = Slugify(portable.Container)
		}
		base := CheckFileName(portable.RuleType, portable.Fields)
		name := base
		for n := 2; ; n++ {
			if _, taken := used[containerDir+"/"+name]; !taken {
				break
			}
			name = strings.TrimSuffix(base, ".yaml") + fmt.Sprintf("_%d.yaml", n)
		}
		used[containerDir+"/"+name] = struct{}{}

		path := filepath.Join(dir, containerDir, name)
		if _, err := WriteYAMLIfChanged(fs, path, portable); err != nil {
			return exported, err
		}
		exported++
	}
	return exported, nil
}

// LoadChecks reads every check YAML under dir, recursively. Files without
// a rule_type key are ignored. The returned checks are ordered by their
// tree-relative path.
func LoadChecks(fs afero.Fs, dir string) ([]*PortableCheck, error) {
	var checks []*PortableCheck
	err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return err
		}
		var check PortableCheck
		if err := ReadYAML(fs, path, &check); err != nil {
			return err
		}
		if check.RuleType == "" {
			return nil
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = path
		}
		check.SourceFile = rel
		checks = append(checks, &check)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(checks, func(i, j int) bool { return checks[i].SourceFile < checks[j].SourceFile })
	return checks, nil
}

// ImportChecks upserts checks into one datastore. Identity is the check
// UID: a match against the datastore's existing checks (or one created
// earlier in this run) updates, anything else creates. Container
// references resolve by name against the datastore's listing; a miss
// fails that check only.
func ImportChecks(st checkImportStore, datastoreID int64, checks []*PortableCheck, dryRun bool) KindReport {
	return importChecks(st, datastoreID, checks, dryRun, nil)
}

// importChecks additionally accepts containers a dry run classified as
// creates, so checks on them classify as creates instead of failing.
func importChecks(st checkImportStore, datastoreID int64, checks []*PortableCheck, dryRun bool, pendingContainers map[string]struct{}) KindReport {
	report := KindReport{}

	containerIDs, err := containerIDsByName(st, datastoreID)
	if err != nil {
		report.Failed = len(checks)
		report.Errors = append(report.Errors, fmt.Sprintf("could not resolve containers for datastore %d: %v", datastoreID, err))
		return report
	}

	uidLookup, err := buildUIDLookup(st, datastoreID)
	if err != nil {
		report.Failed = len(checks)
		report.Errors = append(report.Errors, fmt.Sprintf("could not list existing checks for datastore %d: %v", datastoreID, err))
		return report
	}

	for _, check := range checks {
		uid := check.UID()
		containerID, ok := containerIDs[check.Container]
		if !ok {
			if _, wouldCreate := pendingContainers[check.Container]; wouldCreate {
				report.Created++
				continue
			}
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: container %q not found in datastore %d", check.SourceFile, check.Container, datastoreID))
			continue
		}

		existingID, exists := uidLookup[uid]
		if dryRun {
			if exists {
				report.Updated++
			} else {
				report.Created++
			}
			continue
		}

		if exists {
			if _, err := st.UpdateQualityCheck(existingID, buildUpdatePayload(check)); err != nil {
				report.Failed++
				report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", check.SourceFile, err))
				continue
			}
			report.Updated++
			continue
		}

		created, err := st.CreateQualityCheck(buildCreatePayload(check, containerID))
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", check.SourceFile, err))
			continue
		}
		report.Created++
		// Register so a second check with the same UID in this run
		// updates instead of double-creating.
		uidLookup[uid] = created.ID
	}

	return report
}

func containerIDsByName(st checkImportStore, datastoreID int64) (map[string]int64, error) {
	listing, err := st.ContainerListing(datastoreID)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]int64, len(listing))
	for _, c := range listing {
		ids[c.Name] = c.ID
	}
	return ids, nil
}

func buildUIDLookup(st checkImportStore, datastoreID int64) (map[string]int64, error) {
	existing, err := st.QualityChecks(datastoreID, nil)
	if err != nil {
		return nil, err
	}
	lookup := make(map[string]int64)
	for i := range existing {
		if uid, ok := existing[i].AdditionalMetadata[UIDKey]; ok && uid != "" {
			lookup[uid] = existing[i].ID
		}
	}
	return lookup, nil
}

func buildCreatePayload(check *PortableCheck, containerID int64) *api.CheckPayload {
	p := buildUpdatePayload(check)
	p.ContainerID = containerID
	p.Rule = check.RuleType
	return p
}

func buildUpdatePayload(check *PortableCheck) *api.CheckPayload {
	fields := check.Fields
	if fields == nil {
		fields = []string{}
	}
	properties := check.Properties
	if properties == nil {
		properties = map[string]any{}
	}
	tags := check.Tags
	if tags == nil {
		tags = []string{}
	}
	status := check.Status
	if status == "" {
		status = "Active"
	}
	coverage := check.Coverage
	if coverage == 0 {
		coverage = 1.0
	}
	meta := make(map[string]string, len(check.AdditionalMetadata)+1)
	for k, v := range check.AdditionalMetadata {
		if _, internal := internalMetadataKeys[k]; internal {
			continue
		}
		meta[k] = v
	}
	meta[UIDKey] = check.UID()
	return &api.CheckPayload{
		Description:        check.Description,
		Fields:             fields,
		Coverage:           coverage,
		Filter:             check.Filter,
		Properties:         properties,
		Tags:               tags,
		AdditionalMetadata: meta,
		Status:             status,
	}
}
