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
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/qualytics/qualytics-cli/internal/api"
	"github.com/qualytics/qualytics-cli/internal/store"
)

// Kind identifies one exportable resource kind.
type Kind string

const (
	KindConnections    Kind = "connections"
	KindDatastores     Kind = "datastores"
	KindContainers     Kind = "containers"
	KindComputedFields Kind = "computed_fields"
	KindChecks         Kind = "checks"
)

// KindSet is the include filter threaded through export and import.
type KindSet map[Kind]struct{}

// AllKinds returns a set containing every resource kind.
func AllKinds() KindSet {
	return KindSet{
		KindConnections:    {},
		KindDatastores:     {},
		KindContainers:     {},
		KindComputedFields: {},
		KindChecks:         {},
	}
}

// ParseKinds builds a KindSet from raw flag values. An empty input means
// all kinds.
func ParseKinds(values []string) (KindSet, error) {
	if len(values) == 0 {
		return AllKinds(), nil
	}
	set := KindSet{}
	for _, v := range values {
		k := Kind(strings.ToLower(strings.TrimSpace(v)))
		switch k {
		case KindConnections, KindDatastores, KindContainers, KindComputedFields, KindChecks:
			set[k] = struct{}{}
		default:
			return nil, fmt.Errorf("unknown resource kind %q", v)
		}
	}
	return set, nil
}

// Has reports whether the set includes k.
func (s KindSet) Has(k Kind) bool {
	_, ok := s[k]
	return ok
}

// ExportOptions configures one export run.
type ExportOptions struct {
	DatastoreIDs []int64
	OutputDir    string
	Include      KindSet
}

// ExportSummary reports how many resources were serialized per kind.
// Warnings carry per-item skips (resources that vanished mid-walk).
type ExportSummary struct {
	Connections    int
	Datastores     int
	Containers     int
	ComputedFields int
	Checks         int
	Warnings       []string
}

// Export walks the requested datastores and serializes them, their
// connections, computed containers, computed fields, and checks into the
// output tree. Re-exporting unchanged remote state leaves the tree
// untouched.
func Export(st store.ConfigExporter, fs afero.Fs, opts ExportOptions) (*ExportSummary, error) {
	include := opts.Include
	if len(include) == 0 {
		include = AllKinds()
	}

	summary := &ExportSummary{}
	seenConnections := map[string]struct{}{}

	for _, dsID := range opts.DatastoreIDs {
		ds, err := st.Datastore(dsID)
		if err != nil {
			if errors.Is(err, api.ErrNotFound) {
				summary.Warnings = append(summary.Warnings, fmt.Sprintf("datastore %d not found, skipped", dsID))
				continue
			}
			return nil, err
		}
		dsSlug := Slugify(ds.Name)
		if dsSlug == "" {
			dsSlug = fmt.Sprintf("datastore_%d", dsID)
		}
		dsDir := filepath.Join(opts.OutputDir, "datastores", dsSlug)

		if include.Has(KindConnections) {
			if err := exportConnection(fs, opts.OutputDir, ds.Connection, seenConnections, summary); err != nil {
				return nil, err
			}
			if enr := ds.EnrichmentDatastore; enr != nil {
				enrConn := enr.Connection
				if enrConn == nil {
					full, err := st.Datastore(enr.ID)
					if err != nil && !errors.Is(err, api.ErrNotFound) {
						return nil, err
					}
					if full != nil {
						enrConn = full.Connection
					}
				}
				if err := exportConnection(fs, opts.OutputDir, enrConn, seenConnections, summary); err != nil {
					return nil, err
				}
			}
		}

		if include.Has(KindDatastores) {
			path := filepath.Join(dsDir, "_datastore.yaml")
			if _, err := WriteYAMLIfChanged(fs, path, StripDatastore(ds)); err != nil {
				return nil, err
			}
			summary.Datastores++
		}

		// The container walk also feeds computed field serialization, so
		// it runs when either kind is requested.
		if include.Has(KindContainers) || include.Has(KindComputedFields) {
			containers, err := st.ContainersByDatastore(dsID)
			if err != nil {
				return nil, err
			}
			for i := range containers {
				c := &containers[i]
				if !api.IsComputedContainer(c.ContainerType) {
					continue
				}
				cSlug := Slugify(c.Name)
				if cSlug == "" {
					cSlug = fmt.Sprintf("container_%d", c.ID)
				}
				cDir := filepath.Join(dsDir, "containers", cSlug)

				if include.Has(KindContainers) {
					path := filepath.Join(cDir, "_container.yaml")
					if _, err := WriteYAMLIfChanged(fs, path, StripContainer(c, ds.Name)); err != nil {
						return nil, err
					}
					summary.Containers++
				}

				if include.Has(KindComputedFields) {
					for j := range c.ComputedFields {
						f := &c.ComputedFields[j]
						path := filepath.Join(cDir, "computed_fields", Slugify(f.Name)+".yaml")
						if _, err := WriteYAMLIfChanged(fs, path, StripComputedField(f)); err != nil {
							return nil, err
						}
						summary.ComputedFields++
					}
				}
			}
		}

		if include.Has(KindChecks) {
			checks, err := st.QualityChecks(dsID, nil)
			if err != nil {
				return nil, err
			}
			if len(checks) > 0 {
				exported, err := exportChecks(fs, filepath.Join(dsDir, "checks"), checks)
				if err != nil {
					return nil, err
				}
				summary.Checks += exported
			}
		}
	}

	return summary, nil
}

func exportConnection(fs afero.Fs, outputDir string, conn *api.Connection, seen map[string]struct{}, summary *ExportSummary) error {
	if conn == nil || conn.Name == "" {
		return nil
	}
	if _, dup := seen[conn.Name]; dup {
		return nil
	}
	seen[conn.Name] = struct{}{}
	path := filepath.Join(outputDir, "connections", Slugify(conn.Name)+".yaml")
	if _, err := WriteYAMLIfChanged(fs, path, StripConnection(conn)); err != nil {
		return err
	}
	summary.Connections++
	return nil
}
