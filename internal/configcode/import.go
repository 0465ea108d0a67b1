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
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/qualytics/qualytics-cli/internal/api"
	"github.com/qualytics/qualytics-cli/internal/store"
)

// KindReport summarizes one resource kind's import outcome. Dry runs and
// real runs fill the same shape so a preview predicts the real run.
type KindReport struct {
	Created int
	Updated int
	Failed  int
	Errors  []string
}

func (r *KindReport) merge(o KindReport) {
	r.Created += o.Created
	r.Updated += o.Updated
	r.Failed += o.Failed
	r.Errors = append(r.Errors, o.Errors...)
}

// ImportReport is the full per-kind outcome of one import run.
type ImportReport struct {
	Connections    KindReport
	Datastores     KindReport
	Containers     KindReport
	ComputedFields KindReport
	Checks         KindReport
	// Warnings are run-level notes that belong to no imported kind,
	// such as resolution failures for datastores the include set
	// excludes.
	Warnings []string
}

// ImportOptions configures one import run.
type ImportOptions struct {
	InputDir string
	Include  KindSet
	DryRun   bool
}

// dsTarget tracks one datastore directory through the import layers.
type dsTarget struct {
	dir      string
	path     string
	portable *PortableDatastore
	id       int64
	// pendingCreate marks a datastore a dry run classified as "would
	// create": its dependents cannot be looked up remotely and are all
	// classified as creates.
	pendingCreate bool
	// pendingContainers holds containers a dry run classified as
	// creates inside an existing datastore. Computed fields and checks
	// referencing them are creates too, never failures.
	pendingContainers map[string]struct{}
	unresolved        bool
}

// Import applies a config tree to the platform in five strict layers:
// connections, datastores, containers, computed fields, checks. Each
// layer finishes resolving before the next begins. Per-item failures are
// recorded and do not stop the run; only an unreadable tree or a
// malformed file aborts.
func Import(st store.ConfigImporter, fs afero.Fs, opts ImportOptions) (*ImportReport, error) {
	include := opts.Include
	if len(include) == 0 {
		include = AllKinds()
	}

	if ok, err := afero.DirExists(fs, opts.InputDir); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("input directory %s does not exist", opts.InputDir)
	}

	report := &ImportReport{}

	// Connections a dry run classifies as "would create". Datastores
	// referencing them are still resolvable in a real run.
	pendingConns := map[string]struct{}{}

	if include.Has(KindConnections) {
		r, pending, err := importConnections(st, fs, filepath.Join(opts.InputDir, "connections"), opts.DryRun)
		if err != nil {
			return nil, err
		}
		report.Connections = r
		pendingConns = pending
	}

	targets, err := loadDatastoreTargets(fs, filepath.Join(opts.InputDir, "datastores"))
	if err != nil {
		return nil, err
	}

	for _, t := range targets {
		if include.Has(KindDatastores) {
			importDatastore(st, t, opts.DryRun, pendingConns, &report.Datastores)
		} else {
			resolveDatastore(st, t, report)
		}
	}

	if include.Has(KindContainers) {
		for _, t := range targets {
			if t.unresolved {
				continue
			}
			r, err := importContainers(st, fs, t, opts.DryRun)
			if err != nil {
				return nil, err
			}
			report.Containers.merge(r)
		}
	}

	if include.Has(KindComputedFields) {
		for _, t := range targets {
			if t.unresolved {
				continue
			}
			r, err := importComputedFields(st, fs, t, opts.DryRun)
			if err != nil {
				return nil, err
			}
			report.ComputedFields.merge(r)
		}
	}

	if include.Has(KindChecks) {
		for _, t := range targets {
			if t.unresolved {
				continue
			}
			checksDir := filepath.Join(t.path, "checks")
			if ok, _ := afero.DirExists(fs, checksDir); !ok {
				continue
			}
			checks, err := LoadChecks(fs, checksDir)
			if err != nil {
				return nil, err
			}
			if len(checks) == 0 {
				continue
			}
			if t.pendingCreate {
				report.Checks.Created += len(checks)
				continue
			}
			report.Checks.merge(importChecks(st, t.id, checks, opts.DryRun, t.pendingContainers))
		}
	}

	return report, nil
}

// ── Layer 1: connections ─────────────────────────────────────────────

func importConnections(st store.ConfigImporter, fs afero.Fs, dir string, dryRun bool) (KindReport, map[string]struct{}, error) {
	report := KindReport{}
	pending := map[string]struct{}{}
	files, err := sortedYAMLFiles(fs, dir)
	if err != nil {
		return report, pending, err
	}

	for _, file := range files {
		var portable PortableConnection
		if err := ReadYAML(fs, filepath.Join(dir, file), &portable); err != nil {
			return report, pending, err
		}
		if portable.Name == "" {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: missing name", file))
			continue
		}

		existing, err := st.ConnectionByName(portable.Name)
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", file, err))
			continue
		}

		if dryRun {
			if existing != nil {
				report.Updated++
			} else {
				pending[portable.Name] = struct{}{}
				report.Created++
			}
			continue
		}

		payload, err := connectionPayload(&portable)
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", file, err))
			continue
		}

		if existing != nil {
			if _, err := st.UpdateConnection(existing.ID, payload); err != nil {
				report.Failed++
				report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", file, err))
				continue
			}
			report.Updated++
		} else {
			if _, err := st.CreateConnection(payload); err != nil {
				report.Failed++
				report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", file, err))
				continue
			}
			report.Created++
		}
	}
	return report, pending, nil
}

// connectionPayload expands secret placeholders and returns the API form.
// An unset environment variable fails the connection rather than sending
// the literal placeholder upstream.
func connectionPayload(p *PortableConnection) (*api.Connection, error) {
	conn := &api.Connection{
		Name:               p.Name,
		Type:               p.Type,
		Host:               p.Host,
		Port:               p.Port,
		Username:           p.Username,
		URI:                p.URI,
		Catalog:            p.Catalog,
		JDBCFetchSize:      p.JDBCFetchSize,
		MaxParallelization: p.MaxParallelization,
		Parameters:         p.Parameters,
	}
	secrets := []struct {
		value  string
		target *string
	}{
		{p.Password, &conn.Password},
		{p.SecretKey, &conn.SecretKey},
		{p.CredentialsPayload, &conn.CredentialsPayload},
		{p.AccessKey, &conn.AccessKey},
	}
	for _, s := range secrets {
		if s.value == "" {
			continue
		}
		resolved, err := ResolveEnvVars(s.value)
		if err != nil {
			return nil, err
		}
		*s.target = resolved
	}
	return conn, nil
}

// ── Layer 2: datastores ──────────────────────────────────────────────

func loadDatastoreTargets(fs afero.Fs, dir string) ([]*dsTarget, error) {
	dirs, err := sortedSubdirs(fs, dir)
	if err != nil {
		return nil, err
	}
	var targets []*dsTarget
	for _, d := range dirs {
		path := filepath.Join(dir, d)
		dsFile := filepath.Join(path, "_datastore.yaml")
		if ok, _ := afero.Exists(fs, dsFile); !ok {
			continue
		}
		var portable PortableDatastore
		if err := ReadYAML(fs, dsFile, &portable); err != nil {
			return nil, err
		}
		targets = append(targets, &dsTarget{dir: d, path: path, portable: &portable})
	}
	return targets, nil
}

func importDatastore(st store.ConfigImporter, t *dsTarget, dryRun bool, pendingConns map[string]struct{}, report *KindReport) {
	p := t.portable
	if p.Name == "" {
		t.unresolved = true
		report.Failed++
		report.Errors = append(report.Errors, fmt.Sprintf("%s: missing name", t.dir))
		return
	}

	payload := &api.Datastore{
		Name:     p.Name,
		Type:     p.Type,
		Database: p.Database,
		Schema:   p.Schema,
		Tags:     p.Tags,
	}
	if p.ConnectionName != "" {
		conn, err := st.ConnectionByName(p.ConnectionName)
		if err != nil {
			t.unresolved = true
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", t.dir, err))
			return
		}
		if conn == nil {
			// A dry run never creates the layer-1 connections, so one the
			// run classified as a create counts as resolvable here.
			if _, wouldCreate := pendingConns[p.ConnectionName]; !dryRun || !wouldCreate {
				t.unresolved = true
				report.Failed++
				report.Errors = append(report.Errors, fmt.Sprintf("connection %q not found for datastore %q", p.ConnectionName, p.Name))
				return
			}
		} else {
			payload.ConnectionID = conn.ID
		}
	}

	existing, err := st.DatastoreByName(p.Name)
	if err != nil {
		t.unresolved = true
		report.Failed++
		report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", t.dir, err))
		return
	}

	if dryRun {
		if existing != nil {
			t.id = existing.ID
			report.Updated++
		} else {
			t.pendingCreate = true
			report.Created++
		}
		return
	}

	if existing != nil {
		// trigger_catalog is a creation-time side effect, never replayed
		// on update.
		if _, err := st.UpdateDatastore(existing.ID, payload); err != nil {
			t.unresolved = true
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", t.dir, err))
			return
		}
		t.id = existing.ID
		report.Updated++
	} else {
		payload.TriggerCatalog = p.TriggerCatalog
		created, err := st.CreateDatastore(payload)
		if err != nil {
			t.unresolved = true
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", t.dir, err))
			return
		}
		t.id = created.ID
		report.Created++
	}

	if p.EnrichmentDatastoreName != "" {
		enr, err := st.DatastoreByName(p.EnrichmentDatastoreName)
		if err == nil && enr != nil {
			err = st.LinkEnrichment(t.id, enr.ID)
		} else if err == nil {
			err = fmt.Errorf("enrichment datastore %q not found", p.EnrichmentDatastoreName)
		}
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("failed to link enrichment for %q: %v", p.Name, err))
		}
	}
}

// resolveDatastore resolves the directory's datastore ID without mutating
// it, for runs that import only dependent kinds. Failures are run-level
// warnings: the datastores kind is not part of such a run.
func resolveDatastore(st store.ConfigImporter, t *dsTarget, report *ImportReport) {
	if t.portable.Name == "" {
		t.unresolved = true
		return
	}
	existing, err := st.DatastoreByName(t.portable.Name)
	if err != nil || existing == nil {
		t.unresolved = true
		report.Warnings = append(report.Warnings, fmt.Sprintf("could not resolve datastore for %s, skipping its resources", t.dir))
		return
	}
	t.id = existing.ID
}

// ── Layer 3: containers ──────────────────────────────────────────────

func importContainers(st store.ConfigImporter, fs afero.Fs, t *dsTarget, dryRun bool) (KindReport, error) {
	report := KindReport{}
	containersDir := filepath.Join(t.path, "containers")
	dirs, err := sortedSubdirs(fs, containersDir)
	if err != nil {
		return report, err
	}

	for _, d := range dirs {
		file := filepath.Join(containersDir, d, "_container.yaml")
		if ok, _ := afero.Exists(fs, file); !ok {
			continue
		}
		var portable PortableContainer
		if err := ReadYAML(fs, file, &portable); err != nil {
			return report, err
		}
		if !api.IsComputedContainer(portable.ContainerType) {
			continue
		}
		if portable.Name == "" {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: missing name", d))
			continue
		}

		if t.pendingCreate {
			report.Created++
			continue
		}

		payload, err := containerPayload(st, &portable, t.id, t.pendingContainers)
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", d, err))
			continue
		}

		existing, err := st.ContainerByName(t.id, portable.Name)
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", d, err))
			continue
		}

		if dryRun {
			if existing != nil {
				report.Updated++
			} else {
				report.Created++
				if t.pendingContainers == nil {
					t.pendingContainers = map[string]struct{}{}
				}
				t.pendingContainers[portable.Name] = struct{}{}
			}
			continue
		}

		if existing != nil {
			if _, err := st.UpdateContainer(existing.ID, payload, false); err != nil {
				report.Failed++
				report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", d, err))
				continue
			}
			report.Updated++
		} else {
			payload.DatastoreID = t.id
			if _, err := st.CreateContainer(payload); err != nil {
				report.Failed++
				report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", d, err))
				continue
			}
			report.Created++
		}
	}
	return report, nil
}

// containerPayload resolves name references within the datastore and
// returns the API form. A missing referenced container is an error
// unless a dry run already classified it as a create.
func containerPayload(st store.ConfigImporter, p *PortableContainer, datastoreID int64, pending map[string]struct{}) (*api.Container, error) {
	payload := &api.Container{
		Name:          p.Name,
		ContainerType: p.ContainerType,
		Query:         p.Query,
		SelectClause:  p.SelectClause,
		JoinType:      p.JoinType,
		JoinCriteria:  p.JoinCriteria,
		Tags:          p.Tags,
	}
	refs := []struct {
		name   string
		target *int64
	}{
		{p.SourceContainerName, &payload.SourceContainerID},
		{p.LeftContainerName, &payload.LeftContainerID},
		{p.RightContainerName, &payload.RightContainerID},
	}
	for _, ref := range refs {
		if ref.name == "" {
			continue
		}
		if _, wouldCreate := pending[ref.name]; wouldCreate {
			continue
		}
		resolved, err := st.ContainerByName(datastoreID, ref.name)
		if err != nil {
			return nil, err
		}
		if resolved == nil {
			return nil, fmt.Errorf("referenced container %q not found in datastore", ref.name)
		}
		*ref.target = resolved.ID
	}
	return payload, nil
}

// ── Layer 4: computed fields ─────────────────────────────────────────

func importComputedFields(st store.ConfigImporter, fs afero.Fs, t *dsTarget, dryRun bool) (KindReport, error) {
	report := KindReport{}
	containersDir := filepath.Join(t.path, "containers")
	dirs, err := sortedSubdirs(fs, containersDir)
	if err != nil {
		return report, err
	}

	// One fetch serves every container's field reconciliation.
	var byName map[string]*api.Container
	if !t.pendingCreate {
		containers, err := st.ContainersByDatastore(t.id)
		if err != nil {
			return report, err
		}
		byName = make(map[string]*api.Container, len(containers))
		for i := range containers {
			byName[containers[i].Name] = &containers[i]
		}
	}

	for _, d := range dirs {
		fieldsDir := filepath.Join(containersDir, d, "computed_fields")
		files, err := sortedYAMLFiles(fs, fieldsDir)
		if err != nil {
			return report, err
		}
		if len(files) == 0 {
			continue
		}

		var containerName string
		containerFile := filepath.Join(containersDir, d, "_container.yaml")
		if ok, _ := afero.Exists(fs, containerFile); ok {
			var pc PortableContainer
			if err := ReadYAML(fs, containerFile, &pc); err != nil {
				return report, err
			}
			containerName = pc.Name
		}

		for _, file := range files {
			var portable PortableComputedField
			if err := ReadYAML(fs, filepath.Join(fieldsDir, file), &portable); err != nil {
				return report, err
			}
			if portable.Name == "" {
				report.Failed++
				report.Errors = append(report.Errors, fmt.Sprintf("%s/%s: missing name", d, file))
				continue
			}

			if t.pendingCreate {
				report.Created++
				continue
			}

			container, ok := byName[containerName]
			if containerName == "" || !ok {
				if _, wouldCreate := t.pendingContainers[containerName]; wouldCreate {
					report.Created++
					continue
				}
				report.Failed++
				report.Errors = append(report.Errors, fmt.Sprintf("%s/%s: container not found in datastore %d", d, file, t.id))
				continue
			}

			var existing *api.ComputedField
			for i := range container.ComputedFields {
				if container.ComputedFields[i].Name == portable.Name {
					existing = &container.ComputedFields[i]
					break
				}
			}

			if dryRun {
				if existing != nil {
					report.Updated++
				} else {
					report.Created++
				}
				continue
			}

			payload := &api.ComputedField{
				Name:           portable.Name,
				ContainerID:    container.ID,
				Transformation: portable.Transformation,
				SourceFields:   portable.SourceFields,
				Properties:     portable.Properties,
			}
			if existing != nil {
				if _, err := st.UpdateComputedField(existing.ID, payload); err != nil {
					report.Failed++
					report.Errors = append(report.Errors, fmt.Sprintf("%s/%s: %v", d, file, err))
					continue
				}
				report.Updated++
			} else {
				if _, err := st.CreateComputedField(payload); err != nil {
					report.Failed++
					report.Errors = append(report.Errors, fmt.Sprintf("%s/%s: %v", d, file, err))
					continue
				}
				report.Created++
			}
		}
	}
	return report, nil
}

// ── Directory helpers ────────────────────────────────────────────────

func sortedSubdirs(fs afero.Fs, dir string) ([]string, error) {
	if ok, err := afero.DirExists(fs, dir); err != nil || !ok {
		return nil, err
	}
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

func sortedYAMLFiles(fs afero.Fs, dir string) ([]string, error) {
	if ok, err := afero.DirExists(fs, dir); err != nil || !ok {
		return nil, err
	}
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".yaml") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
