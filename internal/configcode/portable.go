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
	"github.com/qualytics/qualytics-cli/internal/api"
)

// Portable forms are what the file tree holds: environment-specific fields
// (IDs, audit metadata, counters, scores) are gone, references are by name,
// and secrets are ${ENV_VAR} placeholders. Field order in the structs is
// the serialization order, so it is part of the on-disk contract.

// PortableConnection is the serialized form of a connection.
type PortableConnection struct {
	Name               string         `yaml:"name"`
	Type               string         `yaml:"type,omitempty"`
	Host               string         `yaml:"host,omitempty"`
	Port               int            `yaml:"port,omitempty"`
	Username           string         `yaml:"username,omitempty"`
	Password           string         `yaml:"password,omitempty"`
	URI                string         `yaml:"uri,omitempty"`
	AccessKey          string         `yaml:"access_key,omitempty"`
	SecretKey          string         `yaml:"secret_key,omitempty"`
	CredentialsPayload string         `yaml:"credentials_payload,omitempty"`
	Catalog            string         `yaml:"catalog,omitempty"`
	JDBCFetchSize      int            `yaml:"jdbc_fetch_size,omitempty"`
	MaxParallelization int            `yaml:"max_parallelization,omitempty"`
	Parameters         map[string]any `yaml:"parameters,omitempty"`
}

// PortableDatastore is the serialized form of a datastore. The connection
// and enrichment references are carried by name.
type PortableDatastore struct {
	Name                    string   `yaml:"name"`
	Type                    string   `yaml:"type,omitempty"`
	Database                string   `yaml:"database,omitempty"`
	Schema                  string   `yaml:"schema,omitempty"`
	Tags                    []string `yaml:"tags,omitempty"`
	ConnectionName          string   `yaml:"connection_name,omitempty"`
	EnrichmentDatastoreName string   `yaml:"enrichment_datastore_name,omitempty"`
	TriggerCatalog          bool     `yaml:"trigger_catalog,omitempty"`
}

// PortableContainer is the serialized form of a computed container.
// Source container references are carried by name and resolved within the
// target datastore on import.
type PortableContainer struct {
	Name                string   `yaml:"name"`
	ContainerType       string   `yaml:"container_type"`
	Query               string   `yaml:"query,omitempty"`
	SelectClause        string   `yaml:"select_clause,omitempty"`
	JoinType            string   `yaml:"join_type,omitempty"`
	JoinCriteria        string   `yaml:"join_criteria,omitempty"`
	Tags                []string `yaml:"tags,omitempty"`
	SourceContainerName string   `yaml:"source_container_name,omitempty"`
	LeftContainerName   string   `yaml:"left_container_name,omitempty"`
	RightContainerName  string   `yaml:"right_container_name,omitempty"`
	DatastoreName       string   `yaml:"datastore_name,omitempty"`
}

// PortableComputedField is the serialized form of a computed field. Its
// container is implied by file location.
type PortableComputedField struct {
	Name           string         `yaml:"name"`
	Transformation string         `yaml:"transformation"`
	SourceFields   []string       `yaml:"source_fields"`
	Properties     map[string]any `yaml:"properties,omitempty"`
}

// PortableCheck is the serialized form of a quality check. The UID lives
// in AdditionalMetadata under UIDKey.
type PortableCheck struct {
	RuleType           string            `yaml:"rule_type"`
	Description        string            `yaml:"description,omitempty"`
	Container          string            `yaml:"container"`
	Fields             []string          `yaml:"fields"`
	Coverage           float64           `yaml:"coverage"`
	Filter             string            `yaml:"filter,omitempty"`
	Properties         map[string]any    `yaml:"properties,omitempty"`
	Tags               []string          `yaml:"tags"`
	Status             string            `yaml:"status,omitempty"`
	AdditionalMetadata map[string]string `yaml:"additional_metadata,omitempty"`

	// SourceFile is the tree-relative path the check was loaded from.
	// Never serialized; used in import error messages.
	SourceFile string `yaml:"-"`
}

// internal tracking keys the platform writes into check metadata when it
// clones checks between datastores
var internalMetadataKeys = map[string]struct{}{
	"from quality check id": {},
	"main datastore id":     {},
}

// StripConnection converts an API connection into its portable form,
// replacing any populated secret field with an env var placeholder.
func StripConnection(conn *api.Connection) *PortableConnection {
	p := &PortableConnection{
		Name:               conn.Name,
		Type:               conn.Type,
		Host:               conn.Host,
		Port:               conn.Port,
		Username:           conn.Username,
		URI:                conn.URI,
		Catalog:            conn.Catalog,
		JDBCFetchSize:      conn.JDBCFetchSize,
		MaxParallelization: conn.MaxParallelization,
		Parameters:         conn.Parameters,
	}
	if conn.Password != "" {
		p.Password = EnvVarPlaceholder(conn.Name, "password")
	}
	if conn.SecretKey != "" {
		p.SecretKey = EnvVarPlaceholder(conn.Name, "secret_key")
	}
	if conn.CredentialsPayload != "" {
		p.CredentialsPayload = EnvVarPlaceholder(conn.Name, "credentials_payload")
	}
	if conn.AccessKey != "" {
		p.AccessKey = EnvVarPlaceholder(conn.Name, "access_key")
	}
	return p
}

// StripDatastore converts an API datastore into its portable form. The
// connection and enrichment objects collapse to name references.
func StripDatastore(ds *api.Datastore) *PortableDatastore {
	p := &PortableDatastore{
		Name:           ds.Name,
		Type:           ds.Type,
		Database:       ds.Database,
		Schema:         ds.Schema,
		Tags:           ds.Tags,
		TriggerCatalog: ds.TriggerCatalog,
	}
	if ds.Connection != nil {
		p.ConnectionName = ds.Connection.Name
	}
	if ds.EnrichmentDatastore != nil {
		p.EnrichmentDatastoreName = ds.EnrichmentDatastore.Name
	}
	return p
}

// StripContainer converts an API container into its portable form. Only
// computed kinds should reach here; ID references collapse to names.
func StripContainer(c *api.Container, datastoreName string) *PortableContainer {
	p := &PortableContainer{
		Name:          c.Name,
		ContainerType: c.ContainerType,
		Query:         c.Query,
		SelectClause:  c.SelectClause,
		JoinType:      c.JoinType,
		JoinCriteria:  c.JoinCriteria,
		Tags:          c.Tags,
		DatastoreName: datastoreName,
	}
	if c.SourceContainer != nil {
		p.SourceContainerName = c.SourceContainer.Name
	}
	if c.LeftContainer != nil {
		p.LeftContainerName = c.LeftContainer.Name
	}
	if c.RightContainer != nil {
		p.RightContainerName = c.RightContainer.Name
	}
	return p
}

// StripComputedField converts an API computed field into its portable
// form, normalizing the transformation kind field name.
func StripComputedField(f *api.ComputedField) *PortableComputedField {
	sourceFields := f.SourceFields
	if sourceFields == nil {
		sourceFields = []string{}
	}
	return &PortableComputedField{
		Name:           f.Name,
		Transformation: f.TransformationKind(),
		SourceFields:   sourceFields,
		Properties:     f.Properties,
	}
}

// StripCheck converts an API quality check into its portable form. The
// deterministic UID is injected into additional_metadata, internal
// tracking keys are dropped, and refs collapse to name lists.
func StripCheck(check *api.QualityCheck) *PortableCheck {
	p := &PortableCheck{
		RuleType:    check.RuleType,
		Description: check.Description,
		Coverage:    check.Coverage,
		Filter:      check.Filter,
		Properties:  check.Properties,
		Status:      check.Status,
		Fields:      []string{},
		Tags:        []string{},
	}
	if check.Container != nil {
		p.Container = check.Container.Name
	}
	for _, f := range check.Fields {
		p.Fields = append(p.Fields, f.Name)
	}
	for _, t := range check.GlobalTags {
		p.Tags = append(p.Tags, t.Name)
	}

	meta := make(map[string]string, len(check.AdditionalMetadata)+1)
	for k, v := range check.AdditionalMetadata {
		if _, internal := internalMetadataKeys[k]; internal {
			continue
		}
		meta[k] = v
	}
	meta[UIDKey] = CheckUID(p.Container, p.RuleType, p.Fields)
	p.AdditionalMetadata = meta
	return p
}

// UID returns the check's identity, preferring recomputation from the
// portable attributes over whatever the metadata carries.
func (p *PortableCheck) UID() string {
	return CheckUID(p.Container, p.RuleType, p.Fields)
}
