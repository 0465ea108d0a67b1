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

package api

// Page is the paginated envelope returned by every listing endpoint.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
}

// Ref is an embedded reference to another resource.
//
// Resources that pass through YAML definition files or yaml display
// output carry yaml tags alongside the wire tags.
type Ref struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Connection holds the source system credentials a datastore reads through.
// Secret-valued fields (Password, SecretKey, CredentialsPayload, AccessKey)
// are masked in API responses.
type Connection struct {
	ID                 int64          `json:"id,omitempty" yaml:"id,omitempty"`
	Name               string         `json:"name" yaml:"name"`
	Type               string         `json:"type,omitempty" yaml:"type,omitempty"`
	Host               string         `json:"host,omitempty" yaml:"host,omitempty"`
	Port               int            `json:"port,omitempty" yaml:"port,omitempty"`
	Username           string         `json:"username,omitempty" yaml:"username,omitempty"`
	Password           string         `json:"password,omitempty" yaml:"password,omitempty"`
	URI                string         `json:"uri,omitempty" yaml:"uri,omitempty"`
	AccessKey          string         `json:"access_key,omitempty" yaml:"access_key,omitempty"`
	SecretKey          string         `json:"secret_key,omitempty" yaml:"secret_key,omitempty"`
	CredentialsPayload string         `json:"credentials_payload,omitempty" yaml:"credentials_payload,omitempty"`
	Catalog            string         `json:"catalog,omitempty" yaml:"catalog,omitempty"`
	JDBCFetchSize      int            `json:"jdbc_fetch_size,omitempty" yaml:"jdbc_fetch_size,omitempty"`
	MaxParallelization int            `json:"max_parallelization,omitempty" yaml:"max_parallelization,omitempty"`
	Parameters         map[string]any `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Created            string         `json:"created,omitempty" yaml:"created,omitempty"`
}

// Datastore is a configured source of containers. Connection and
// EnrichmentDatastore are populated on reads; ConnectionID is what create
// and update payloads carry.
type Datastore struct {
	ID                  int64       `json:"id,omitempty" yaml:"id,omitempty"`
	Name                string      `json:"name" yaml:"name"`
	Type                string      `json:"type,omitempty" yaml:"type,omitempty"`
	Database            string      `json:"database,omitempty" yaml:"database,omitempty"`
	Schema              string      `json:"schema,omitempty" yaml:"schema,omitempty"`
	Tags                []string    `json:"tags,omitempty" yaml:"tags,omitempty"`
	ConnectionID        int64       `json:"connection_id,omitempty" yaml:"connection_id,omitempty"`
	Connection          *Connection `json:"connection,omitempty" yaml:"connection,omitempty"`
	EnrichmentDatastore *Datastore  `json:"enrichment_datastore,omitempty" yaml:"enrichment_datastore,omitempty"`
	TriggerCatalog      bool        `json:"trigger_catalog,omitempty" yaml:"trigger_catalog,omitempty"`
	Created             string      `json:"created,omitempty" yaml:"created,omitempty"`
}

// Computed container kinds. Non-computed kinds (table, view, file) are
// created only by the remote catalog process and are read-only here.
const (
	ContainerComputedTable = "computed_table"
	ContainerComputedFile  = "computed_file"
	ContainerComputedJoin  = "computed_join"
)

// IsComputedContainer reports whether a container kind can be created,
// updated, or deleted through this client.
func IsComputedContainer(containerType string) bool {
	switch containerType {
	case ContainerComputedTable, ContainerComputedFile, ContainerComputedJoin:
		return true
	default:
		return false
	}
}

// Container is a table, view, file, or computed equivalent inside a
// datastore. The *Container refs are populated on reads; the *ContainerID
// fields are what create and update payloads carry.
type Container struct {
	ID                int64           `json:"id,omitempty" yaml:"id,omitempty"`
	Name              string          `json:"name" yaml:"name"`
	ContainerType     string          `json:"container_type,omitempty" yaml:"container_type,omitempty"`
	Query             string          `json:"query,omitempty" yaml:"query,omitempty"`
	SelectClause      string          `json:"select_clause,omitempty" yaml:"select_clause,omitempty"`
	JoinType          string          `json:"join_type,omitempty" yaml:"join_type,omitempty"`
	JoinCriteria      string          `json:"join_criteria,omitempty" yaml:"join_criteria,omitempty"`
	Tags              []string        `json:"tags,omitempty" yaml:"tags,omitempty"`
	DatastoreID       int64           `json:"datastore_id,omitempty" yaml:"datastore_id,omitempty"`
	SourceContainer   *Ref            `json:"source_container,omitempty" yaml:"source_container,omitempty"`
	LeftContainer     *Ref            `json:"left_container,omitempty" yaml:"left_container,omitempty"`
	RightContainer    *Ref            `json:"right_container,omitempty" yaml:"right_container,omitempty"`
	SourceContainerID int64           `json:"source_container_id,omitempty" yaml:"source_container_id,omitempty"`
	LeftContainerID   int64           `json:"left_container_id,omitempty" yaml:"left_container_id,omitempty"`
	RightContainerID  int64           `json:"right_container_id,omitempty" yaml:"right_container_id,omitempty"`
	ComputedFields    []ComputedField `json:"computed_fields,omitempty" yaml:"computed_fields,omitempty"`
	Created           string          `json:"created,omitempty" yaml:"created,omitempty"`
}

// ContainerListing is the lightweight shape returned by the non-paginated
// listing endpoint used for name-to-ID resolution.
type ContainerListing struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ContainerType string `json:"container_type,omitempty"`
}

// ComputedField is a derived field on a container. API responses report
// the kind under transformation_type; create and update payloads send it
// as transformation.
type ComputedField struct {
	ID                 int64          `json:"id,omitempty" yaml:"id,omitempty"`
	Name               string         `json:"name" yaml:"name"`
	ContainerID        int64          `json:"container_id,omitempty" yaml:"container_id,omitempty"`
	TransformationType string         `json:"transformation_type,omitempty" yaml:"transformation_type,omitempty"`
	Transformation     string         `json:"transformation,omitempty" yaml:"transformation,omitempty"`
	SourceFields       []string       `json:"source_fields" yaml:"source_fields"`
	Properties         map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
	AdditionalMetadata map[string]any `json:"additional_metadata,omitempty" yaml:"additional_metadata,omitempty"`
}

// TransformationKind returns the transformation regardless of which field
// the payload populated.
func (f *ComputedField) TransformationKind() string {
	if f.Transformation != "" {
		return f.Transformation
	}
	return f.TransformationType
}

// QualityCheck is an inferred or authored rule applied to a container.
type QualityCheck struct {
	ID                 int64             `json:"id,omitempty" yaml:"id,omitempty"`
	RuleType           string            `json:"rule_type" yaml:"rule_type"`
	Description        string            `json:"description,omitempty" yaml:"description,omitempty"`
	Container          *Ref              `json:"container,omitempty" yaml:"container,omitempty"`
	Fields             []Ref             `json:"fields,omitempty" yaml:"fields,omitempty"`
	Coverage           float64           `json:"coverage,omitempty" yaml:"coverage,omitempty"`
	Filter             string            `json:"filter,omitempty" yaml:"filter,omitempty"`
	Properties         map[string]any    `json:"properties,omitempty" yaml:"properties,omitempty"`
	GlobalTags         []Ref             `json:"global_tags,omitempty" yaml:"global_tags,omitempty"`
	AdditionalMetadata map[string]string `json:"additional_metadata,omitempty" yaml:"additional_metadata,omitempty"`
	Status             string            `json:"status,omitempty" yaml:"status,omitempty"`
	Created            string            `json:"created,omitempty" yaml:"created,omitempty"`
	AnomalyCount       int               `json:"anomaly_count,omitempty" yaml:"anomaly_count,omitempty"`
	IsNew              bool              `json:"is_new,omitempty" yaml:"is_new,omitempty"`
}

// CheckPayload is the request body for quality check creates and updates.
// ContainerID and Rule are create-only; updates keep the check bound to
// its container and rule type.
type CheckPayload struct {
	ContainerID        int64             `json:"container_id,omitempty"`
	Rule               string            `json:"rule,omitempty"`
	Description        string            `json:"description"`
	Fields             []string          `json:"fields"`
	Coverage           float64           `json:"coverage"`
	Filter             string            `json:"filter,omitempty"`
	Properties         map[string]any    `json:"properties"`
	Tags               []string          `json:"tags"`
	AdditionalMetadata map[string]string `json:"additional_metadata,omitempty"`
	Status             string            `json:"status,omitempty"`
}

// Anomaly statuses. Open anomalies are Active or Acknowledged; archiving
// transitions them to one of the archived statuses.
const (
	AnomalyActive       = "Active"
	AnomalyAcknowledged = "Acknowledged"
	AnomalyResolved     = "Resolved"
	AnomalyInvalid      = "Invalid"
	AnomalyDuplicate    = "Duplicate"
	AnomalyDiscarded    = "Discarded"
)

// Anomaly is a detected data-quality violation. Anomalies are never
// created by this client, only transitioned between statuses or deleted.
type Anomaly struct {
	ID          int64    `json:"id" yaml:"id"`
	Type        string   `json:"anomaly_type,omitempty" yaml:"anomaly_type,omitempty"`
	Status      string   `json:"status,omitempty" yaml:"status,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Container   *Ref     `json:"container,omitempty" yaml:"container,omitempty"`
	Datastore   *Ref     `json:"datastore,omitempty" yaml:"datastore,omitempty"`
	RuleTypes   []string `json:"rule_types,omitempty" yaml:"rule_types,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Created     string   `json:"created,omitempty" yaml:"created,omitempty"`
}

// Operation results reported by the platform. Result is empty while the
// operation is still queued.
const (
	OperationRunning = "running"
	OperationSuccess = "success"
	OperationFailure = "failure"
	OperationAborted = "aborted"
)

// Operation is one asynchronous job execution against a datastore.
type Operation struct {
	ID                 int64   `json:"id"`
	Type               string  `json:"type,omitempty"`
	DatastoreID        int64   `json:"datastore_id,omitempty"`
	Result             string  `json:"result,omitempty"`
	Message            *string `json:"message"`
	StartTime          *string `json:"start_time"`
	EndTime            *string `json:"end_time"`
	ContainersAnalyzed int64   `json:"containers_analyzed,omitempty"`
	RecordsProcessed   int64   `json:"records_processed,omitempty"`
}

// Finished reports whether the operation reached a terminal remote state.
func (o *Operation) Finished() bool {
	return o.EndTime != nil && *o.EndTime != ""
}

// PlatformInfo is the instance build information reported by the version
// endpoint.
type PlatformInfo struct {
	Version string `json:"version"`
}
