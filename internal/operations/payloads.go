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

package operations

import (
	"fmt"
)

// Operation types accepted by the platform's run endpoint.
const (
	TypeCatalog     = "catalog"
	TypeProfile     = "profile"
	TypeScan        = "scan"
	TypeMaterialize = "materialize"
	TypeExport      = "export"
)

// Remediation strategies for scan operations.
const (
	RemediationAppend    = "append"
	RemediationOverwrite = "overwrite"
	RemediationNone      = "none"
)

// Options builds the run payload for one operation type. Validation
// happens per target so a bad option set surfaces as a per-target error.
type Options interface {
	Type() string
	payload(datastoreID int64) (map[string]any, error)
}

// CatalogOptions configures a catalog operation.
type CatalogOptions struct {
	Include  []string
	Prune    bool
	Recreate bool
}

func (CatalogOptions) Type() string { return TypeCatalog }

func (o CatalogOptions) payload(datastoreID int64) (map[string]any, error) {
	p := map[string]any{
		"datastore_id": datastoreID,
		"type":         TypeCatalog,
		"prune":        o.Prune,
		"recreate":     o.Recreate,
	}
	if len(o.Include) > 0 {
		p["include"] = o.Include
	}
	return p, nil
}

// ProfileOptions configures a profile operation. The zero value profiles
// every container with the platform defaults.
type ProfileOptions struct {
	ContainerNames                 []string
	ContainerTags                  []string
	InferenceThreshold             *int
	InferAsDraft                   bool
	MaxRecordsAnalyzedPerPartition *int64
	MaxCountTestingSample          *int64
	PercentTestingThreshold        *float64
	HighCorrelationThreshold       *float64
	GreaterThanTime                string
	GreaterThanBatch               *float64
	HistogramMaxDistinctValues     *int
}

func (ProfileOptions) Type() string { return TypeProfile }

func (o ProfileOptions) payload(datastoreID int64) (map[string]any, error) {
	if o.InferenceThreshold != nil && (*o.InferenceThreshold < 0 || *o.InferenceThreshold > 5) {
		return nil, fmt.Errorf("inference threshold %d out of range 0-5", *o.InferenceThreshold)
	}
	p := map[string]any{
		"datastore_id":   datastoreID,
		"type":           TypeProfile,
		"infer_as_draft": o.InferAsDraft,
	}
	if len(o.ContainerNames) > 0 {
		p["container_names"] = o.ContainerNames
	}
	if len(o.ContainerTags) > 0 {
		p["container_tags"] = o.ContainerTags
	}
	if o.InferenceThreshold != nil {
		p["inference_threshold"] = *o.InferenceThreshold
	}
	if o.MaxRecordsAnalyzedPerPartition != nil {
		p["max_records_analyzed_per_partition"] = *o.MaxRecordsAnalyzedPerPartition
	}
	if o.MaxCountTestingSample != nil {
		p["max_count_testing_sample"] = *o.MaxCountTestingSample
	}
	if o.PercentTestingThreshold != nil {
		p["percent_testing_threshold"] = *o.PercentTestingThreshold
	}
	if o.HighCorrelationThreshold != nil {
		p["high_correlation_threshold"] = *o.HighCorrelationThreshold
	}
	if o.GreaterThanTime != "" {
		p["greater_than_time"] = o.GreaterThanTime
	}
	if o.GreaterThanBatch != nil {
		p["greater_than_batch"] = *o.GreaterThanBatch
	}
	if o.HistogramMaxDistinctValues != nil {
		p["histogram_max_distinct_values"] = *o.HistogramMaxDistinctValues
	}
	return p, nil
}

// ScanOptions configures a scan operation.
type ScanOptions struct {
	ContainerNames                 []string
	ContainerTags                  []string
	Incremental                    bool
	Remediation                    string
	MaxRecordsAnalyzedPerPartition *int64
	EnrichmentSourceRecordLimit    *int64
	GreaterThanTime                string
	GreaterThanBatch               *float64
}

func (ScanOptions) Type() string { return TypeScan }

func (o ScanOptions) payload(datastoreID int64) (map[string]any, error) {
	switch o.Remediation {
	case "", RemediationAppend, RemediationOverwrite, RemediationNone:
	default:
		return nil, fmt.Errorf("remediation %q is not one of append, overwrite, none", o.Remediation)
	}
	p := map[string]any{
		"datastore_id": datastoreID,
		"type":         TypeScan,
		"incremental":  o.Incremental,
	}
	if len(o.ContainerNames) > 0 {
		p["container_names"] = o.ContainerNames
	}
	if len(o.ContainerTags) > 0 {
		p["container_tags"] = o.ContainerTags
	}
	if o.Remediation != "" {
		p["remediation"] = o.Remediation
	}
	if o.MaxRecordsAnalyzedPerPartition != nil {
		p["max_records_analyzed_per_partition"] = *o.MaxRecordsAnalyzedPerPartition
	}
	if o.EnrichmentSourceRecordLimit != nil {
		p["enrichment_source_record_limit"] = *o.EnrichmentSourceRecordLimit
	}
	if o.GreaterThanTime != "" {
		p["greater_than_time"] = o.GreaterThanTime
	}
	if o.GreaterThanBatch != nil {
		p["greater_than_batch"] = *o.GreaterThanBatch
	}
	return p, nil
}

// MaterializeOptions configures a materialize operation, which builds the
// queryable form of the datastore's computed containers and fields.
type MaterializeOptions struct {
	ContainerNames []string
}

func (MaterializeOptions) Type() string { return TypeMaterialize }

func (o MaterializeOptions) payload(datastoreID int64) (map[string]any, error) {
	p := map[string]any{
		"datastore_id": datastoreID,
		"type":         TypeMaterialize,
	}
	if len(o.ContainerNames) > 0 {
		p["container_names"] = o.ContainerNames
	}
	return p, nil
}

// ExportOptions configures an export operation, which writes platform
// metadata assets into the datastore's enrichment store.
type ExportOptions struct {
	AssetType      string
	ContainerIDs   []int64
	IncludeDeleted bool
}

func (ExportOptions) Type() string { return TypeExport }

func (o ExportOptions) payload(datastoreID int64) (map[string]any, error) {
	if o.AssetType == "" {
		return nil, fmt.Errorf("export requires an asset type")
	}
	p := map[string]any{
		"datastore_id":    datastoreID,
		"type":            TypeExport,
		"asset_type":      o.AssetType,
		"include_deleted": o.IncludeDeleted,
	}
	if len(o.ContainerIDs) > 0 {
		p["container_ids"] = o.ContainerIDs
	}
	return p, nil
}
