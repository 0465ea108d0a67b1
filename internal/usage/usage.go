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

package usage

const (
	URL                = "Base URL of the Qualytics instance, for example https://acme.qualytics.io."
	Token              = "Bearer token used to authenticate against the instance."
	SSLNoVerify        = "Flag that disables TLS certificate verification. Use only against instances with self-signed certificates."
	Debug              = "Debug log level."
	DatastoreID        = "One or more datastore IDs. Repeat the flag or pass a comma-separated list."
	OperationID        = "One or more operation IDs. Repeat the flag or pass a comma-separated list."
	OperationDatastore = "Datastore whose operations are listed."
	ExportOutput       = "Root output directory for the exported configuration tree."
	ImportInput        = "Root input directory holding an exported configuration tree."
	IncludeKinds       = "Comma-separated resource kinds to include: connections, datastores, containers, computed_fields, checks. Defaults to all."
	DryRun             = "Flag that previews the import, reporting what would be created or updated without mutating the instance."
	Background         = "Flag that returns immediately after triggering the operation instead of polling for completion."
	PollInterval       = "Seconds between operation status polls."
	Timeout            = "Seconds to wait for a foreground operation before giving up. The operation keeps running server-side."
	CatalogInclude     = "Comma-separated container types to catalog: table, view, file."
	CatalogPrune       = "Flag that removes containers no longer present in the source."
	CatalogRecreate    = "Flag that drops and recreates previously cataloged containers."
	ContainerNames     = "Comma-separated container names to restrict the operation to."
	ContainerTags      = "Comma-separated container tags to restrict the operation to."
	InferenceThreshold = "Check inference threshold between 0 (no inference) and 5 (most aggressive)."
	InferAsDraft       = "Flag that creates inferred checks in Draft status."
	MaxRecords         = "Maximum records analyzed per partition."
	Incremental        = "Flag that scans only records added since the last scan."
	Remediation        = "Remediation strategy for anomalous records: append, overwrite, or none."
	AnomalyStatus      = "Status to transition the anomaly to. Open statuses: Active, Acknowledged. Archived statuses: Resolved, Invalid, Duplicate, Discarded."
	Archive            = "Flag that archives instead of hard-deleting."
	Tags               = "Comma-separated tag names."
	Format             = "Display format: yaml or json."
	File               = "Path to a YAML file holding the resource definition."
	EnrichmentID       = "ID of the enrichment datastore to link."
	AssetType          = "Metadata asset type to export into the enrichment datastore, for example anomalies or quality_checks."
	IncludeDeleted     = "Flag that includes soft-deleted records in the export."
	ContainerID        = "One or more container IDs. Repeat the flag or pass a comma-separated list."
	ID                 = "Numeric ID of the resource."
	Name               = "Name of the resource."
	Page               = "Page number to fetch."
	Size               = "Number of items per page."
	ArchiveStatus      = "Archived status recorded with --archive: Resolved, Invalid, Duplicate, or Discarded."
	CheckStatus        = "Check status filter: Active or Draft."
	CheckExportOutput  = "Output directory for the exported check files."
	CheckImportInput   = "Input directory holding exported check files."
	ForceDropFields    = "Flag that drops fields removed by the new definition even when checks still reference them."
)
