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

package flag

const (
	URL                = "url"                 // URL flag to set the Qualytics instance URL
	Token              = "token"               // Token flag to set the bearer token
	SSLNoVerify        = "ssl-no-verify"       // SSLNoVerify flag to skip TLS certificate verification
	Debug              = "debug"               // Debug flag to raise log verbosity
	DatastoreID        = "datastore-id"        // DatastoreID flag, repeatable
	ContainerID        = "container-id"        // ContainerID flag
	OperationID        = "operation-id"        // OperationID flag, repeatable
	Output             = "output"              // Output flag for the export root directory
	OutputShort        = "o"                   // OutputShort short form of Output
	Input              = "input"               // Input flag for the import root directory
	InputShort         = "i"                   // InputShort short form of Input
	Include            = "include"             // Include flag selecting resource kinds or container types
	DryRun             = "dry-run"             // DryRun flag to preview an import
	Background         = "background"          // Background flag to skip foreground polling
	PollInterval       = "poll-interval"       // PollInterval flag in seconds
	Timeout            = "timeout"             // Timeout flag in seconds
	ContainerNames     = "container-names"     // ContainerNames flag, comma separated
	ContainerTags      = "container-tags"      // ContainerTags flag, comma separated
	Prune              = "prune"               // Prune flag for catalog
	Recreate           = "recreate"            // Recreate flag for catalog
	InferAsDraft       = "infer-as-draft"      // InferAsDraft flag for profile
	InferenceThreshold = "inference-threshold" // InferenceThreshold flag for profile
	MaxRecords         = "max-records"         // MaxRecords flag for profile/scan partition limits
	Incremental        = "incremental"         // Incremental flag for scan
	Remediation        = "remediation"         // Remediation flag for scan
	Name               = "name"                // Name flag
	ID                 = "id"                  // ID flag
	Status             = "status"              // Status flag
	Archive            = "archive"             // Archive flag for anomaly/check deletes
	Tags               = "tags"                // Tags flag, comma separated
	Format             = "format"              // Format flag for display output (yaml or json)
	Page               = "page"                // Page flag for listings
	Size               = "size"                // Size flag for the listing page size
	File               = "file"                // File flag pointing at a resource definition
	FileShort          = "f"                   // FileShort short form of File
	EnrichmentID       = "enrichment-id"       // EnrichmentID flag to link an enrichment datastore
	ForceDropFields    = "force-drop-fields"   // ForceDropFields flag for container updates
	AssetType          = "asset-type"          // AssetType flag for export operations
	IncludeDeleted     = "include-deleted"     // IncludeDeleted flag for export operations
)
