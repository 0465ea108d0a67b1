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

package store

//go:generate mockgen -destination=../mocks/mock_config_exporter.go -package=mocks github.com/qualytics/qualytics-cli/internal/store ConfigExporter
//go:generate mockgen -destination=../mocks/mock_config_importer.go -package=mocks github.com/qualytics/qualytics-cli/internal/store ConfigImporter
//go:generate mockgen -destination=../mocks/mock_operation_service.go -package=mocks github.com/qualytics/qualytics-cli/internal/store OperationService

// ConfigExporter is everything the export engine reads from the platform.
type ConfigExporter interface {
	DatastoreDescriber
	ContainerLister
	QualityCheckLister
}

// ConfigImporter is everything the import engine needs to reconcile a
// repository against the platform.
type ConfigImporter interface {
	ConnectionDescriber
	ConnectionCreator
	ConnectionUpdater
	DatastoreDescriber
	DatastoreCreator
	DatastoreUpdater
	EnrichmentLinker
	ContainerLister
	ContainerResolver
	ContainerCreator
	ContainerUpdater
	ComputedFieldCreator
	ComputedFieldUpdater
	QualityCheckLister
	QualityCheckCreator
	QualityCheckUpdater
}

// OperationService is the surface the operation lifecycle controller
// drives.
type OperationService interface {
	OperationRunner
	OperationDescriber
	OperationAborter
}
