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

// Package configcode implements the config-as-code engine: stable identity
// computation, portable YAML forms, and the export/import orchestrators
// that move platform configuration through a git-friendly file tree.
package configcode

import (
	"fmt"
	"sort"
	"strings"
)

// UIDKey is the reserved additional_metadata key that carries a check's
// stable identity across environments.
const UIDKey = "_qualytics_check_uid"

// Slugify lowercases text and collapses every non-alphanumeric run into a
// single underscore. Used for directory names, file names, and env var
// prefixes, so it must stay stable across releases.
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}

// CheckUID computes the natural key of a quality check from its container
// name, rule type, and field names. Field names are sorted before joining
// so the UID is invariant to the order fields were specified in.
func CheckUID(containerName, ruleType string, fields []string) string {
	uid := Slugify(containerName) + "__" + Slugify(ruleType)
	if len(fields) == 0 {
		return uid
	}
	slugs := make([]string, 0, len(fields))
	for _, f := range fields {
		slugs = append(slugs, Slugify(f))
	}
	sort.Strings(slugs)
	return uid + "__" + strings.Join(slugs, "_")
}

// CheckFileName returns the base file name for a check: rule type and
// field names, slugified. Duplicate handling is the exporter's concern.
func CheckFileName(ruleType string, fields []string) string {
	name := Slugify(ruleType)
	if len(fields) > 0 {
		slugs := make([]string, 0, len(fields))
		for _, f := range fields {
			slugs = append(slugs, Slugify(f))
		}
		sort.Strings(slugs)
		name += "__" + strings.Join(slugs, "_")
	}
	return name + ".yaml"
}

// EnvVarPlaceholder derives the ${VAR} placeholder written in place of a
// connection's secret field.
func EnvVarPlaceholder(connectionName, field string) string {
	prefix := strings.ToUpper(Slugify(connectionName))
	return fmt.Sprintf("${%s_%s}", prefix, strings.ToUpper(field))
}
