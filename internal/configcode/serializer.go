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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)}`)

// WriteYAMLIfChanged renders v as YAML and writes it to path only when the
// rendered bytes differ from the file's current content. Returns whether a
// write happened.
//
// Struct field order drives key order, and yaml.v3 sorts map keys, so the
// rendering is deterministic: re-exporting unchanged state is a no-op for
// version control.
func WriteYAMLIfChanged(fs afero.Fs, path string, v any) (bool, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return false, fmt.Errorf("failed to render %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return false, err
	}
	content := buf.Bytes()

	existing, err := afero.ReadFile(fs, path)
	if err == nil && bytes.Equal(existing, content) {
		return false, nil
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	if err := afero.WriteFile(fs, path, content, 0o644); err != nil {
		return false, err
	}
	return true, nil
}

// ReadYAML decodes the YAML file at path into out.
func ReadYAML(fs afero.Fs, path string, out any) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("malformed yaml in %s: %w", path, err)
	}
	return nil
}

// ResolveEnvVars expands every ${VAR} placeholder in value from the
// process environment. Unset variables are an error, never a silent
// passthrough of the literal placeholder.
func ResolveEnvVars(value string) (string, error) {
	var unresolved []string
	resolved := envVarPattern.ReplaceAllStringFunc(value, func(match string) string {
		name := envVarPattern.FindStringSubmatch(match)[1]
		v, ok := os.LookupEnv(name)
		if !ok {
			unresolved = append(unresolved, name)
			return match
		}
		return v
	})
	if len(unresolved) > 0 {
		return "", fmt.Errorf("unresolved environment variable(s): %s", strings.Join(unresolved, ", "))
	}
	return resolved, nil
}
