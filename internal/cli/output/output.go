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

// Package output renders API resources for the terminal. Structured
// output (yaml or json) is for piping; tables are for humans. Secret
// values never reach either form.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/qualytics/qualytics-cli/internal/api"
)

// Redacted replaces secret values in displayed resources.
const Redacted = "*** redacted ***"

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Print renders v to w in the requested format. An empty format defaults
// to yaml.
func Print(w io.Writer, format string, v any) error {
	switch format {
	case "", FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown format %q, expected yaml or json", format)
	}
}

// RedactConnection returns a display copy with secret fields masked.
func RedactConnection(c *api.Connection) *api.Connection {
	masked := *c
	if masked.Password != "" {
		masked.Password = Redacted
	}
	if masked.SecretKey != "" {
		masked.SecretKey = Redacted
	}
	if masked.AccessKey != "" {
		masked.AccessKey = Redacted
	}
	if masked.CredentialsPayload != "" {
		masked.CredentialsPayload = Redacted
	}
	return &masked
}

// NewTable returns a table writer in the CLI's house style.
func NewTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}
