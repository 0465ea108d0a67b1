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

//go:build unit

package configcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"orders", "orders"},
		{"My Table!", "my_table"},
		{"field-1", "field_1"},
		{"  spaced  out  ", "spaced_out"},
		{"UPPER_case", "upper_case"},
		{"___", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestCheckUID(t *testing.T) {
	tests := []struct {
		name      string
		container string
		rule      string
		fields    []string
		want      string
	}{
		{
			name:      "single field",
			container: "orders",
			rule:      "notNull",
			fields:    []string{"order_id"},
			want:      "orders__notnull__order_id",
		},
		{
			name:      "fields sorted before joining",
			container: "users",
			rule:      "unique",
			fields:    []string{"email", "age", "name"},
			want:      "users__unique__age_email_name",
		},
		{
			name:      "no fields",
			container: "products",
			rule:      "volumetric",
			fields:    nil,
			want:      "products__volumetric",
		},
		{
			name:      "special characters slugified",
			container: "My Table!",
			rule:      "notNull",
			fields:    []string{"field-1"},
			want:      "my_table__notnull__field_1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckUID(tt.container, tt.rule, tt.fields))
		})
	}
}

func TestCheckUIDFieldOrderInvariance(t *testing.T) {
	a := CheckUID("orders", "unique", []string{"b", "a"})
	b := CheckUID("orders", "unique", []string{"a", "b"})
	assert.Equal(t, a, b)
}

func TestCheckFileName(t *testing.T) {
	tests := []struct {
		name   string
		rule   string
		fields []string
		want   string
	}{
		{"single field", "notNull", []string{"email"}, "notnull__email.yaml"},
		{"multi field", "unique", []string{"id", "name"}, "unique__id_name.yaml"},
		{"no fields", "volumetric", nil, "volumetric.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckFileName(tt.rule, tt.fields))
		})
	}
}

func TestEnvVarPlaceholder(t *testing.T) {
	assert.Equal(t, "${MY_POSTGRES_PASSWORD}", EnvVarPlaceholder("My Postgres", "password"))
	assert.Equal(t, "${S3_PROD_SECRET_KEY}", EnvVarPlaceholder("s3-prod", "secret_key"))
}
