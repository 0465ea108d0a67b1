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

package validate

import (
	"testing"
)

func TestURL(t *testing.T) {
	tests := []struct {
		name    string
		val     string
		wantErr bool
	}{
		{
			name:    "Empty value",
			val:     "",
			wantErr: true,
		},
		{
			name:    "Valid HTTPS URL",
			val:     "https://acme.qualytics.io",
			wantErr: false,
		},
		{
			name:    "Valid HTTP URL",
			val:     "http://localhost:8080",
			wantErr: false,
		},
		{
			name:    "Missing scheme",
			val:     "acme.qualytics.io",
			wantErr: true,
		},
		{
			name:    "Wrong scheme",
			val:     "ftp://acme.qualytics.io",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		val := tt.val
		wantErr := tt.wantErr
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := URL(val); (err != nil) != wantErr {
				t.Errorf("URL() error = %v, wantErr %v", err, wantErr)
			}
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		val  string
		want string
	}{
		{
			name: "Bare host",
			val:  "https://acme.qualytics.io",
			want: "https://acme.qualytics.io/api/",
		},
		{
			name: "Trailing slash",
			val:  "https://acme.qualytics.io/",
			want: "https://acme.qualytics.io/api/",
		},
		{
			name: "Already has api suffix",
			val:  "https://acme.qualytics.io/api",
			want: "https://acme.qualytics.io/api/",
		},
		{
			name: "Api suffix with slash",
			val:  "https://acme.qualytics.io/api/",
			want: "https://acme.qualytics.io/api/",
		},
	}
	for _, tt := range tests {
		val := tt.val
		want := tt.want
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeURL(val); got != want {
				t.Errorf("NormalizeURL() = %v, want %v", got, want)
			}
		})
	}
}

func TestRemediationStrategy(t *testing.T) {
	for _, valid := range []string{"append", "overwrite", "none"} {
		if err := RemediationStrategy(valid); err != nil {
			t.Errorf("RemediationStrategy(%q) unexpected error: %v", valid, err)
		}
	}
	if err := RemediationStrategy("replace"); err == nil {
		t.Error("RemediationStrategy(replace) expected error, got nil")
	}
}

func TestInferenceThreshold(t *testing.T) {
	for _, valid := range []int{0, 3, 5} {
		if err := InferenceThreshold(valid); err != nil {
			t.Errorf("InferenceThreshold(%d) unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []int{-1, 6} {
		if err := InferenceThreshold(invalid); err == nil {
			t.Errorf("InferenceThreshold(%d) expected error, got nil", invalid)
		}
	}
}

func TestAnomalyStatus(t *testing.T) {
	tests := []struct {
		name     string
		val      string
		archived bool
		wantErr  bool
	}{
		{name: "Open active", val: "Active", archived: false, wantErr: false},
		{name: "Open acknowledged", val: "Acknowledged", archived: false, wantErr: false},
		{name: "Open resolved rejected", val: "Resolved", archived: false, wantErr: true},
		{name: "Archived resolved", val: "Resolved", archived: true, wantErr: false},
		{name: "Archived discarded", val: "Discarded", archived: true, wantErr: false},
		{name: "Archived active rejected", val: "Active", archived: true, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := AnomalyStatus(tt.val, tt.archived); (err != nil) != tt.wantErr {
				t.Errorf("AnomalyStatus() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
