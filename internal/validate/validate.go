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

package validate

import (
	"fmt"
	"net/url"
	"strings"
)

// URL checks that val parses as an absolute http(s) URL.
func URL(val string) error {
	if val == "" {
		return fmt.Errorf("URL must not be empty")
	}
	u, err := url.Parse(val)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", val, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid URL %q: scheme must be http or https", val)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid URL %q: missing host", val)
	}
	return nil
}

// NormalizeURL ensures val ends in "/api/" the way the platform expects,
// preserving an already-correct value.
func NormalizeURL(val string) string {
	v := strings.TrimRight(val, "/")
	if !strings.HasSuffix(v, "/api") {
		v += "/api"
	}
	return v + "/"
}

// RemediationStrategy checks a scan remediation value.
func RemediationStrategy(val string) error {
	switch val {
	case "append", "overwrite", "none":
		return nil
	default:
		return fmt.Errorf("invalid remediation strategy %q: must be append, overwrite, or none", val)
	}
}

// InferenceThreshold checks a profile inference threshold.
func InferenceThreshold(val int) error {
	if val < 0 || val > 5 {
		return fmt.Errorf("invalid inference threshold %d: must be between 0 and 5", val)
	}
	return nil
}

// AnomalyStatus checks an anomaly status transition target. Open statuses
// apply to updates; archived statuses apply to deletes.
func AnomalyStatus(val string, archived bool) error {
	open := map[string]bool{"Active": true, "Acknowledged": true}
	arch := map[string]bool{"Resolved": true, "Invalid": true, "Duplicate": true, "Discarded": true}
	if archived {
		if !arch[val] {
			return fmt.Errorf("invalid archived status %q: must be Resolved, Invalid, Duplicate, or Discarded", val)
		}
		return nil
	}
	if !open[val] {
		return fmt.Errorf("invalid status %q: must be Active or Acknowledged", val)
	}
	return nil
}
