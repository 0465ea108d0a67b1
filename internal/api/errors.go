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

package api

import (
	"errors"
	"fmt"
)

// Error categories raised by the client. Callers match with errors.Is.
var (
	ErrAuthentication = errors.New("authentication failed")
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("conflict")
	ErrServer         = errors.New("server error")
)

// APIError carries the HTTP status, response body, and request URL of a
// non-2xx response. It wraps one of the category sentinels above so that
// errors.Is(err, api.ErrNotFound) works through any further wrapping.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
	kind       error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

func newAPIError(status int, message, url string) *APIError {
	e := &APIError{StatusCode: status, Message: message, URL: url}
	switch {
	case status == 401 || status == 403:
		e.kind = ErrAuthentication
	case status == 404:
		e.kind = ErrNotFound
	case status == 409:
		e.kind = ErrConflict
	case status >= 500:
		e.kind = ErrServer
	}
	return e
}
