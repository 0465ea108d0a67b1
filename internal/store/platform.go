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

import (
	"github.com/qualytics/qualytics-cli/internal/api"
)

//go:generate mockgen -destination=../mocks/mock_platform.go -package=mocks github.com/qualytics/qualytics-cli/internal/store PlatformDescriber

type PlatformDescriber interface {
	PlatformInfo() (*api.PlatformInfo, error)
}

// PlatformInfo fetches the instance's build information. It doubles as a
// cheap authenticated reachability probe.
func (s *Store) PlatformInfo() (*api.PlatformInfo, error) {
	var result api.PlatformInfo
	if err := s.client.Get(s.ctx, "version", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
