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

// Package store wraps the raw API client in per-resource operations and
// narrow capability interfaces so business logic can be tested against
// mocks.
package store

import (
	"context"

	"github.com/qualytics/qualytics-cli/internal/api"
	"github.com/qualytics/qualytics-cli/internal/config"
	"github.com/qualytics/qualytics-cli/internal/validate"
)

const (
	// MaxAPIPageSize is the largest page the listing endpoints accept.
	MaxAPIPageSize = 100

	// lookupPageSize is used for name-resolution walks.
	lookupPageSize = 50
)

// Store encapsulates access to the Qualytics API for one invocation.
type Store struct {
	ctx    context.Context
	client *api.Client
}

// New returns a Store bound to the given client.
func New(ctx context.Context, client *api.Client) *Store {
	return &Store{ctx: ctx, client: client}
}

// NewFromProfile builds the Store from the persisted profile, validating
// the token before any request is made.
func NewFromProfile(ctx context.Context, p *config.Profile) (*Store, error) {
	if err := p.ValidateToken(); err != nil {
		return nil, err
	}
	if err := validate.URL(p.URL()); err != nil {
		return nil, err
	}
	client := api.NewClient(api.Options{
		BaseURL:   validate.NormalizeURL(p.URL()),
		Token:     p.Token(),
		SSLVerify: p.SSLVerify(),
	})
	return New(ctx, client), nil
}
