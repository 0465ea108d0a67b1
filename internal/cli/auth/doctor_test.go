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

package auth

import (
	"bytes"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qualytics/qualytics-cli/internal/api"
	"github.com/qualytics/qualytics-cli/internal/mocks"
)

func TestCheckPlatformVersion(t *testing.T) {
	assert.NoError(t, checkPlatformVersion("2.0.0"))
	assert.NoError(t, checkPlatformVersion("2.14.3"))

	err := checkPlatformVersion("1.9.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "older than")

	require.Error(t, checkPlatformVersion(""))
	require.Error(t, checkPlatformVersion("not-a-version"))
}

func TestDoctorReportsPlatform(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform := mocks.NewMockPlatformDescriber(ctrl)
	platform.EXPECT().PlatformInfo().Return(&api.PlatformInfo{Version: "2.8.1"}, nil)

	var buf bytes.Buffer
	opts := &doctorOpts{platform: platform, out: &buf}
	opts.checkPlatform()

	out := buf.String()
	assert.Contains(t, out, "API connection")
	assert.Contains(t, out, "2.8.1")
	assert.Equal(t, 0, opts.failed)
}

func TestDoctorFailsWhenUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform := mocks.NewMockPlatformDescriber(ctrl)
	platform.EXPECT().PlatformInfo().Return(nil, api.ErrServer)

	var buf bytes.Buffer
	opts := &doctorOpts{platform: platform, out: &buf}
	opts.checkPlatform()

	assert.Equal(t, 1, opts.failed)
}
