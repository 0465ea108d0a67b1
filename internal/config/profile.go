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

package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	DefaultProfile = "default" // DefaultProfile default
	URLField       = "url"     // URLField base URL of the Qualytics instance
	TokenField     = "token"   // TokenField bearer token
	SSLVerifyField = "ssl_verify"
	OutputField    = "output"

	configType  = "toml"
	configName  = "config"
	dirPerms    = 0o700
	configPerms = 0o600
)

var (
	ErrNotConfigured = errors.New("no configuration found, run 'qualytics auth init' first")
	ErrTokenExpired  = errors.New("token is expired, run 'qualytics auth init' with a fresh token")

	defaultProfile = newProfile()
)

// Profile is the persisted CLI configuration for one Qualytics instance.
type Profile struct {
	name      string
	configDir string
	fs        afero.Fs
	err       error
}

func Default() *Profile {
	return defaultProfile
}

func newProfile() *Profile {
	configDir, err := CLIConfigHome()
	return &Profile{
		name:      DefaultProfile,
		configDir: configDir,
		fs:        afero.NewOsFs(),
		err:       err,
	}
}

// CLIConfigHome retrieves the config directory path.
func CLIConfigHome() (string, error) {
	home, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return path.Join(home, "qualytics"), nil
}

// OperationErrorLog is where foreground operation failures are appended
// for later triage.
func OperationErrorLog() (string, error) {
	home, err := CLIConfigHome()
	if err != nil {
		return "", err
	}
	return path.Join(home, "operation-errors.log"), nil
}

// Load reads the profile from disk. Missing files are not an error;
// callers detect the unconfigured state via URL() == "".
func Load() error { return Default().Load() }
func (p *Profile) Load() error {
	if p.err != nil {
		return p.err
	}
	viper.SetFs(p.fs)
	viper.SetConfigType(configType)
	viper.SetConfigName(configName)
	viper.AddConfigPath(p.configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// Save persists the current settings.
func Save() error { return Default().Save() }
func (p *Profile) Save() error {
	if p.err != nil {
		return p.err
	}
	if err := p.fs.MkdirAll(p.configDir, dirPerms); err != nil {
		return err
	}
	configFile := path.Join(p.configDir, configName+"."+configType)
	if err := viper.WriteConfigAs(configFile); err != nil {
		return err
	}
	return p.fs.Chmod(configFile, configPerms)
}

func Set(name string, value any) { Default().Set(name, value) }
func (*Profile) Set(name string, value any) {
	viper.Set(name, value)
}

func GetString(name string) string { return Default().GetString(name) }
func (*Profile) GetString(name string) string {
	return viper.GetString(name)
}

// URL returns the configured base URL.
func URL() string { return Default().URL() }
func (p *Profile) URL() string {
	return p.GetString(URLField)
}

// Token returns the configured bearer token.
func Token() string { return Default().Token() }
func (p *Profile) Token() string {
	return p.GetString(TokenField)
}

// SSLVerify reports whether server certificates are verified. Defaults
// to true when unset.
func SSLVerify() bool { return Default().SSLVerify() }
func (*Profile) SSLVerify() bool {
	if !viper.IsSet(SSLVerifyField) {
		return true
	}
	return viper.GetBool(SSLVerifyField)
}

// Output returns the configured output format (yaml or json).
func Output() string { return Default().Output() }
func (p *Profile) Output() string {
	return p.GetString(OutputField)
}

// ValidateToken checks the token exists and, when it carries an exp
// claim, that it has not expired. The signature is deliberately not
// verified; the platform does that on every request.
func ValidateToken() error { return Default().ValidateToken() }
func (p *Profile) ValidateToken() error {
	token := p.Token()
	if token == "" || p.URL() == "" {
		return ErrNotConfigured
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, &claims); err != nil {
		return fmt.Errorf("token is not a valid JWT: %w", err)
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return ErrTokenExpired
	}
	return nil
}

// TokenExpiresAt returns the token's exp claim, or nil when the token
// carries none.
func TokenExpiresAt() (*time.Time, error) { return Default().TokenExpiresAt() }
func (p *Profile) TokenExpiresAt() (*time.Time, error) {
	token := p.Token()
	if token == "" {
		return nil, ErrNotConfigured
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("token is not a valid JWT: %w", err)
	}
	if claims.ExpiresAt == nil {
		return nil, nil
	}
	t := claims.ExpiresAt.Time
	return &t, nil
}
