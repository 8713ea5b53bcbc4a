// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 destinykit contributors

package config

import (
	"time"
)

// Defaults applied by [GetClientConfig] when neither environment, flags, nor
// JSON file provide a value.
const (
	// DefaultAPIBaseURL is the Bungie.net platform API root.
	DefaultAPIBaseURL = "https://www.bungie.net/Platform"

	// DefaultWebBaseURL is the host that relative manifest content paths
	// are resolved against.
	DefaultWebBaseURL = "https://www.bungie.net"

	// DefaultTokenURL is the OAuth token endpoint.
	DefaultTokenURL = "https://www.bungie.net/Platform/App/OAuth/Token/"

	// DefaultRequestTimeout bounds ordinary API calls. Manifest bundle
	// downloads use DefaultDownloadTimeout instead since bundles run to
	// hundreds of megabytes.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultDownloadTimeout bounds a single manifest bundle download.
	DefaultDownloadTimeout = 15 * time.Minute

	// DefaultLocale selects which localized content bundle is synced when
	// the caller does not ask for a specific one.
	DefaultLocale = "en"

	// DefaultDBPath is where the content store lives when no path is
	// configured, relative to the working directory.
	DefaultDBPath = "destinykit.db"
)

// ClientConfig is the top-level configuration container for destinykit.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type ClientConfig struct {
	// API holds Bungie.net platform endpoint settings and the API key.
	API API `envPrefix:"API_"`

	// OAuth holds the application credentials used by the OAuth
	// code-exchange and refresh flows. Optional: the manifest pipeline and
	// all public endpoints work with just an API key.
	OAuth OAuth `envPrefix:"OAUTH_"`

	// Storage holds local persistence settings for the manifest content
	// store and temporary download files.
	Storage Storage `envPrefix:"STORAGE_"`

	// Manifest holds sync-pipeline settings.
	Manifest Manifest `envPrefix:"MANIFEST_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the DESTINYKIT_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API holds Bungie.net platform endpoint settings.
type API struct {
	// BaseURL is the platform API root (default [DefaultAPIBaseURL]).
	// Env: DESTINYKIT_API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// WebBaseURL is the host against which relative manifest content paths
	// are resolved (default [DefaultWebBaseURL]).
	// Env: DESTINYKIT_API_WEB_BASE_URL
	WebBaseURL string `env:"WEB_BASE_URL"`

	// Key is the X-API-Key value issued at bungie.net/en/Application.
	// Required for every platform call.
	// Env: DESTINYKIT_API_KEY
	Key string `env:"KEY"`

	// RequestTimeout is the maximum duration of a single API request
	// (e.g. "30s", "1m").
	// Env: DESTINYKIT_API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// DownloadTimeout is the maximum duration of a manifest bundle
	// download.
	// Env: DESTINYKIT_API_DOWNLOAD_TIMEOUT
	DownloadTimeout time.Duration `env:"DOWNLOAD_TIMEOUT"`
}

// OAuth holds the registered application's OAuth credentials.
type OAuth struct {
	// ClientID is the numeric OAuth client id of the registered app.
	// Env: DESTINYKIT_OAUTH_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// ClientSecret is the confidential-client secret. Leave empty for
	// public clients; the refresh grant is then unavailable.
	// Env: DESTINYKIT_OAUTH_CLIENT_SECRET
	ClientSecret string `env:"CLIENT_SECRET"`

	// TokenURL is the OAuth token endpoint (default [DefaultTokenURL]).
	// Env: DESTINYKIT_OAUTH_TOKEN_URL
	TokenURL string `env:"TOKEN_URL"`
}

// Storage holds local persistence settings.
type Storage struct {
	// DB holds the manifest content store settings.
	DB DB `envPrefix:"DB_"`

	// TempDir is where downloaded archives and extracted staging databases
	// are placed. Empty means os.TempDir().
	// Env: DESTINYKIT_STORAGE_TEMP_DIR
	TempDir string `env:"TEMP_DIR"`
}

// DB holds the content store database settings.
type DB struct {
	// Path is the filesystem path of the SQLite content store. The file is
	// created on first open.
	// Env: DESTINYKIT_STORAGE_DB_PATH
	Path string `env:"PATH"`
}

// Manifest holds sync-pipeline settings.
type Manifest struct {
	// Locale selects the localized content bundle to sync
	// (default [DefaultLocale]).
	// Env: DESTINYKIT_MANIFEST_LOCALE
	Locale string `env:"LOCALE"`
}

// GetClientConfig loads, merges, and validates the SDK configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied after merging. Returns a fully populated
// *ClientConfig or an error if any source fails to load or the final config
// fails validation.
func GetClientConfig() (*ClientConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// GetClientConfigFromEnv loads configuration from environment variables and
// the optional JSON file only, skipping command-line flags and the final
// validation. Hosts that own their flag parsing (the destinyctl CLI, test
// suites) use this variant, apply their overrides on the returned config, and
// then call [ClientConfig.Validate].
func GetClientConfigFromEnv() (*ClientConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		merge()
}

// applyDefaults fills zero-valued fields with the package defaults.
func (cfg *ClientConfig) applyDefaults() {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultAPIBaseURL
	}
	if cfg.API.WebBaseURL == "" {
		cfg.API.WebBaseURL = DefaultWebBaseURL
	}
	if cfg.API.RequestTimeout == 0 {
		cfg.API.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.API.DownloadTimeout == 0 {
		cfg.API.DownloadTimeout = DefaultDownloadTimeout
	}
	if cfg.OAuth.TokenURL == "" {
		cfg.OAuth.TokenURL = DefaultTokenURL
	}
	if cfg.Manifest.Locale == "" {
		cfg.Manifest.Locale = DefaultLocale
	}
	if cfg.Storage.DB.Path == "" {
		cfg.Storage.DB.Path = DefaultDBPath
	}
}
