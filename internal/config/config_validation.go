// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 destinykit contributors

package config

// Validate checks that the config satisfies the SDK's startup invariants.
// [GetClientConfig] validates automatically; callers of
// [GetClientConfigFromEnv] invoke it after applying their overrides.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}

// validate checks that the final merged [ClientConfig] satisfies the SDK's
// startup invariants.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// from errors.go otherwise.
func (cfg *ClientConfig) validate() error {
	if cfg.API.Key == "" || cfg.API.BaseURL == "" || cfg.API.RequestTimeout == 0 {
		return ErrInvalidAPIConfigs
	}

	if cfg.Storage.DB.Path == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
