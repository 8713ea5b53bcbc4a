// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 destinykit contributors

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envVarPrefix is prepended to every env tag lookup so SDK settings never
// collide with the embedding application's variables.
const envVarPrefix = "DESTINYKIT_"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [ClientConfig] and its nested types, all under the
// DESTINYKIT_ prefix.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *ClientConfig) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: envVarPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
