// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the variables declared by the `env` and `envPrefix` tags of
// [StructuredConfig]. Unset variables stay zero so lower-priority sources can
// fill them. Surrounding whitespace is dropped from the sign key, so a blank
// secret fails validation instead of signing tokens.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.App.TokenSignKey = strings.TrimSpace(cfg.App.TokenSignKey)
	return &cfg, nil
}
