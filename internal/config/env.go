// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AkwaabaHomes

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the env and
// envPrefix struct tags. Unset pointer fields stay nil.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
