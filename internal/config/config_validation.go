// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AkwaabaHomes

package config

import (
	"fmt"

	"github.com/akwaabahomes/passcheck/internal/strength"
)

// validate checks the invariants shared by every role.
func (cfg *StructuredConfig) validate() error {
	p := cfg.Policy
	if p.MinLength != nil && *p.MinLength < 0 {
		return fmt.Errorf("%w: min length %d", ErrInvalidPolicyConfigs, *p.MinLength)
	}
	if p.MinScore != nil && (*p.MinScore < strength.MinScore || *p.MinScore > strength.MaxScore) {
		return fmt.Errorf("%w: min score %d", ErrInvalidPolicyConfigs, *p.MinScore)
	}
	if p.MaxAgeDays != nil && *p.MaxAgeDays < 0 {
		return fmt.Errorf("%w: max age %d", ErrInvalidPolicyConfigs, *p.MaxAgeDays)
	}
	if p.PreventReuse != nil && *p.PreventReuse < 0 {
		return fmt.Errorf("%w: prevent reuse %d", ErrInvalidPolicyConfigs, *p.PreventReuse)
	}

	if cfg.Workers.ExpirySweepInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// validateServer checks what the HTTP service needs to start.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	// zero requests disables rate limiting
	if rl := cfg.Server.RateLimit; rl.Requests < 0 || (rl.Requests > 0 && rl.Window <= 0) {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	a := cfg.App.Argon2
	if a.MemoryKiB == 0 || a.Iterations == 0 || a.Parallelism == 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
