// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AkwaabaHomes

package config

import (
	"time"

	"github.com/akwaabahomes/passcheck/internal/strength"
)

// StructuredConfig is the top-level configuration container for passcheck.
// It aggregates all sub-configurations and is populated by merging values
// from defaults, environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, password hashing cost and the version.
	App App `envPrefix:"APP_"`

	// Storage holds the database and Redis connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address, timeouts and rate limiting.
	Server Server `envPrefix:"SERVER_"`

	// Policy holds operator overrides for the default password policy.
	// Unset fields keep the built-in defaults.
	Policy Policy `envPrefix:"POLICY_"`

	// Dictionary points at an optional external denylist.
	Dictionary Dictionary `envPrefix:"DICTIONARY_"`

	// Adapter holds the client's view of the remote server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC secret used to sign JWT access tokens.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is written into the iss claim of every token.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an access token.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is reported by GET /api/version.
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL"`

	// Argon2 tunes the cost of stored password hashes.
	Argon2 Argon2 `envPrefix:"ARGON2_"`
}

// Argon2 holds the argon2id cost parameters.
type Argon2 struct {
	MemoryKiB   uint32 `env:"MEMORY_KIB"`
	Iterations  uint32 `env:"ITERATIONS"`
	Parallelism uint8  `env:"PARALLELISM"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds the PostgreSQL connection string.
type DB struct {
	DSN string `env:"DATABASE_URI"`
}

// Redis holds the connection settings of the shared rate-limit store.
// When URL is empty the server falls back to an in-process limiter.
type Redis struct {
	URL string `env:"URL"`
}

// Server holds the HTTP listener settings.
type Server struct {
	HTTPAddress    string        `env:"ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// GRPCAddress, when set, exposes the standard gRPC health service so
	// orchestrators can probe readiness.
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// TrustProxyHeaders takes the client address from X-Forwarded-For or
	// X-Real-IP. Enable it only behind a proxy that overwrites them.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS"`

	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
}

// RateLimit caps requests per client IP on the password endpoints. Zero
// requests disables the limiter.
type RateLimit struct {
	Requests int           `env:"REQUESTS"`
	Window   time.Duration `env:"WINDOW"`
}

// Policy mirrors [strength.PolicyOverrides] for the environment and flag
// sources. Pointer fields distinguish "not configured" from an explicit
// zero or false.
type Policy struct {
	MinLength           *int  `env:"MIN_LENGTH" json:"min_length,omitempty"`
	RequireUppercase    *bool `env:"REQUIRE_UPPERCASE" json:"require_uppercase,omitempty"`
	RequireLowercase    *bool `env:"REQUIRE_LOWERCASE" json:"require_lowercase,omitempty"`
	RequireNumbers      *bool `env:"REQUIRE_NUMBERS" json:"require_numbers,omitempty"`
	RequireSpecialChars *bool `env:"REQUIRE_SPECIAL_CHARS" json:"require_special_chars,omitempty"`
	MinScore            *int  `env:"MIN_SCORE" json:"min_score,omitempty"`
	MaxAgeDays          *int  `env:"MAX_AGE_DAYS" json:"max_age_days,omitempty"`
	PreventReuse        *int  `env:"PREVENT_REUSE" json:"prevent_reuse,omitempty"`
}

// Overrides converts the configured values into policy overrides.
func (p Policy) Overrides() strength.PolicyOverrides {
	return strength.PolicyOverrides{
		MinLength:           p.MinLength,
		RequireUppercase:    p.RequireUppercase,
		RequireLowercase:    p.RequireLowercase,
		RequireNumbers:      p.RequireNumbers,
		RequireSpecialChars: p.RequireSpecialChars,
		MinScore:            p.MinScore,
		MaxAgeDays:          p.MaxAgeDays,
		PreventReuse:        p.PreventReuse,
	}
}

// Dictionary locates an external denylist. Source is either a local file path
// or an s3://bucket/key URL; empty means the built-in list only.
type Dictionary struct {
	Source string `env:"SOURCE"`
}

// Adapter holds the client's connection settings for the passcheck server.
type Adapter struct {
	HTTPAddress    string        `env:"ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker intervals.
type Workers struct {
	// ExpirySweepInterval is how often passwords older than the policy's
	// maxAgeDays are flagged for rotation. Zero disables the sweep.
	ExpirySweepInterval time.Duration `env:"EXPIRY_SWEEP_INTERVAL"`
}

// GetStructuredConfig assembles the full configuration from every source
// without role-specific validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
