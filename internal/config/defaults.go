package config

import "time"

const (
	defaultAddress        = "localhost:8080"
	defaultRequestTimeout = 10 * time.Second
	defaultTokenIssuer    = "passcheck"
	defaultTokenDuration  = time.Hour
	defaultLogLevel       = "info"
	defaultRateRequests   = 60
	defaultRateWindow     = time.Minute
	defaultExpirySweep    = time.Hour

	defaultArgon2MemoryKiB   = 64 * 1024
	defaultArgon2Iterations  = 3
	defaultArgon2Parallelism = 2
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			Version:       "dev",
			LogLevel:      defaultLogLevel,
			Argon2: Argon2{
				MemoryKiB:   defaultArgon2MemoryKiB,
				Iterations:  defaultArgon2Iterations,
				Parallelism: defaultArgon2Parallelism,
			},
		},
		Server: Server{
			HTTPAddress:    defaultAddress,
			RequestTimeout: defaultRequestTimeout,
			RateLimit: RateLimit{
				Requests: defaultRateRequests,
				Window:   defaultRateWindow,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			ExpirySweepInterval: defaultExpirySweep,
		},
	}
}
