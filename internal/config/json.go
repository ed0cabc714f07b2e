package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
// Durations accept either Go duration strings ("30s") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
		Argon2        struct {
			MemoryKiB   uint32 `json:"memory_kib"`
			Iterations  uint32 `json:"iterations"`
			Parallelism uint8  `json:"parallelism"`
		} `json:"argon2,omitempty"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Redis struct {
			URL string `json:"url"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress       string   `json:"http_address"`
		GRPCAddress       string   `json:"grpc_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		TrustProxyHeaders bool     `json:"trust_proxy_headers"`
		RateLimit         struct {
			Requests int      `json:"requests"`
			Window   Duration `json:"window"`
		} `json:"rate_limit,omitempty"`
	} `json:"server,omitempty"`

	Policy Policy `json:"policy,omitempty"`

	Dictionary struct {
		Source string `json:"source"`
	} `json:"dictionary,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ExpirySweepInterval Duration `json:"expiry_sweep_interval"`
	} `json:"workers,omitempty"`
}

// parseJSON reads jsonFilePath into a partial StructuredConfig.
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
			Argon2: Argon2{
				MemoryKiB:   jsonCfg.App.Argon2.MemoryKiB,
				Iterations:  jsonCfg.App.Argon2.Iterations,
				Parallelism: jsonCfg.App.Argon2.Parallelism,
			},
		},
		Storage: Storage{
			DB:    DB{DSN: jsonCfg.Storage.DB.DSN},
			Redis: Redis{URL: jsonCfg.Storage.Redis.URL},
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			GRPCAddress:       jsonCfg.Server.GRPCAddress,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			TrustProxyHeaders: jsonCfg.Server.TrustProxyHeaders,
			RateLimit: RateLimit{
				Requests: jsonCfg.Server.RateLimit.Requests,
				Window:   time.Duration(jsonCfg.Server.RateLimit.Window),
			},
		},
		Policy:     jsonCfg.Policy,
		Dictionary: Dictionary{Source: jsonCfg.Dictionary.Source},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			ExpirySweepInterval: time.Duration(jsonCfg.Workers.ExpirySweepInterval),
		},
	}

	return cfg, nil
}

// Duration wraps time.Duration with lenient JSON decoding.
type Duration time.Duration

// UnmarshalJSON accepts a duration string or a number of nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

// MarshalJSON encodes the duration as a Go duration string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
