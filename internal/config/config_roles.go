package config

import (
	"fmt"
	"time"
)

// GetServerConfig returns the merged configuration validated for the HTTP
// service.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg, cfg.validateServer()
}

// ClientAdapter holds the remote server settings used by the HTTP adapter.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientConfig is the subset of configuration the terminal client needs.
type ClientConfig struct {
	Adapter  ClientAdapter
	Policy   Policy
	LogLevel string
}

// GetClientConfig builds the client view of the merged configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Policy:   cfg.Policy,
		LogLevel: cfg.App.LogLevel,
	}

	return clientCfg, clientCfg.validate()
}
