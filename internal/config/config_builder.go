package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

// configBuilder accumulates partial configurations from individual sources
// and merges them in insertion order. A source that fails records its error
// and the builder keeps going so that every problem surfaces at once.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 5),
	}
}

// build merges the collected configs so that later non-zero fields win.
// Pointer fields are replaced rather than dereferenced, which keeps an
// explicit false or zero policy override from a later source.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

// withDotEnv loads ENV_FILE (or ./.env) into the process environment. A
// missing default file is ignored; a missing explicit file is an error.
func (b *configBuilder) withDotEnv() *configBuilder {
	path, explicit := os.LookupEnv("ENV_FILE")
	if !explicit {
		path = ".env"
	}

	if err := loadDotEnv(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return b
		}
		b.err = errors.Join(b.err, err)
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.withFlagArgs(os.Args[1:])
}

func (b *configBuilder) withFlagArgs(args []string) *configBuilder {
	flagCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagCfg)
	return b
}

// withJSON parses the JSON file named by the last source that set
// JSONFilePath. It is a no-op when no source named one.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("error reading dotenv file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("error loading dotenv file: %w", err)
	}
	return nil
}
