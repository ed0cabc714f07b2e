package config

import "errors"

var (
	// ErrInvalidServerConfigs is returned when the listen address or request
	// timeout is missing.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidStorageConfigs is returned when the database DSN is missing.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAppConfigs is returned when token or hashing settings are
	// missing or out of range.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidPolicyConfigs is returned when a policy override is out of
	// range.
	ErrInvalidPolicyConfigs = errors.New("invalid policy configuration")

	// ErrInvalidAdapterConfigs is returned when the client has no server
	// address or timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidWorkerConfigs is returned when a worker interval is negative.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
