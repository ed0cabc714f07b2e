package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a flag.Value that accepts "host:port" where host is either
// "localhost" or a literal IP address.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a partial StructuredConfig. Policy flags are
// only copied when they appear on the command line, so an omitted flag never
// masks an environment override.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("passcheck", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress, grpcServerAddress, adapterAddress NetAddress
	var (
		databaseDSN    string
		redisURL       string
		jsonConfigPath string
		dictionary     string
		tokenSignKey   string
		tokenIssuer    string
		tokenDuration  time.Duration
		requestTimeout time.Duration
		expirySweep    time.Duration
		logLevel       string

		minLength    int
		minScore     int
		maxAgeDays   int
		preventReuse int
		reqUpper     bool
		reqLower     bool
		reqNumbers   bool
		reqSpecial   bool
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc health server address host:port")
	fs.Var(&adapterAddress, "server", "Remote passcheck server host:port (client)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisURL, "redis-url", "", "Redis URL for the shared rate limiter")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&dictionary, "dictionary", "", "Denylist file path or s3://bucket/key")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&expirySweep, "expiry-sweep-interval", 0, "Password expiry sweep interval")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	fs.IntVar(&minLength, "policy-min-length", 0, "Minimum password length")
	fs.IntVar(&minScore, "policy-min-score", 0, "Minimum strength score (0-4)")
	fs.IntVar(&maxAgeDays, "policy-max-age-days", 0, "Days before a password must be rotated")
	fs.IntVar(&preventReuse, "policy-prevent-reuse", 0, "Number of previous passwords that may not be reused")
	fs.BoolVar(&reqUpper, "policy-require-uppercase", false, "Require an uppercase letter")
	fs.BoolVar(&reqLower, "policy-require-lowercase", false, "Require a lowercase letter")
	fs.BoolVar(&reqNumbers, "policy-require-numbers", false, "Require a digit")
	fs.BoolVar(&reqSpecial, "policy-require-special-chars", false, "Require a special character")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	var policy Policy
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "policy-min-length":
			policy.MinLength = &minLength
		case "policy-min-score":
			policy.MinScore = &minScore
		case "policy-max-age-days":
			policy.MaxAgeDays = &maxAgeDays
		case "policy-prevent-reuse":
			policy.PreventReuse = &preventReuse
		case "policy-require-uppercase":
			policy.RequireUppercase = &reqUpper
		case "policy-require-lowercase":
			policy.RequireLowercase = &reqLower
		case "policy-require-numbers":
			policy.RequireNumbers = &reqNumbers
		case "policy-require-special-chars":
			policy.RequireSpecialChars = &reqSpecial
		}
	})

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Redis: Redis{URL: redisURL},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Policy:     policy,
		Dictionary: Dictionary{Source: dictionary},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{ExpirySweepInterval: expirySweep},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns "host:port", or "" for the zero value.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses s as "host:port".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
