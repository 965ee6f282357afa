// Package config handles configuration for the gateway binaries, including
// defaults, environment variables, JSON overlay and command-line flags.
package config

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// DefaultSecretKey is the built-in token signing key. Deployments must
// override it.
const DefaultSecretKey = "secretKey"

// Model artifact sources.
const (
	ModelSourceFS = "fs"
	ModelSourceS3 = "s3"
)

// Config holds runtime settings shared by the server and the CLI.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the gRPC endpoint (server only).
//   - ServerAddr: gateway address the CLI connects to; empty runs in-process.
//   - MetricsAddr: HTTP address for Prometheus /metrics (server only); empty disables it.
//   - DatabaseDSN: SQLite file path, or a postgres:// URL for PostgreSQL.
//   - BcryptCost: bcrypt work factor for new password hashes.
//   - SecretKey: HMAC secret for signing access tokens (HS256).
//   - AccessTokenValidityDuration: access token lifetime.
//   - ModelSource: where model artifacts are read from, "fs" or "s3".
//   - ModelDir: artifact directory when ModelSource is "fs".
//   - ModelLoadTimeout: upper bound for loading a single artifact.
//   - S3*: object storage settings when ModelSource is "s3".
//   - LogLevel / LogFormat: slog level and handler ("json" or "text").
type Config struct {
	EndpointAddrGRPC            string
	ServerAddr                  string
	MetricsAddr                 string
	DatabaseDSN                 string
	BcryptCost                  int
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	ModelSource                 string
	ModelDir                    string
	ModelLoadTimeout            time.Duration
	S3RootUser                  string
	S3RootPassword              string
	S3Bucket                    string
	S3Region                    string
	S3BaseEndpoint              string
	S3Prefix                    string
	LogLevel                    string
	LogFormat                   string
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey is insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.ServerAddr = ""
	c.MetricsAddr = ""
	c.DatabaseDSN = "users.db"
	c.BcryptCost = bcrypt.DefaultCost
	c.SecretKey = DefaultSecretKey
	c.AccessTokenValidityDuration = 30 * time.Minute
	c.ModelSource = ModelSourceFS
	c.ModelDir = "models"
	c.ModelLoadTimeout = 10 * time.Second
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "models"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.S3Prefix = ""
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// Validate reports settings that would make startup fail later in a less
// obvious way.
func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return fmt.Errorf("database dsn must not be empty")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost %d out of range [%d, %d]", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret key must not be empty")
	}
	if c.AccessTokenValidityDuration <= 0 {
		return fmt.Errorf("access token validity must be positive")
	}
	if c.ModelLoadTimeout <= 0 {
		return fmt.Errorf("model load timeout must be positive")
	}
	switch c.ModelSource {
	case ModelSourceFS:
		if c.ModelDir == "" {
			return fmt.Errorf("model dir must not be empty")
		}
	case ModelSourceS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("s3 bucket must not be empty")
		}
	default:
		return fmt.Errorf("unknown model source %q", c.ModelSource)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from HEALTHGATE_* variables (process environment or ./.env), an optional
// JSON file and finally command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	fileEnv, err := readEnvFile(defaultEnvFile)
	if err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, envLookup(fileEnv)); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, os.Args[1:]); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, os.Args[1:]); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
