package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

// ErrMissingVariable marks a configuration failure caused by absent or
// empty mandatory environment variables.
var ErrMissingVariable = errors.New("missing environment variable")

// Load reads the configuration from the process environment. When envFile
// is non-empty it is loaded first via godotenv; variables already present
// in the environment always win over the file.
//
// All mandatory variables are checked before returning, so a single error
// names every one that is missing.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		// Best-effort convenience load, same as local development setups.
		_ = godotenv.Load()
	}

	var missing *multierror.Error
	for _, name := range []string{EnvAccessKey, EnvSecretKey, EnvEndpoint} {
		if strings.TrimSpace(os.Getenv(name)) == "" {
			missing = multierror.Append(missing, fmt.Errorf("%w: %s", ErrMissingVariable, name))
		}
	}
	if err := missing.ErrorOrNil(); err != nil {
		return nil, err
	}

	cfg := &Config{
		AccessKey: os.Getenv(EnvAccessKey),
		SecretKey: os.Getenv(EnvSecretKey),
		Bucket:    os.Getenv(EnvBucket),
		LogLevel:  os.Getenv(EnvLogLevel),
		LogFormat: os.Getenv(EnvLogFormat),
	}
	cfg.Endpoint, cfg.Secure = parseEndpoint(os.Getenv(EnvEndpoint))

	if cfg.Bucket == "" {
		cfg.Bucket = DefaultBucket
	}

	if v := os.Getenv(EnvInsecureSkipVerify); v != "" {
		skip, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %q", EnvInsecureSkipVerify, v)
		}
		cfg.InsecureSkipVerify = skip
	}

	return cfg, nil
}

// parseEndpoint strips an optional scheme prefix and derives whether the
// connection should use TLS. A bare host is treated as HTTPS.
func parseEndpoint(raw string) (host string, secure bool) {
	raw = strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(raw, "https://"):
		return strings.TrimSuffix(strings.TrimPrefix(raw, "https://"), "/"), true
	case strings.HasPrefix(raw, "http://"):
		return strings.TrimSuffix(strings.TrimPrefix(raw, "http://"), "/"), false
	default:
		return strings.TrimSuffix(raw, "/"), true
	}
}
