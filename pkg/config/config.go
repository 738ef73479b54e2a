package config

// Environment variables read by the loader.
const (
	EnvAccessKey          = "MINIO_ACCESS_KEY"
	EnvSecretKey          = "MINIO_SECRET_KEY"
	EnvEndpoint           = "MINIO_ENDPOINT"
	EnvBucket             = "MINIO_BUCKET"
	EnvInsecureSkipVerify = "MINIO_INSECURE_SKIP_VERIFY"
	EnvLogLevel           = "MINIO_LOG_LEVEL"
	EnvLogFormat          = "MINIO_LOG_FORMAT"
)

// DefaultBucket is used when MINIO_BUCKET is not set.
const DefaultBucket = "instroom-ml"

// Config holds everything needed to talk to the object store. It is
// populated once by Load and read-only afterwards.
type Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string // host[:port], scheme already stripped
	Bucket    string

	// Secure selects HTTPS. Derived from the endpoint scheme; endpoints
	// without a scheme are treated as HTTPS.
	Secure bool

	// InsecureSkipVerify disables TLS certificate verification for
	// self-signed endpoints. Never enabled implicitly.
	InsecureSkipVerify bool

	LogLevel  string // debug, info, warn, error (default: info)
	LogFormat string // console, json (default: console)
}

// GetLogLevel returns the log level (defaults to info)
func (c *Config) GetLogLevel() string {
	if c.LogLevel != "" {
		return c.LogLevel
	}
	return "info"
}

// GetLogFormat returns the log format (defaults to console)
func (c *Config) GetLogFormat() string {
	if c.LogFormat != "" {
		return c.LogFormat
	}
	return "console"
}
