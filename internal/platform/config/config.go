package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string
	LogLevel       string
	RequestTimeout time.Duration

	// JWTSigningKey enables bearer auth on the license routes when set.
	JWTSigningKey string
	JWTIssuer     string

	License License
}

// License holds decode policy shared by the server and the CLI.
type License struct {
	// RequireDates rejects records missing a date of birth or expiration
	// date. Off by default: the decoder itself treats missing dates as "no
	// value" and leaves the decision to the deployment.
	RequireDates     bool
	MaxBatch         int
	BatchConcurrency int
}

// Defaults used when the environment does not override them.
const (
	DefaultAddr             = ":8080"
	DefaultIssuer           = "license-decoder"
	DefaultMaxBatch         = 100
	DefaultBatchConcurrency = 8
	DefaultRequestTimeout   = 30 * time.Second
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:           envString("LICENSE_DECODER_ADDR", DefaultAddr),
		LogLevel:       envString("LOG_LEVEL", "info"),
		RequestTimeout: envDuration("LICENSE_DECODER_REQUEST_TIMEOUT", DefaultRequestTimeout),
		JWTSigningKey:  os.Getenv("LICENSE_DECODER_JWT_SIGNING_KEY"),
		JWTIssuer:      envString("LICENSE_DECODER_JWT_ISSUER", DefaultIssuer),
		License:        LicenseFromEnv(),
	}
}

// LicenseFromEnv reads only the decode policy.
func LicenseFromEnv() License {
	return License{
		RequireDates:     os.Getenv("LICENSE_DECODER_REQUIRE_DATES") == "true",
		MaxBatch:         envPositiveInt("LICENSE_DECODER_MAX_BATCH", DefaultMaxBatch),
		BatchConcurrency: envPositiveInt("LICENSE_DECODER_BATCH_CONCURRENCY", DefaultBatchConcurrency),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envPositiveInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
