// Package config resolves the per-run settings of every check from command
// line flags, environment variables and built-in defaults.
package config

import (
	"github.com/caarlos0/env/v11"
)

// Env holds the environment fallbacks for the connection URLs. The HTTP
// check has no environment fallback.
type Env struct {
	AMQPURL     string `env:"AMQP_URL"`
	PostgresURL string `env:"POSTGRES_URL"`
	RedisURL    string `env:"REDIS_URL"`
}

// ParseEnv reads Env from the process environment.
func ParseEnv() (Env, error) {
	return env.ParseAs[Env]()
}

// Invocation holds the effective settings of every check for one run. It is
// built once at startup and only read afterwards.
type Invocation struct {
	TimestampFile    string
	TimestampTimeout int64

	AMQPURL     string
	PostgresURL string
	RedisURL    string
	HTTPURL     string
}

// Resolve picks the effective value: an explicitly set flag wins, then a
// non-empty environment value, then the fallback.
func Resolve(flagValue string, flagSet bool, envValue, fallback string) string {
	if flagSet {
		return flagValue
	}
	if envValue != "" {
		return envValue
	}
	return fallback
}
