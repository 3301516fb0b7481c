package main

import (
	"github.com/spf13/pflag"

	"github.com/emperdeon/healthcheck/pkg/amqpcheck"
	"github.com/emperdeon/healthcheck/pkg/check"
	"github.com/emperdeon/healthcheck/pkg/config"
	"github.com/emperdeon/healthcheck/pkg/httpcheck"
	"github.com/emperdeon/healthcheck/pkg/postgrescheck"
	"github.com/emperdeon/healthcheck/pkg/redischeck"
	"github.com/emperdeon/healthcheck/pkg/runner"
	"github.com/emperdeon/healthcheck/pkg/timestampcheck"
)

var (
	timestampEnabled bool
	timestampFile    string
	timestampTimeout int64

	amqpEnabled bool
	amqpURL     string

	postgresEnabled bool
	postgresURL     string

	redisEnabled bool
	redisURL     string

	httpEnabled bool
	httpURL     string
)

// option is a flag that is only meaningful together with the enabling flag
// of its check.
type option struct {
	name  string
	usage string
	bind  func(fs *pflag.FlagSet, name, usage string)
}

// descriptor declares one check: its enabling flag, its dependent options
// and how to build it from the resolved invocation.
type descriptor struct {
	flag    string
	usage   string
	enabled *bool
	options []option
	build   func(inv config.Invocation) check.Checker
}

// checks lists every check in run order.
var checks = []descriptor{
	{
		flag:    "timestamp",
		usage:   "check that --timestamp-file holds a timestamp at most --timestamp-timeout seconds old (non-digits in the file are ignored)",
		enabled: &timestampEnabled,
		options: []option{
			{
				name:  "timestamp-file",
				usage: "file with the timestamp, see --timestamp",
				bind: func(fs *pflag.FlagSet, name, usage string) {
					fs.StringVar(&timestampFile, name, timestampcheck.DefaultFile, usage)
				},
			},
			{
				name:  "timestamp-timeout",
				usage: "maximum timestamp age in seconds, see --timestamp",
				bind: func(fs *pflag.FlagSet, name, usage string) {
					fs.Int64Var(&timestampTimeout, name, timestampcheck.DefaultTimeout, usage)
				},
			},
		},
		build: func(inv config.Invocation) check.Checker {
			return &timestampcheck.Check{
				File:    inv.TimestampFile,
				Timeout: inv.TimestampTimeout,
				Reader:  &timestampcheck.RealFileReader{},
			}
		},
	},
	{
		flag:    "amqp",
		usage:   "connect to the broker and open a channel; URL from --amqp-url or AMQP_URL",
		enabled: &amqpEnabled,
		options: []option{urlOption("amqp-url", &amqpURL, amqpcheck.DefaultURL, "amqp")},
		build: func(inv config.Invocation) check.Checker {
			return &amqpcheck.Check{URL: inv.AMQPURL, Dialer: &amqpcheck.RealDialer{}}
		},
	},
	{
		flag:    "postgres",
		usage:   "connect to the database and run SELECT 1; URL from --postgres-url or POSTGRES_URL",
		enabled: &postgresEnabled,
		options: []option{urlOption("postgres-url", &postgresURL, postgrescheck.DefaultURL, "postgres")},
		build: func(inv config.Invocation) check.Checker {
			return &postgrescheck.Check{URL: inv.PostgresURL, Connector: &postgrescheck.RealConnector{}}
		},
	},
	{
		flag:    "redis",
		usage:   "connect to the server and run INFO server; URL from --redis-url or REDIS_URL",
		enabled: &redisEnabled,
		options: []option{urlOption("redis-url", &redisURL, redischeck.DefaultURL, "redis")},
		build: func(inv config.Invocation) check.Checker {
			return &redischeck.Check{URL: inv.RedisURL, Factory: &redischeck.RealClientFactory{}}
		},
	},
	{
		flag:    "http",
		usage:   "request --http-url and expect a 2xx response",
		enabled: &httpEnabled,
		options: []option{urlOption("http-url", &httpURL, httpcheck.DefaultURL, "http")},
		build: func(inv config.Invocation) check.Checker {
			return &httpcheck.Check{URL: inv.HTTPURL, Client: &httpcheck.RealHTTPClient{}}
		},
	},
}

func urlOption(name string, target *string, def, enabling string) option {
	return option{
		name:  name,
		usage: "URL for the connection, see --" + enabling,
		bind: func(fs *pflag.FlagSet, name, usage string) {
			fs.StringVar(target, name, def, usage)
		},
	}
}

// registerFlags declares the enabling flag and options of every check.
func registerFlags(fs *pflag.FlagSet, descriptors []descriptor) {
	for _, d := range descriptors {
		fs.BoolVar(d.enabled, d.flag, false, d.usage)
		for _, o := range d.options {
			o.bind(fs, o.name, o.usage)
		}
	}
}

// resolveInvocation applies flag > environment > default to every setting.
func resolveInvocation(fs *pflag.FlagSet, env config.Env) config.Invocation {
	return config.Invocation{
		TimestampFile:    timestampFile,
		TimestampTimeout: timestampTimeout,

		AMQPURL:     config.Resolve(amqpURL, fs.Changed("amqp-url"), env.AMQPURL, amqpcheck.DefaultURL),
		PostgresURL: config.Resolve(postgresURL, fs.Changed("postgres-url"), env.PostgresURL, postgrescheck.DefaultURL),
		RedisURL:    config.Resolve(redisURL, fs.Changed("redis-url"), env.RedisURL, redischeck.DefaultURL),
		HTTPURL:     httpURL,
	}
}

// buildSteps turns the descriptors into runner steps. Disabled checks are
// not built.
func buildSteps(descriptors []descriptor, inv config.Invocation) []runner.Step {
	steps := make([]runner.Step, 0, len(descriptors))
	for _, d := range descriptors {
		step := runner.Step{Name: d.flag, Enabled: *d.enabled}
		if step.Enabled {
			step.Check = d.build(inv)
		}
		steps = append(steps, step)
	}
	return steps
}

func init() {
	registerFlags(rootCmd.Flags(), checks)
}
