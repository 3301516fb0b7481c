package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/emperdeon/healthcheck/pkg/check"
	"github.com/emperdeon/healthcheck/pkg/config"
	"github.com/emperdeon/healthcheck/pkg/exec"
	"github.com/emperdeon/healthcheck/pkg/logging"
	"github.com/emperdeon/healthcheck/pkg/output"
	"github.com/emperdeon/healthcheck/pkg/runner"
)

var (
	verbose bool
	envFile string

	// set by execute from the arguments after "--"
	execCommand  []string
	execExecutor exec.Executor
)

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print every check result and debug logs")
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "load environment variables from this file (default: search for .env upward from the working directory)")
}

func runHealthcheck(cmd *cobra.Command, _ []string) error {
	if err := requireEnablingFlags(cmd.Flags(), checks); err != nil {
		return err
	}

	log := logging.New(cmd.ErrOrStderr(), verbose)
	defer func() { _ = log.Sync() }()

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	loaded, err := config.LoadEnvFile(wd, envFile, log)
	if err != nil {
		return err
	}
	if loaded != "" {
		log.Debug("loaded env file", zap.String("path", loaded))
	}

	env, err := config.ParseEnv()
	if err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	inv := resolveInvocation(cmd.Flags(), env)
	log.Debug("resolved invocation",
		zap.String("timestamp_file", inv.TimestampFile),
		zap.Int64("timestamp_timeout", inv.TimestampTimeout),
		zap.String("http_url", inv.HTTPURL),
	)

	r := &runner.Runner{Logger: log}
	report := r.Run(cmd.Context(), buildSteps(checks, inv))

	if verbose {
		printReport(cmd, report)
	}

	if failure, failed := report.Failure(); failed {
		return &check.FailureError{Result: failure}
	}

	if len(execCommand) > 0 {
		log.Debug("executing command", zap.Strings("argv", execCommand))
		if err := exec.Run(execExecutor, execCommand); err != nil {
			return fmt.Errorf("exec: %w", err)
		}
	}
	return nil
}

func printReport(cmd *cobra.Command, report runner.Report) {
	w := cmd.OutOrStdout()
	for _, o := range report.Outcomes {
		if o.Skipped {
			output.PrintSkipped(w, o.Name)
			continue
		}
		output.PrintResult(w, o.Result)
	}
}
