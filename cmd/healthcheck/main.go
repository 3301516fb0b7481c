package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/emperdeon/healthcheck/pkg/exec"
	"github.com/emperdeon/healthcheck/pkg/output"
)

// Version is set at build time via ldflags
var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "healthcheck [flags] [-- command [args...]]",
	Short: "Helps check health of apps and services",
	Long: "healthcheck runs the enabled checks in order (timestamp, amqp, postgres, redis, http)\n" +
		"and exits 1 with the first failure. With no checks enabled it exits 0.\n" +
		"Arguments after \"--\" are executed in place of healthcheck once every check passes.",
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runHealthcheck,
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr, &exec.RealExecutor{}))
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer, executor exec.Executor) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	own, command := exec.SplitArgs(args)
	if own == nil {
		// cobra falls back to os.Args on nil
		own = []string{}
	}
	execCommand, execExecutor = command, executor

	rootCmd.SetArgs(own)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		output.PrintError(stderr, err)
		return 1
	}
	return 0
}
