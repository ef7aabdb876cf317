// Command autograd exercises the reverse-mode autodiff engine from the
// command line.
//
// Usage:
//
//	autograd [--json] <command> [flags]
//
// Commands:
//
//	logreg   Differentiate one logistic-regression step
//	train    Fit a logistic neuron on synthetic data
//	version  Print the version
//
// LOG_LEVEL and LOG_FORMAT control the diagnostic log written to stderr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/born-ml/autograd/internal/cli"
	"github.com/born-ml/autograd/internal/telemetry"
)

// version is set via ldflags at build time.
var version = "dev"

func main() {
	logger := telemetry.SetupLogger(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx = telemetry.WithLogger(ctx, logger)

	err := cli.NewRootCmd(version).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
