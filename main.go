package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chanarr/internal/cfg"
	"chanarr/internal/domain/keys"
	"chanarr/internal/process"
	"chanarr/internal/utils/logging"
	"chanarr/internal/validation"

	"github.com/spf13/viper"
)

var startTime time.Time

func init() {
	startTime = time.Now()
}

func main() {
	os.Exit(run())
}

// run wraps main's logic so deferred cleanup fires before os.Exit.
func run() int {
	if err := cfg.InitCommands(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := cfg.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if !viper.GetBool(keys.Execute) {
		return 0 // Help or no-op invocation
	}

	req, err := cfg.BuildRequest()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if _, err := validation.ValidateDirectory(req.OutputDir, true); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := logging.SetupLogging(req.OutputDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		return 1
	}
	defer logging.CloseLogging()

	logging.I("chanarr started at: %v", startTime.Format("2006-01-02 15:04:05.00 MST"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := process.Run(ctx, req)
	if err != nil {
		logging.E("%v", err)
		return 1
	}

	logging.I("chanarr finished in %v", time.Since(startTime).Round(time.Millisecond))

	if !result.Succeeded() {
		return 1
	}
	return 0
}
