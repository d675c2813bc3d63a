// Package main is the entry point for the rbl CLI application.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/eykd/robotslint-go/cmd"
)

func main() {
	// Create a context that is cancelled on SIGINT (Ctrl+C) so that
	// multi-file lint runs can stop between files.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err := cmd.ExecuteContext(ctx)
	os.Exit(cmd.ExitCodeFromError(err))
}
