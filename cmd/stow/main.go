// Package main is the entry point for the stow CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/stow/cmd/stow/commands"
	"go.trai.ch/stow/internal/adapters/telemetry"
	"go.trai.ch/stow/internal/app"
	_ "go.trai.ch/stow/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdown := telemetry.Setup()
	defer func() { _ = shutdown(context.Background()) }()

	// Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// Interface - CLI
	cli := commands.New(components.App)

	// Execution
	if err := cli.Execute(ctx); err != nil {
		// zerr prints a report with stack trace and metadata when using %+v
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}
	return 0
}
