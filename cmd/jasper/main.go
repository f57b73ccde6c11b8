package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	rootcmd "github.com/go-ports/jasper/cmd/jasper/root"
	"github.com/go-ports/jasper/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.LogLevel(config.OSLookup),
	})))

	// A terminal Ctrl-C already reaches the child through the process group.
	// Catch it here so the launcher outlives the child and reports its status.
	// signal.Ignore would be inherited by the child, so a handler is used.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()
	return rootcmd.ExitCode(rootcmd.Execute(ctx, rootcmd.New(), os.Args[1:]), os.Stderr)
}
