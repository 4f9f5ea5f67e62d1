// Package main is the entry point for the gotasker CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"gotasker/internal/backend/resttasks"
	"gotasker/internal/cli"
	"gotasker/internal/commands"
	"gotasker/internal/config"
	"gotasker/internal/service"
	"gotasker/internal/session"

	// Import the command package to register commands via init()
	_ "gotasker/internal/commands"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create service factory
	factory := func(cfg *config.Config, sess session.Store, log *zap.Logger) (service.Service, error) {
		return resttasks.New(cfg, sess, log), nil
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
