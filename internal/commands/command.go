// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"gotasker/internal/config"
	"gotasker/internal/service"
	"gotasker/internal/session"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// Path returns the route-gate destination this command navigates
	// to: "/tasks" for commands needing a session, "/signup" or
	// "/login" for the account commands, "" for ungated commands
	// (help, version, logout).
	Path() string

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg and sess are always provided; svc is the API backend.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, sess session.Store, svc service.Service, args []string, out, errOut io.Writer) int
}
