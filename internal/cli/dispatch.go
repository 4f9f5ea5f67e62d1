// Package cli parses arguments and dispatches commands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"gotasker/internal/commands"
	"gotasker/internal/config"
	"gotasker/internal/exitcode"
	"gotasker/internal/routegate"
	"gotasker/internal/service"
	"gotasker/internal/session"
)

// ServiceFactory creates a Service from config and session store.
// Used to inject the backend during dispatch.
type ServiceFactory func(cfg *config.Config, sess session.Store, log *zap.Logger) (service.Service, error)

// SessionFactory creates the session store. The default uses the token
// file under the config directory.
type SessionFactory func(cfg *config.Config) session.Store

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
	sessions SessionFactory
}

// NewDispatcher creates a new dispatcher with the given registry and
// service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
		sessions: func(cfg *config.Config) session.Store {
			return session.NewFileStore(cfg.TokenPath())
		},
	}
}

// SetSessionFactory overrides how the session store is built (for tests).
func (d *Dispatcher) SetSessionFactory(f SessionFactory) {
	d.sessions = f
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> dispatch to "list" with no args
	if len(args) == 0 {
		cmd, _ := d.registry.Find("list")
		return d.dispatchCommand(ctx, cmd, nil, out, errOut)
	}

	cmdName := args[0]

	// Flags require a command first
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // errors are reported below

	var configDir string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return flagError(errOut, err)
	}

	// flag stops parsing at the first non-flag token, so a flag placed
	// after a positional argument would silently become part of the
	// arguments (a task title, for example). Reject it instead.
	positionalArgs := fs.Args()
	for _, arg := range positionalArgs {
		if strings.HasPrefix(arg, "-") {
			fmt.Fprintf(errOut, "error: flags must come before arguments: %s\n", arg)
			return exitcode.UserError
		}
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	sess := d.sessions(cfg)

	// Route gating: commands navigate to a destination, and the gate
	// resolves it against the current session state.
	if requested := cmd.Path(); requested != "" {
		resolved := routegate.Resolve(sess.Token(), requested)
		if resolved != requested {
			if resolved == routegate.PathTasks {
				// Authenticated user asked for signup/login.
				if !cfg.Quiet {
					fmt.Fprintln(out, "already logged in")
				}
				return exitcode.Success
			}
			// Anonymous user asked for an authenticated destination.
			fmt.Fprintln(errOut, "error: not logged in (run: gotasker login)")
			return exitcode.AuthError
		}
	}

	log := zap.NewNop()
	if cfg.Debug {
		if dev, err := zap.NewDevelopment(); err == nil {
			log = dev
		}
	}

	svc, err := d.factory(cfg, sess, log)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %s\n", err)
		return exitcode.BackendError
	}

	return cmd.Run(ctx, cfg, sess, svc, positionalArgs, out, errOut)
}

// flagError maps flag package errors to user-facing messages.
func flagError(errOut io.Writer, err error) int {
	errStr := err.Error()

	if strings.Contains(errStr, "needs a value") || strings.Contains(errStr, "flag needs an argument") {
		parts := strings.Split(errStr, ":")
		if len(parts) > 0 {
			flagPart := strings.TrimSpace(parts[0])
			flagPart = strings.TrimPrefix(flagPart, "flag ")
			fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagPart)
			return exitcode.UserError
		}
	}

	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
	return exitcode.UserError
}
