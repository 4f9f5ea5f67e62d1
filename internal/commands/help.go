package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"gotasker/internal/config"
	"gotasker/internal/exitcode"
	"gotasker/internal/service"
	"gotasker/internal/session"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Show usage" }
func (c *HelpCmd) Usage() string     { return "gotasker help" }
func (c *HelpCmd) Path() string      { return "" }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sess session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprintln(out, "Usage: gotasker <command> [flags] [args]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	for _, cmd := range DefaultRegistry.All() {
		fmt.Fprintf(out, "  %-8s  %s\n", cmd.Name(), cmd.Synopsis())
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Common flags: --config <dir>, --quiet, --debug")
	return exitcode.Success
}
