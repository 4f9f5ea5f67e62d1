package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"gotasker/internal/config"
	"gotasker/internal/exitcode"
	"gotasker/internal/routegate"
	"gotasker/internal/service"
	"gotasker/internal/session"
	"gotasker/internal/tasklist"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command. Deletion is immediate; there is no
// confirmation prompt.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "gotasker rm <id>" }
func (c *RmCmd) Path() string      { return routegate.PathTasks }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, sess session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	id, err := parseTaskID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	ctrl := tasklist.New(svc)
	if err := ctrl.Delete(ctx, id); err != nil {
		if service.IsNotFound(err) {
			fmt.Fprintf(errOut, "error: task not found: %d\n", id)
			return exitcode.UserError
		}
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "ok, %d tasks remaining\n", len(ctrl.Tasks()))
	}
	return exitcode.Success
}
