package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"gotasker/internal/config"
	"gotasker/internal/exitcode"
	"gotasker/internal/output"
	"gotasker/internal/routegate"
	"gotasker/internal/service"
	"gotasker/internal/session"
	"gotasker/internal/tasklist"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Runs for bare `gotasker` as well.
type ListCmd struct {
	filters filterValues
}

// AddFilter adds a query parameter (for testing).
func (c *ListCmd) AddFilter(kv string) error {
	return c.filters.Set(kv)
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "gotasker list [--filter key=value]..." }
func (c *ListCmd) Path() string      { return routegate.PathTasks }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.Var(&c.filters, "filter", "")
	fs.Var(&c.filters, "f", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, sess session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	ctrl := tasklist.New(svc)
	if err := ctrl.Refresh(ctx, c.filters.params); err != nil {
		return reportError(errOut, err)
	}

	tasks := ctrl.Tasks()
	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	for _, task := range tasks {
		output.FormatTask(out, task)
	}
	return exitcode.Success
}
