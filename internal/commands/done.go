package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"gotasker/internal/config"
	"gotasker/internal/exitcode"
	"gotasker/internal/forms"
	"gotasker/internal/routegate"
	"gotasker/internal/service"
	"gotasker/internal/session"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command: fetch the task, set its status
// to Completed and submit the full draft.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string  { return "Mark a task as completed" }
func (c *DoneCmd) Usage() string     { return "gotasker done <id>" }
func (c *DoneCmd) Path() string      { return routegate.PathTasks }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, sess session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	id, err := parseTaskID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	task, err := svc.GetTask(ctx, id)
	if err != nil {
		if service.IsNotFound(err) {
			fmt.Fprintf(errOut, "error: task not found: %d\n", id)
			return exitcode.UserError
		}
		return reportError(errOut, err)
	}

	form := &forms.TaskForm{}
	form.Prefill(task)
	form.Status = service.StatusCompleted

	if _, err := form.Submit(ctx, svc); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
