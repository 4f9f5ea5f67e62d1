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
	"gotasker/internal/tasklist"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command. The form is prefilled from the
// fetched task; flags that were actually set override the prefill.
type EditCmd struct {
	title       optionalString
	description optionalString
	status      optionalString
	due         optionalString
}

// SetTitle sets the title override (for testing).
func (c *EditCmd) SetTitle(s string) { _ = c.title.Set(s) }

// SetStatus sets the status override (for testing).
func (c *EditCmd) SetStatus(s string) { _ = c.status.Set(s) }

// SetDescription sets the description override (for testing).
func (c *EditCmd) SetDescription(s string) { _ = c.description.Set(s) }

// SetDue sets the due-date override (for testing).
func (c *EditCmd) SetDue(s string) { _ = c.due.Set(s) }

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task" }
func (c *EditCmd) Usage() string {
	return "gotasker edit [--title <text>] [--desc <text>] [--status <status>] [--due <date>] <id>"
}
func (c *EditCmd) Path() string { return routegate.PathTasks }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.Var(&c.title, "title", "")
	fs.Var(&c.title, "t", "")
	fs.Var(&c.description, "desc", "")
	fs.Var(&c.description, "d", "")
	fs.Var(&c.status, "status", "")
	fs.Var(&c.status, "s", "")
	fs.Var(&c.due, "due", "")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, sess session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	id, err := parseTaskID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	ctrl := tasklist.New(svc)
	if err := ctrl.Refresh(ctx, nil); err != nil {
		return reportError(errOut, err)
	}

	task, ok := ctrl.StartEdit(id)
	if !ok {
		fmt.Fprintf(errOut, "error: task not found: %d\n", id)
		return exitcode.UserError
	}

	form := &forms.TaskForm{}
	form.Prefill(task)
	if c.title.set {
		form.Title = c.title.value
	}
	if c.description.set {
		form.Description = c.description.value
	}
	if c.status.set {
		form.Status = c.status.value
	}
	if c.due.set {
		form.DueDate = c.due.value
	}

	if _, err := form.Submit(ctx, svc); err != nil {
		return reportError(errOut, err)
	}

	// Server-confirmed write: close the edit selection and refetch.
	ctrl.CancelEdit()
	if err := ctrl.Refresh(ctx, nil); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
