package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"gotasker/internal/config"
	"gotasker/internal/exitcode"
	"gotasker/internal/forms"
	"gotasker/internal/routegate"
	"gotasker/internal/service"
	"gotasker/internal/session"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	description string
	status      string
	due         string
}

// SetFields sets the optional draft fields (for testing).
func (c *AddCmd) SetFields(description, status, due string) {
	c.description = description
	c.status = status
	c.due = due
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "gotasker add [--desc <text>] [--status <status>] [--due <date>] <title...>"
}
func (c *AddCmd) Path() string { return routegate.PathTasks }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.description, "d", "", "")
	fs.StringVar(&c.status, "status", "", "")
	fs.StringVar(&c.status, "s", "", "")
	fs.StringVar(&c.due, "due", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, sess session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	title := strings.TrimSpace(strings.Join(args, " "))

	form := &forms.TaskForm{
		Title:       title,
		Description: c.description,
		Status:      c.status,
		DueDate:     c.due,
	}

	task, err := form.Submit(ctx, svc)
	if err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "created %d\n", task.ID)
	}
	return exitcode.Success
}
