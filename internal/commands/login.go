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
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct {
	username string
	password string
}

// SetFields sets the credential fields (for testing).
func (c *LoginCmd) SetFields(username, password string) {
	c.username = username
	c.password = password
}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Authenticate and store a session token" }
func (c *LoginCmd) Usage() string {
	return "gotasker login --username <name> --password <pw>"
}
func (c *LoginCmd) Path() string { return routegate.PathLogin }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.username, "username", "", "")
	fs.StringVar(&c.username, "u", "", "")
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.password, "p", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, sess session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	// The session store persists under the config directory.
	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create config directory: %v\n", err)
		return exitcode.AuthError
	}

	form := &forms.LoginForm{
		Username: c.username,
		Password: c.password,
	}
	if err := form.Submit(ctx, svc, sess); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
