package commands

import (
	"errors"
	"fmt"
	"io"

	"gotasker/internal/exitcode"
	"gotasker/internal/forms"
	"gotasker/internal/service"
)

// reportError prints a normalized error and maps it to an exit code.
// Validation failures and missing resources are user errors, a rejected
// session is an auth error, everything else is a backend error.
func reportError(errOut io.Writer, err error) int {
	var vErr *forms.ValidationError
	if errors.As(err, &vErr) {
		fmt.Fprintf(errOut, "error: %s\n", vErr.Message)
		return exitcode.UserError
	}

	if service.IsUnauthorized(err) {
		fmt.Fprintln(errOut, "error: session rejected (run: gotasker login)")
		return exitcode.AuthError
	}

	if service.IsNotFound(err) {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: %s\n", err)
	return exitcode.BackendError
}
