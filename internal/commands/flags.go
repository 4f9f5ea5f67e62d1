package commands

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// optionalString is a flag value that remembers whether it was set,
// so edit can distinguish "flag omitted" from "flag set to empty".
type optionalString struct {
	value string
	set   bool
}

func (o *optionalString) String() string { return o.value }

func (o *optionalString) Set(s string) error {
	o.value = s
	o.set = true
	return nil
}

// filterValues collects repeated key=value pairs into query parameters
// passed through to the server verbatim.
type filterValues struct {
	params url.Values
}

func (f *filterValues) String() string {
	if f.params == nil {
		return ""
	}
	return f.params.Encode()
}

func (f *filterValues) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	if f.params == nil {
		f.params = url.Values{}
	}
	f.params.Add(key, value)
	return nil
}

// parseTaskID parses the single positional task ID argument.
func parseTaskID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("task id required")
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected argument: %s", args[1])
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id: %s", args[0])
	}
	return id, nil
}
