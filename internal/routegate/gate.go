// Package routegate decides which destinations are reachable for the
// current session state.
package routegate

// Destination paths.
const (
	PathSignup = "/signup"
	PathLogin  = "/login"
	PathTasks  = "/tasks"
)

// State is the navigation state derived from the session token.
type State int

const (
	// Anonymous means no session token is present.
	Anonymous State = iota

	// Authenticated means a session token is present.
	Authenticated
)

// StateFor returns the navigation state for a token.
// The decision is synchronous; there is no loading state.
func StateFor(token string) State {
	if token == "" {
		return Anonymous
	}
	return Authenticated
}

// Resolve maps a requested path to the destination actually reachable
// for the given token. Anonymous sessions may reach signup and login,
// anything else redirects to signup. Authenticated sessions may reach
// only tasks; anything else redirects there.
func Resolve(token, path string) string {
	switch StateFor(token) {
	case Authenticated:
		return PathTasks
	default:
		if path == PathSignup || path == PathLogin {
			return path
		}
		return PathSignup
	}
}
