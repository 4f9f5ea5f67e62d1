// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"context"
	"net/url"
)

// Service defines the interface for GoTasker backend operations.
// All HTTP calls go through this interface; commands and controllers
// never build requests directly.
type Service interface {
	// Signup registers a new account.
	// Returns the session token issued by the server.
	Signup(ctx context.Context, creds Credentials) (string, error)

	// Login authenticates an existing account.
	// Returns the session token issued by the server.
	Login(ctx context.Context, creds Credentials) (string, error)

	// CreateTask creates a new task from the draft.
	// Draft defaults are applied before the request is sent.
	CreateTask(ctx context.Context, draft Draft) (Task, error)

	// ListTasks returns the task collection.
	// Query parameters are passed through to the server verbatim.
	ListTasks(ctx context.Context, params url.Values) ([]Task, error)

	// GetTask returns a single task by ID.
	// A missing task is reported via IsNotFound.
	GetTask(ctx context.Context, id int) (Task, error)

	// UpdateTask replaces the task identified by id with the draft.
	// The same defaulting rules as CreateTask apply; there are no
	// partial-patch semantics.
	UpdateTask(ctx context.Context, id int, draft Draft) (Task, error)

	// DeleteTask deletes a task by ID.
	DeleteTask(ctx context.Context, id int) error
}
