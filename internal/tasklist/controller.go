// Package tasklist coordinates the task collection view: fetching,
// edit selection and delete-then-refetch.
package tasklist

import (
	"context"
	"net/url"
	"sync"

	"gotasker/internal/service"
)

// Controller holds the current task snapshot. The snapshot is always
// the tasks array of the last successful fetch, replaced wholesale;
// nothing is patched locally without server confirmation.
type Controller struct {
	svc service.Service

	mu      sync.Mutex
	gen     uint64
	tasks   []service.Task
	editing *service.Task
}

// New creates a controller backed by svc.
func New(svc service.Service) *Controller {
	return &Controller{svc: svc}
}

// Refresh fetches the collection and replaces the snapshot. A fetch
// that resolves after a newer Refresh started is discarded wholesale,
// result and error alike: it describes state that no longer matters.
func (c *Controller) Refresh(ctx context.Context, params url.Values) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	tasks, err := c.svc.ListTasks(ctx, params)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return nil
	}
	if err != nil {
		return err
	}
	c.tasks = tasks
	return nil
}

// Tasks returns the current snapshot.
func (c *Controller) Tasks() []service.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]service.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// StartEdit marks the task with the given ID as in edit and returns it.
// At most one task is in edit; a new selection replaces the prior one
// without confirmation. Returns false if the ID is not in the snapshot.
func (c *Controller) StartEdit(id int) (service.Task, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.tasks {
		if t.ID == id {
			sel := t
			c.editing = &sel
			return sel, true
		}
	}
	return service.Task{}, false
}

// Editing returns the task currently in edit, if any.
func (c *Controller) Editing() (service.Task, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editing == nil {
		return service.Task{}, false
	}
	return *c.editing, true
}

// CancelEdit clears the edit selection.
func (c *Controller) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editing = nil
}

// Delete removes the task on the server and refetches on success.
// Delete is immediate; there is no confirmation or undo. On failure the
// snapshot is left unchanged.
func (c *Controller) Delete(ctx context.Context, id int) error {
	if err := c.svc.DeleteTask(ctx, id); err != nil {
		return err
	}
	return c.Refresh(ctx, nil)
}
