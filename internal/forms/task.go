package forms

import (
	"context"
	"time"

	"gotasker/internal/service"
)

// Layouts accepted for the due date field, tried in order.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// TaskForm owns the task draft fields for both create and edit mode.
// Edit mode is entered via Prefill; TaskID is zero in create mode.
type TaskForm struct {
	TaskID      int
	Title       string
	Description string
	Status      string
	DueDate     string // raw user input, normalized at submission
}

// Prefill loads an existing task into the form for editing.
func (f *TaskForm) Prefill(task service.Task) {
	f.TaskID = task.ID
	f.Title = task.Title
	f.Description = task.Description
	f.Status = task.Status
	if task.DueDate != nil {
		f.DueDate = task.DueDate.Format(time.RFC3339)
	} else {
		f.DueDate = ""
	}
}

// Editing reports whether the form is in edit mode.
func (f *TaskForm) Editing() bool { return f.TaskID != 0 }

// Reset returns the draft fields to blanks.
func (f *TaskForm) Reset() {
	*f = TaskForm{}
}

// Validate checks title then status; first failure wins. An empty
// status is allowed and defaults to Pending at submission.
func (f *TaskForm) Validate() error {
	if f.Title == "" {
		return &ValidationError{Field: "title", Message: "Title is required"}
	}
	if f.Status != "" && !service.ValidStatus(f.Status) {
		return &ValidationError{Field: "status", Message: "Invalid status"}
	}
	if f.DueDate != "" {
		if _, err := parseDueDate(f.DueDate); err != nil {
			return &ValidationError{Field: "due_date", Message: "Invalid due date"}
		}
	}
	return nil
}

// Draft converts the form fields into a service.Draft, normalizing the
// due date to an absolute timestamp. Call Validate first.
func (f *TaskForm) Draft() service.Draft {
	draft := service.Draft{
		Title:       f.Title,
		Description: f.Description,
		Status:      f.Status,
	}
	if f.DueDate != "" {
		if t, err := parseDueDate(f.DueDate); err == nil {
			draft.DueDate = &t
		}
	}
	return draft
}

// Submit validates and persists the draft: create in create mode,
// full update in edit mode. On success in create mode the draft fields
// are reset to blanks; on failure they are left as entered.
func (f *TaskForm) Submit(ctx context.Context, svc service.Service) (service.Task, error) {
	if err := f.Validate(); err != nil {
		return service.Task{}, err
	}

	var task service.Task
	var err error
	if f.Editing() {
		task, err = svc.UpdateTask(ctx, f.TaskID, f.Draft())
	} else {
		task, err = svc.CreateTask(ctx, f.Draft())
	}
	if err != nil {
		return service.Task{}, err
	}

	if !f.Editing() {
		f.Reset()
	}
	return task, nil
}

func parseDueDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dueDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
