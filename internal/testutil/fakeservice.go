// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"gotasker/internal/service"
)

// FakeService is an in-memory implementation of service.Service.
// It mirrors the server's contract: drafts are normalized, titles are
// required, IDs are assigned sequentially and failures surface as
// *service.APIError.
type FakeService struct {
	mu     sync.RWMutex
	nextID int
	tasks  []service.Task

	// Tokens issued on signup/login.
	SignupToken string
	LoginToken  string

	// Last values seen, for assertions.
	LastCreds  service.Credentials
	LastDraft  service.Draft
	LastParams url.Values

	// Error injection.
	SignupErr     error
	LoginErr      error
	CreateTaskErr error
	ListTasksErr  error
	GetTaskErr    error
	UpdateTaskErr error
	DeleteTaskErr error
}

// NewFakeService creates an empty fake backend.
func NewFakeService() *FakeService {
	return &FakeService{
		nextID:      1,
		SignupToken: "signup-token",
		LoginToken:  "login-token",
	}
}

// Seed adds a task and returns its assigned ID.
func (f *FakeService) Seed(task service.Task) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	task.ID = f.nextID
	f.nextID++
	f.tasks = append(f.tasks, task)
	return task.ID
}

// Snapshot returns a copy of the stored tasks.
func (f *FakeService) Snapshot() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

func notFound(op, msg string) error {
	return &service.APIError{Op: op, StatusCode: http.StatusNotFound, Message: msg}
}

// Signup implements service.Service.
func (f *FakeService) Signup(ctx context.Context, creds service.Credentials) (string, error) {
	if f.SignupErr != nil {
		return "", f.SignupErr
	}
	f.mu.Lock()
	f.LastCreds = creds
	f.mu.Unlock()
	return f.SignupToken, nil
}

// Login implements service.Service.
func (f *FakeService) Login(ctx context.Context, creds service.Credentials) (string, error) {
	if f.LoginErr != nil {
		return "", f.LoginErr
	}
	f.mu.Lock()
	f.LastCreds = creds
	f.mu.Unlock()
	return f.LoginToken, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, draft service.Draft) (service.Task, error) {
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	d := draft.Normalized()
	f.LastDraft = d

	task := service.Task{
		ID:          f.nextID,
		Title:       d.Title,
		Description: d.Description,
		Status:      d.Status,
		DueDate:     d.DueDate,
	}
	f.nextID++
	f.tasks = append(f.tasks, task)
	return task, nil
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context, params url.Values) ([]service.Task, error) {
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.Lock()
	f.LastParams = params
	f.mu.Unlock()
	return f.Snapshot(), nil
}

// GetTask implements service.Service.
func (f *FakeService) GetTask(ctx context.Context, id int) (service.Task, error) {
	if f.GetTaskErr != nil {
		return service.Task{}, f.GetTaskErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return service.Task{}, notFound("fetch task", "Task not found")
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id int, draft service.Draft) (service.Task, error) {
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	d := draft.Normalized()
	f.LastDraft = d

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i] = service.Task{
				ID:          id,
				Title:       d.Title,
				Description: d.Description,
				Status:      d.Status,
				DueDate:     d.DueDate,
			}
			return f.tasks[i], nil
		}
	}
	return service.Task{}, notFound("update task", "Task not found")
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id int) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return notFound("delete task", "Task not found")
}
