package forms_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotasker/internal/forms"
	"gotasker/internal/service"
	"gotasker/internal/testutil"
)

func TestTaskFormValidationOrder(t *testing.T) {
	var vErr *forms.ValidationError

	// Title is checked first, even when the status is also invalid.
	form := forms.TaskForm{Status: "Banana"}
	require.ErrorAs(t, form.Validate(), &vErr)
	assert.Equal(t, "Title is required", vErr.Message)

	form = forms.TaskForm{Title: "Buy milk", Status: "Banana"}
	require.ErrorAs(t, form.Validate(), &vErr)
	assert.Equal(t, "Invalid status", vErr.Message)

	form = forms.TaskForm{Title: "Buy milk", DueDate: "next tuesday"}
	require.ErrorAs(t, form.Validate(), &vErr)
	assert.Equal(t, "Invalid due date", vErr.Message)
}

func TestTaskFormValidStatuses(t *testing.T) {
	for _, status := range []string{"", "Pending", "In Progress", "Completed"} {
		form := forms.TaskForm{Title: "x", Status: status}
		assert.NoError(t, form.Validate(), "status %q", status)
	}
}

func TestTaskFormDraftDueDateNormalization(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2025-03-01", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-03-01 09:30", time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)},
		{"2025-03-01T09:30", time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)},
		{"2025-03-01T09:30:00Z", time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		form := forms.TaskForm{Title: "x", DueDate: tt.in}
		draft := form.Draft()
		require.NotNil(t, draft.DueDate, "input %q", tt.in)
		assert.True(t, tt.want.Equal(*draft.DueDate), "input %q: got %v", tt.in, *draft.DueDate)
	}
}

func TestTaskFormDraftAbsentDueDateIsNil(t *testing.T) {
	form := forms.TaskForm{Title: "x"}
	assert.Nil(t, form.Draft().DueDate)
}

func TestTaskFormSubmitCreateResetsFields(t *testing.T) {
	svc := testutil.NewFakeService()
	form := forms.TaskForm{Title: "Buy milk", Description: "2l", Status: "Pending"}

	task, err := form.Submit(context.Background(), svc)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", task.Title)

	// Create mode clears the draft for the next entry.
	assert.Equal(t, forms.TaskForm{}, form)
}

func TestTaskFormSubmitFailureKeepsFields(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.CreateTaskErr = &service.APIError{Op: "create task", StatusCode: 500, Message: "Failed to create task"}

	form := forms.TaskForm{Title: "Buy milk", Description: "2l"}
	_, err := form.Submit(context.Background(), svc)

	assert.EqualError(t, err, "Failed to create task")
	assert.Equal(t, "Buy milk", form.Title)
	assert.Equal(t, "2l", form.Description)
}

func TestTaskFormSubmitEditUpdates(t *testing.T) {
	svc := testutil.NewFakeService()
	id := svc.Seed(service.Task{Title: "Old", Status: "Pending"})

	form := forms.TaskForm{}
	form.Prefill(service.Task{ID: id, Title: "Old", Status: "Pending"})
	form.Title = "New"

	task, err := form.Submit(context.Background(), svc)
	require.NoError(t, err)
	assert.Equal(t, id, task.ID)
	assert.Equal(t, "New", task.Title)

	// Edit mode keeps the form populated; the close path is the caller's.
	assert.True(t, form.Editing())
	assert.Equal(t, "New", form.Title)
}

func TestTaskFormPrefill(t *testing.T) {
	due := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	form := forms.TaskForm{}
	form.Prefill(service.Task{
		ID:          7,
		Title:       "Buy milk",
		Description: "2l",
		Status:      "In Progress",
		DueDate:     &due,
	})

	assert.Equal(t, 7, form.TaskID)
	assert.Equal(t, "Buy milk", form.Title)
	assert.Equal(t, "2l", form.Description)
	assert.Equal(t, "In Progress", form.Status)
	assert.Equal(t, "2025-03-01T09:30:00Z", form.DueDate)
	assert.True(t, form.Editing())
}

func TestTaskFormValidationSkipsNetwork(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.CreateTaskErr = &service.APIError{Op: "create task", Message: "should not be reached"}

	form := forms.TaskForm{}
	_, err := form.Submit(context.Background(), svc)

	var vErr *forms.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Empty(t, svc.Snapshot())
}
