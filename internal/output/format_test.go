package output_test

import (
	"bytes"
	"testing"
	"time"

	"gotasker/internal/output"
	"gotasker/internal/service"
	"gotasker/internal/testutil"
)

func TestFormatTask(t *testing.T) {
	due := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	var buf bytes.Buffer
	output.FormatTask(&buf, service.Task{ID: 7, Title: "Buy milk", Status: "Pending", DueDate: &due})
	output.FormatTask(&buf, service.Task{ID: 12, Title: "Walk dog", Status: "Completed"})

	want := "   7  Buy milk (Pending) - " + due.Local().Format(output.DueDateDisplay) + "\n" +
		"  12  Walk dog (Completed) - no due date\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestFormatTaskNormalizesTitle(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTask(&buf, service.Task{ID: 1, Title: "line\nbreak", Status: "Pending"})
	if buf.String() != "   1  line break (Pending) - no due date\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}

	buf.Reset()
	output.FormatTask(&buf, service.Task{ID: 2, Title: "   ", Status: "Pending"})
	if buf.String() != "   2  (untitled) (Pending) - no due date\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestFormatTaskDetailGolden(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTaskDetail(&buf, service.Task{
		ID:          3,
		Title:       "Buy milk",
		Description: "2 liters, whole",
		Status:      "In Progress",
	})
	testutil.Golden(t, "task_detail", buf.Bytes())
}
