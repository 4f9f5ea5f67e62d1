// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"gotasker/internal/service"
)

// DueDateDisplay is the layout for due dates in list and detail views.
const DueDateDisplay = "2006-01-02 15:04"

// FormatTask formats a task line for the list view.
// Format: "{ID:>4}  {TITLE} ({STATUS}) - {DUE}\n"
func FormatTask(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "%4d  %s (%s) - %s\n",
		task.ID, normalizeTitle(task.Title), task.Status, formatDue(task.DueDate))
}

// FormatTaskDetail formats the full task view for the show command.
func FormatTaskDetail(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "id:          %d\n", task.ID)
	fmt.Fprintf(w, "title:       %s\n", normalizeTitle(task.Title))
	fmt.Fprintf(w, "status:      %s\n", task.Status)
	fmt.Fprintf(w, "due:         %s\n", formatDue(task.DueDate))
	if task.Description != "" {
		fmt.Fprintf(w, "description: %s\n", normalizeTitle(task.Description))
	}
}

func formatDue(due *time.Time) string {
	if due == nil {
		return "no due date"
	}
	return due.Local().Format(DueDateDisplay)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
