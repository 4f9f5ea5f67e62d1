package service

import "time"

// Task statuses accepted by the server.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// ValidStatus reports whether s is one of the three task statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task represents a single task as returned by the server.
type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Credentials carry signup/login fields. They are used only for the
// register and login requests and are never persisted.
type Credentials struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// Draft is the client-side representation of a task write.
// Zero-value fields are filled by Normalized before the request is sent.
type Draft struct {
	Title       string
	Description string
	Status      string
	DueDate     *time.Time
}

// Normalized returns a copy of the draft with the defaulting rules
// applied: empty description stays "", empty status becomes Pending and
// a nil due date is sent as JSON null. The same rules apply on create
// and update.
func (d Draft) Normalized() Draft {
	if d.Status == "" {
		d.Status = StatusPending
	}
	return d
}
