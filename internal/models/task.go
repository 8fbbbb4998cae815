package models

import "time"

// Allowed task statuses. Transitions are free-form: any status may move
// to any other via update or update-status.
const (
	StatusToDo       = "To Do"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Allowed task priorities.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Task is a single board item. Owner is set from the authenticated
// identity at creation and never changes.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`             // To Do | In Progress | Completed
	Priority    string     `json:"priority,omitempty"` // Low | Medium | High
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Owner       string     `json:"owner"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
