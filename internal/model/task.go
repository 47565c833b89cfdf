package model

// Task status values. A task is "done" exactly when CompletedAt is set.
const (
	StatusPending = "Pending"
	StatusDone    = "done"
)

// Task priority values.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// DueDateLayout is the storage format of Task.DueDate.
const DueDateLayout = "2006-01-02"

// DB tags match the columns in the tasks table.
// Nullable columns are pointers so they render as plain JSON values or null.
type Task struct {
	ID          int64    `db:"id" json:"id"`
	Title       string   `db:"title" json:"title"`
	Description *string  `db:"description" json:"description"`
	RoommateID  *int64   `db:"roommate_id" json:"roommate_id"`
	RoomID      *int64   `db:"room_id" json:"room_id"`
	DueDate     *string  `db:"due_date" json:"due_date"`
	Priority    *string  `db:"priority" json:"priority"`
	Status      string   `db:"status" json:"status"`
	CompletedAt NullTime `db:"completed_at" json:"completed_at"`
}

// IsDone reports whether the task went through the completion transition.
func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}

// TaskView is a task joined with the names of the room and roommate it is
// assigned to. Derived views and exports return it.
type TaskView struct {
	Task
	RoomName      *string `db:"room_name" json:"room_name"`
	RoommateName  *string `db:"roommate_name" json:"roommate_name,omitempty"`
	RoommateEmail *string `db:"roommate_email" json:"roommate_email,omitempty"`
}

// ValidPriority reports whether p is one of the known priorities.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
