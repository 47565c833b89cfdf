package model

// TaskUpdate is one of the two operations PUT /tasks/{id} can mean.
// The concrete type is either CompleteTask or OverwriteTask.
type TaskUpdate interface {
	isTaskUpdate()
}

// CompleteTask moves a task to "done" and stamps completed_at.
// Completing an already completed task keeps its original stamp.
type CompleteTask struct{}

// OverwriteTask replaces every editable field of a task. Nil fields are
// written as NULL. Status, completed_at and roommate_id are never touched.
type OverwriteTask struct {
	Title       string
	Description *string
	DueDate     *string
	Priority    *string
	RoomID      *int64
}

func (CompleteTask) isTaskUpdate()  {}
func (OverwriteTask) isTaskUpdate() {}
