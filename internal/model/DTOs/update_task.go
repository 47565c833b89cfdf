package dtos

import (
	"choreboard/internal/model"
)

// UpdateTaskDTO is the single payload shape accepted by PUT /tasks/:id.
// It decodes into one of two operations, see ToUpdate.
type UpdateTaskDTO struct {
	Status      *string    `json:"status,omitempty"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	DueDate     *string    `json:"due_date,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	RoomID      OptionalID `json:"room_id"`
}

// ToUpdate maps the payload to a tagged update. A status of "done" selects
// the completion transition and every other field is ignored; anything else
// is a full overwrite where missing fields become null.
func (d *UpdateTaskDTO) ToUpdate() model.TaskUpdate {
	if d.Status != nil && *d.Status == model.StatusDone {
		return model.CompleteTask{}
	}

	o := model.OverwriteTask{
		Description: optionalString(d.Description),
		DueDate:     optionalString(d.DueDate),
		Priority:    optionalString(d.Priority),
		RoomID:      d.RoomID.Ptr(),
	}
	if d.Title != nil {
		o.Title = *d.Title
	}
	return o
}
