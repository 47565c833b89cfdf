package dtos

import (
	"choreboard/internal/model"
)

type CreateTaskDTO struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description,omitempty"`
	RoommateID  OptionalID `json:"roommate_id"`
	RoomID      OptionalID `json:"room_id"`
	DueDate     *string    `json:"due_date,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
}

// ToModel converts the DTO into a domain Task ready to be used by services or repos.
// Status is not accepted from clients: every new task starts Pending.
func (d *CreateTaskDTO) ToModel() *model.Task {
	return &model.Task{
		Title:       d.Title,
		Description: optionalString(d.Description),
		RoommateID:  d.RoommateID.Ptr(),
		RoomID:      d.RoomID.Ptr(),
		DueDate:     optionalString(d.DueDate),
		Priority:    optionalString(d.Priority),
		Status:      model.StatusPending,
	}
}
