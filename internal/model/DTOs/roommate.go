package dtos

import (
	"choreboard/internal/model"
)

// RoommateDTO is accepted by both POST /roommates and PUT /roommates/:id;
// an update overwrites both fields.
type RoommateDTO struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

func (d *RoommateDTO) ToModel(id int64) *model.Roommate {
	return &model.Roommate{ID: id, Name: d.Name, Email: d.Email}
}
