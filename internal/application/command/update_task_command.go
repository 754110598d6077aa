package command

import (
	"time"

	"taskboard/internal/application/common"
)

// UpdateTaskCommand carries partial updates; nil pointers leave the field
// untouched.
type UpdateTaskCommand struct {
	Id          string     `json:"-"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	AssignedTo  *string    `json:"assignedTo"`
	DueDate     *time.Time `json:"dueDate"`
}

type UpdateTaskCommandResult struct {
	Result *common.TaskResult `json:"result"`
}
