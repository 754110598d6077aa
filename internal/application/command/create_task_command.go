package command

import (
	"time"

	"taskboard/internal/application/common"
)

type CreateTaskCommand struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	AssignedTo  string     `json:"assignedTo"`
	DueDate     *time.Time `json:"dueDate"`

	// CreatedBy is filled from the authenticated identity, never from the body.
	CreatedBy string `json:"-"`
}

type CreateTaskCommandResult struct {
	Result *common.TaskResult `json:"result"`
}
