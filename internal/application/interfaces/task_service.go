package interfaces

import (
	"context"

	"taskboard/internal/application/command"
	"taskboard/internal/application/query"
	"taskboard/internal/domain/repositories"
)

type TaskService interface {
	CreateTask(ctx context.Context, cmd *command.CreateTaskCommand) (*command.CreateTaskCommandResult, error)
	FindTaskById(ctx context.Context, id string) (*query.TaskQueryResult, error)
	FindTasks(ctx context.Context, filter repositories.TaskFilter) (*query.TaskQueryListResult, error)
	UpdateTask(ctx context.Context, cmd *command.UpdateTaskCommand) (*command.UpdateTaskCommandResult, error)
	DeleteTask(ctx context.Context, id string) error
}
