package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"taskboard/internal/application/command"
	"taskboard/internal/application/interfaces"
	"taskboard/internal/application/mapper"
	"taskboard/internal/application/query"
	"taskboard/internal/domain/apperrors"
	"taskboard/internal/domain/entities"
	"taskboard/internal/domain/repositories"
)

type TaskService struct {
	taskRepo repositories.TaskRepository
	userRepo repositories.UserRepository
}

func NewTaskService(taskRepo repositories.TaskRepository, userRepo repositories.UserRepository) interfaces.TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, cmd *command.CreateTaskCommand) (*command.CreateTaskCommandResult, error) {
	if cmd.Title == "" {
		return nil, apperrors.ErrValidation
	}

	createdBy, err := primitive.ObjectIDFromHex(cmd.CreatedBy)
	if err != nil {
		return nil, apperrors.ErrValidation
	}

	task := entities.NewTask(cmd.Title, cmd.Description, createdBy)
	if cmd.Priority != "" {
		task.Priority = entities.TaskPriority(cmd.Priority)
	}
	if cmd.DueDate != nil {
		task.DueDate = cmd.DueDate
	}
	if cmd.AssignedTo != "" {
		assignee, err := s.resolveAssignee(ctx, cmd.AssignedTo)
		if err != nil {
			return nil, err
		}
		task.AssignedTo = assignee
	}

	validatedTask, err := entities.NewValidatedTask(task)
	if err != nil {
		return nil, apperrors.ErrValidation
	}

	createdTask, err := s.taskRepo.Create(ctx, validatedTask)
	if err != nil {
		return nil, err
	}

	return &command.CreateTaskCommandResult{
		Result: mapper.NewTaskResultFromEntity(createdTask),
	}, nil
}

func (s *TaskService) FindTaskById(ctx context.Context, id string) (*query.TaskQueryResult, error) {
	taskID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrTaskNotFound
	}

	task, err := s.taskRepo.FindById(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperrors.ErrTaskNotFound
	}

	return &query.TaskQueryResult{
		Result: mapper.NewTaskResultFromEntity(task),
	}, nil
}

func (s *TaskService) FindTasks(ctx context.Context, filter repositories.TaskFilter) (*query.TaskQueryListResult, error) {
	tasks, err := s.taskRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &query.TaskQueryListResult{
		Result: mapper.NewTaskResultsFromEntities(tasks),
	}, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, cmd *command.UpdateTaskCommand) (*command.UpdateTaskCommandResult, error) {
	taskID, err := primitive.ObjectIDFromHex(cmd.Id)
	if err != nil {
		return nil, apperrors.ErrTaskNotFound
	}

	task, err := s.taskRepo.FindById(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperrors.ErrTaskNotFound
	}

	if cmd.Title != nil {
		task.Title = *cmd.Title
	}
	if cmd.Description != nil {
		task.Description = *cmd.Description
	}
	if cmd.Status != nil {
		task.MoveTo(entities.TaskStatus(*cmd.Status))
	}
	if cmd.Priority != nil {
		task.Priority = entities.TaskPriority(*cmd.Priority)
	}
	if cmd.DueDate != nil {
		task.DueDate = cmd.DueDate
	}
	if cmd.AssignedTo != nil {
		if *cmd.AssignedTo == "" {
			task.AssignedTo = primitive.NilObjectID
		} else {
			assignee, err := s.resolveAssignee(ctx, *cmd.AssignedTo)
			if err != nil {
				return nil, err
			}
			task.AssignTo(assignee)
		}
	}
	task.UpdatedAt = time.Now()

	validatedTask, err := entities.NewValidatedTask(task)
	if err != nil {
		return nil, apperrors.ErrValidation
	}

	updatedTask, err := s.taskRepo.Update(ctx, validatedTask)
	if err != nil {
		return nil, err
	}

	return &command.UpdateTaskCommandResult{
		Result: mapper.NewTaskResultFromEntity(updatedTask),
	}, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	taskID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrTaskNotFound
	}
	return s.taskRepo.Delete(ctx, taskID)
}

// resolveAssignee validates the assignee id against the user store so a
// task can never point at an identity that does not exist.
func (s *TaskService) resolveAssignee(ctx context.Context, id string) (primitive.ObjectID, error) {
	assigneeID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.ErrValidation
	}

	user, err := s.userRepo.FindById(ctx, assigneeID)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if user == nil {
		return primitive.NilObjectID, apperrors.ErrUserNotFound
	}
	return assigneeID, nil
}
