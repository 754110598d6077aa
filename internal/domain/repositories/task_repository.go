package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"taskboard/internal/domain/entities"
)

// TaskFilter narrows FindAll results; zero values mean "any".
type TaskFilter struct {
	Status     entities.TaskStatus
	Priority   entities.TaskPriority
	AssignedTo primitive.ObjectID
}

type TaskRepository interface {
	Create(ctx context.Context, task *entities.ValidatedTask) (*entities.Task, error)
	FindById(ctx context.Context, id primitive.ObjectID) (*entities.Task, error)
	FindAll(ctx context.Context, filter TaskFilter) ([]*entities.Task, error)
	Update(ctx context.Context, task *entities.ValidatedTask) (*entities.Task, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
