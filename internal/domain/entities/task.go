package entities

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusDone       TaskStatus = "done"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

type Task struct {
	Id          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Status      TaskStatus         `bson:"status"`
	Priority    TaskPriority       `bson:"priority"`
	AssignedTo  primitive.ObjectID `bson:"assigned_to,omitempty"`
	CreatedBy   primitive.ObjectID `bson:"created_by"`
	DueDate     *time.Time         `bson:"due_date,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func NewTask(title, description string, createdBy primitive.ObjectID) *Task {
	now := time.Now()
	return &Task{
		Title:       title,
		Description: description,
		Status:      StatusTodo,
		Priority:    PriorityMedium,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (t *Task) validate() error {
	if t.Title == "" {
		return errors.New("title must not be empty")
	}
	if t.CreatedBy.IsZero() {
		return errors.New("created_by must not be empty")
	}
	switch t.Status {
	case StatusTodo, StatusInProgress, StatusDone:
	default:
		return errors.New("unknown task status")
	}
	switch t.Priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
	default:
		return errors.New("unknown task priority")
	}
	return nil
}

func (t *Task) MoveTo(status TaskStatus) {
	t.Status = status
	t.UpdatedAt = time.Now()
}

func (t *Task) AssignTo(userId primitive.ObjectID) {
	t.AssignedTo = userId
	t.UpdatedAt = time.Now()
}

type ValidatedTask struct {
	*Task
}

func NewValidatedTask(task *Task) (*ValidatedTask, error) {
	if err := task.validate(); err != nil {
		return nil, err
	}

	return &ValidatedTask{Task: task}, nil
}
