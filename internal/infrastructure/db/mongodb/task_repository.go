package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"taskboard/internal/db"
	"taskboard/internal/domain/apperrors"
	"taskboard/internal/domain/entities"
	"taskboard/internal/domain/repositories"
)

type TaskRepository struct {
	collection *mongo.Collection
}

func NewTaskRepository(m *db.Mongo) *TaskRepository {
	return &TaskRepository{
		collection: m.Collection("tasks"),
	}
}

var _ repositories.TaskRepository = (*TaskRepository)(nil)

func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "assigned_to", Value: 1}}},
	})
	return err
}

func (r *TaskRepository) Create(ctx context.Context, task *entities.ValidatedTask) (*entities.Task, error) {
	result, err := r.collection.InsertOne(ctx, task.Task)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	created := *task.Task
	created.Id = result.InsertedID.(primitive.ObjectID)
	return &created, nil
}

func (r *TaskRepository) FindById(ctx context.Context, id primitive.ObjectID) (*entities.Task, error) {
	var task entities.Task
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &task, nil
}

func (r *TaskRepository) FindAll(ctx context.Context, filter repositories.TaskFilter) ([]*entities.Task, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}
	if !filter.AssignedTo.IsZero() {
		query["assigned_to"] = filter.AssignedTo
	}

	cursor, err := r.collection.Find(ctx, query,
		options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []*entities.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *entities.ValidatedTask) (*entities.Task, error) {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": task.Id}, task.Task)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrTaskNotFound
	}
	return task.Task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}
