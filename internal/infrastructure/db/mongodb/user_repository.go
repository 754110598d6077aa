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

// Reads omit the password hash unless a caller asks for it explicitly for
// verification.
var excludePassword = options.FindOne().SetProjection(bson.M{"password": 0})

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(m *db.Mongo) *UserRepository {
	return &UserRepository{
		collection: m.Collection("users"),
	}
}

var _ repositories.UserRepository = (*UserRepository)(nil)

// EnsureIndexes creates the unique email index. Concurrent registrations
// with the same email race on the insert, and the index guarantees exactly
// one of them wins.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	result, err := r.collection.InsertOne(ctx, user.GetUser())
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrEmailExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user.GetUser()
	created.Id = result.InsertedID.(primitive.ObjectID)
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string, includePassword bool) (*entities.User, error) {
	opts := []*options.FindOneOptions{}
	if !includePassword {
		opts = append(opts, excludePassword)
	}

	var user entities.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}, opts...).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindById(ctx context.Context, id primitive.ObjectID) (*entities.User, error) {
	var user entities.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}, excludePassword).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entities.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"password": 0}).SetSort(bson.M{"username": 1}))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*entities.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}
