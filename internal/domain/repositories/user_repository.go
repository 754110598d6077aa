package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"taskboard/internal/domain/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	// FindByEmail returns nil without error when no user matches. The
	// password hash is stripped unless includePassword is set.
	FindByEmail(ctx context.Context, email string, includePassword bool) (*entities.User, error)
	FindById(ctx context.Context, id primitive.ObjectID) (*entities.User, error)
	FindAll(ctx context.Context) ([]*entities.User, error)
}
