package interfaces

import (
	"context"

	"taskboard/internal/application/query"
)

type UserService interface {
	ListUsers(ctx context.Context) (*query.UserQueryListResult, error)
}
