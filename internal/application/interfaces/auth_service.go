package interfaces

import (
	"context"

	"taskboard/internal/application/command"
	"taskboard/internal/application/query"
)

type AuthService interface {
	Register(ctx context.Context, cmd *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	Login(ctx context.Context, cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	GetProfile(ctx context.Context, userID string) (*query.UserQueryResult, error)
}
