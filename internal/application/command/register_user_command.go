package command

import "taskboard/internal/application/common"

type RegisterUserCommand struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterUserCommandResult struct {
	Token string             `json:"token"`
	User  *common.UserResult `json:"user"`
}
