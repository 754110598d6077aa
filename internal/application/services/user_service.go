package services

import (
	"context"

	"taskboard/internal/application/interfaces"
	"taskboard/internal/application/mapper"
	"taskboard/internal/application/query"
	"taskboard/internal/domain/repositories"
)

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) interfaces.UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context) (*query.UserQueryListResult, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &query.UserQueryListResult{
		Result: mapper.NewUserResultsFromEntities(users),
	}, nil
}
