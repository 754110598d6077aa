package mapper

import (
	"taskboard/internal/application/common"
	"taskboard/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	if user == nil {
		return nil
	}

	return &common.UserResult{
		Id:       user.Id.Hex(),
		Username: user.Username,
		Email:    user.Email,
	}
}

func NewUserResultsFromEntities(users []*entities.User) []*common.UserResult {
	results := make([]*common.UserResult, 0, len(users))
	for _, user := range users {
		results = append(results, NewUserResultFromEntity(user))
	}
	return results
}
