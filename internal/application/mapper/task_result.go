package mapper

import (
	"taskboard/internal/application/common"
	"taskboard/internal/domain/entities"
)

func NewTaskResultFromEntity(task *entities.Task) *common.TaskResult {
	if task == nil {
		return nil
	}

	result := &common.TaskResult{
		Id:          task.Id.Hex(),
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		CreatedBy:   task.CreatedBy.Hex(),
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	if !task.AssignedTo.IsZero() {
		result.AssignedTo = task.AssignedTo.Hex()
	}
	return result
}

func NewTaskResultsFromEntities(tasks []*entities.Task) []*common.TaskResult {
	results := make([]*common.TaskResult, 0, len(tasks))
	for _, task := range tasks {
		results = append(results, NewTaskResultFromEntity(task))
	}
	return results
}
