package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"taskboard/internal/application/command"
	"taskboard/internal/application/interfaces"
	"taskboard/internal/domain/entities"
	"taskboard/internal/domain/repositories"
)

type TaskHandler struct {
	taskService interfaces.TaskService
}

func NewTaskHandler(taskService interfaces.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) Create(c echo.Context) error {
	var cmd command.CreateTaskCommand
	if err := c.Bind(&cmd); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request")
	}
	cmd.CreatedBy, _ = c.Get(ContextUserIDKey).(string)

	result, err := h.taskService.CreateTask(c.Request().Context(), &cmd)
	if err != nil {
		return mapError(c, err, "Failed to create task")
	}

	return c.JSON(http.StatusCreated, response{
		Success: true,
		Message: "Task created successfully",
		Task:    result.Result,
	})
}

// List supports the board's filter bar via status, priority and assignedTo
// query parameters.
func (h *TaskHandler) List(c echo.Context) error {
	filter := repositories.TaskFilter{
		Status:   entities.TaskStatus(c.QueryParam("status")),
		Priority: entities.TaskPriority(c.QueryParam("priority")),
	}
	if assignee := c.QueryParam("assignedTo"); assignee != "" {
		id, err := primitive.ObjectIDFromHex(assignee)
		if err != nil {
			return fail(c, http.StatusBadRequest, "Invalid request")
		}
		filter.AssignedTo = id
	}

	result, err := h.taskService.FindTasks(c.Request().Context(), filter)
	if err != nil {
		return mapError(c, err, "Failed to list tasks")
	}

	return c.JSON(http.StatusOK, response{
		Success: true,
		Tasks:   result.Result,
	})
}

func (h *TaskHandler) Get(c echo.Context) error {
	result, err := h.taskService.FindTaskById(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(c, err, "Failed to fetch task")
	}

	return c.JSON(http.StatusOK, response{
		Success: true,
		Task:    result.Result,
	})
}

func (h *TaskHandler) Update(c echo.Context) error {
	var cmd command.UpdateTaskCommand
	if err := c.Bind(&cmd); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request")
	}
	cmd.Id = c.Param("id")

	result, err := h.taskService.UpdateTask(c.Request().Context(), &cmd)
	if err != nil {
		return mapError(c, err, "Failed to update task")
	}

	return c.JSON(http.StatusOK, response{
		Success: true,
		Message: "Task updated successfully",
		Task:    result.Result,
	})
}

func (h *TaskHandler) Delete(c echo.Context) error {
	if err := h.taskService.DeleteTask(c.Request().Context(), c.Param("id")); err != nil {
		return mapError(c, err, "Failed to delete task")
	}

	return c.JSON(http.StatusOK, response{
		Success: true,
		Message: "Task deleted successfully",
	})
}
