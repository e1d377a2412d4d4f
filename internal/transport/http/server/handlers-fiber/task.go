package handlers_fiber

import (
	"fmt"
	"net/http"
	"strconv"

	"og-team-ms/internal/api"
	"og-team-ms/internal/entities"
	"og-team-ms/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListTasks returns tasks matching the filter* query parameters.
func (h *Handler) ListTasks(c *fiber.Ctx) error {
	filter, err := taskFilter(c)
	if err != nil {
		return writeError(c, err)
	}
	tasks, err := h.uc.Tasks(c.Context(), filter)
	if err != nil {
		return h.fail(c, "failed to list tasks", err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Tasks []api.Task `json:"tasks"`
	}{Tasks: mapper.ToAPIList(tasks, mapper.ToAPITask)})
}

// GetTask returns task by id.
func (h *Handler) GetTask(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	task, err := h.uc.Task(c.Context(), id)
	if err != nil {
		return h.fail(c, "failed to get task", err)
	}
	return c.Status(http.StatusOK).JSON(taskResponse(*task))
}

// GetTaskByName returns the first task with the name.
func (h *Handler) GetTaskByName(c *fiber.Ctx) error {
	task, err := h.uc.TaskByName(c.Context(), c.Params("name"))
	if err != nil {
		return h.fail(c, "failed to get task", err)
	}
	if task == nil {
		return writeError(c, entities.ErrTaskNotFound)
	}
	return c.Status(http.StatusOK).JSON(taskResponse(*task))
}

// CreateTask creates a task.
func (h *Handler) CreateTask(c *fiber.Ctx) error {
	var body api.CreateTaskRequest
	if err := h.parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	task, err := h.uc.CreateTask(c.Context(), mapper.FromCreateTaskRequest(body))
	if err != nil {
		return h.fail(c, "failed to create task", err)
	}
	return c.Status(http.StatusCreated).JSON(taskResponse(*task))
}

// UpdateTask patches a task.
func (h *Handler) UpdateTask(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var body api.UpdateTaskRequest
	if err := h.parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	task, err := h.uc.UpdateTask(c.Context(), id, mapper.FromUpdateTaskRequest(body))
	if err != nil {
		return h.fail(c, "failed to update task", err)
	}
	return c.Status(http.StatusOK).JSON(taskResponse(*task))
}

// DeleteTask soft-deletes a task.
func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	task, err := h.uc.DeleteTask(c.Context(), id)
	if err != nil {
		return h.fail(c, "failed to delete task", err)
	}
	return c.Status(http.StatusOK).JSON(taskResponse(*task))
}

func taskFilter(c *fiber.Ctx) (entities.TaskFilter, error) {
	filter := entities.TaskFilter{
		Name:        queryString(c, "filterName"),
		Responsible: queryString(c, "filterResponsable"),
	}
	if s := c.Query("filterStatus"); s != "" {
		status := entities.TaskStatus(s)
		if !status.Valid() {
			return filter, fmt.Errorf("%w: unknown filterStatus %q", entities.ErrInvalidArgument, s)
		}
		filter.Status = &status
	}
	if p := c.Query("filterProject"); p != "" {
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("%w: filterProject must be an integer", entities.ErrInvalidArgument)
		}
		filter.ProjectID = &id
	}
	return filter, nil
}

func taskResponse(t entities.Task) any {
	return struct {
		Task api.Task `json:"task"`
	}{Task: mapper.ToAPITask(t)}
}
