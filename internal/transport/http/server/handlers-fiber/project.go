package handlers_fiber

import (
	"net/http"

	"og-team-ms/internal/api"
	"og-team-ms/internal/entities"
	"og-team-ms/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListProjects returns all projects.
func (h *Handler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.uc.Projects(c.Context())
	if err != nil {
		return h.fail(c, "failed to list projects", err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Projects []api.Project `json:"projects"`
	}{Projects: mapper.ToAPIList(projects, mapper.ToAPIProject)})
}

// GetProject returns project by id.
func (h *Handler) GetProject(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	project, err := h.uc.Project(c.Context(), id)
	if err != nil {
		return h.fail(c, "failed to get project", err)
	}
	return c.Status(http.StatusOK).JSON(projectResponse(*project))
}

// GetProjectByName returns the first project with the name.
func (h *Handler) GetProjectByName(c *fiber.Ctx) error {
	project, err := h.uc.ProjectByName(c.Context(), c.Params("name"))
	if err != nil {
		return h.fail(c, "failed to get project", err)
	}
	if project == nil {
		return writeError(c, entities.ErrProjectNotFound)
	}
	return c.Status(http.StatusOK).JSON(projectResponse(*project))
}

// CreateProject creates a project for a team.
func (h *Handler) CreateProject(c *fiber.Ctx) error {
	var body api.CreateProjectRequest
	if err := h.parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	project, err := h.uc.CreateProject(c.Context(), entities.CreateProjectParams{Name: body.Name, TeamID: int64(body.TeamID)})
	if err != nil {
		return h.fail(c, "failed to create project", err)
	}
	return c.Status(http.StatusCreated).JSON(projectResponse(*project))
}

// UpdateProject patches a project.
func (h *Handler) UpdateProject(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var body api.UpdateProjectRequest
	if err := h.parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	project, err := h.uc.UpdateProject(c.Context(), id, mapper.FromUpdateProjectRequest(body))
	if err != nil {
		return h.fail(c, "failed to update project", err)
	}
	return c.Status(http.StatusOK).JSON(projectResponse(*project))
}

// DeleteProject removes a project.
func (h *Handler) DeleteProject(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	project, err := h.uc.DeleteProject(c.Context(), id)
	if err != nil {
		return h.fail(c, "failed to delete project", err)
	}
	return c.Status(http.StatusOK).JSON(projectResponse(*project))
}

func projectResponse(p entities.Project) any {
	return struct {
		Project api.Project `json:"project"`
	}{Project: mapper.ToAPIProject(p)}
}
