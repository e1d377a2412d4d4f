package handlers_fiber

import (
	"net/http"

	"og-team-ms/internal/api"
	"og-team-ms/internal/entities"
	"og-team-ms/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListTeams returns all teams.
func (h *Handler) ListTeams(c *fiber.Ctx) error {
	teams, err := h.uc.Teams(c.Context())
	if err != nil {
		return h.fail(c, "failed to list teams", err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Teams []api.Team `json:"teams"`
	}{Teams: mapper.ToAPIList(teams, mapper.ToAPITeam)})
}

// GetTeam returns team with members and projects by id.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	team, err := h.uc.Team(c.Context(), id)
	if err != nil {
		return h.fail(c, "failed to get team", err)
	}
	return c.Status(http.StatusOK).JSON(teamResponse(*team))
}

// GetTeamByName returns team by name.
func (h *Handler) GetTeamByName(c *fiber.Ctx) error {
	team, err := h.uc.TeamByName(c.Context(), c.Params("name"))
	if err != nil {
		return h.fail(c, "failed to get team", err)
	}
	if team == nil {
		return writeError(c, entities.ErrTeamNotFound)
	}
	return c.Status(http.StatusOK).JSON(teamResponse(*team))
}

// CreateTeam creates an empty team.
func (h *Handler) CreateTeam(c *fiber.Ctx) error {
	var body api.CreateTeamRequest
	if err := h.parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	team, err := h.uc.CreateTeam(c.Context(), entities.CreateTeamParams{Name: body.Name})
	if err != nil {
		return h.fail(c, "failed to create team", err)
	}
	return c.Status(http.StatusCreated).JSON(teamResponse(*team))
}

// UpdateTeam renames a team.
func (h *Handler) UpdateTeam(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var body api.UpdateTeamRequest
	if err := h.parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	team, err := h.uc.UpdateTeam(c.Context(), id, entities.TeamPatch{Name: body.Name})
	if err != nil {
		return h.fail(c, "failed to update team", err)
	}
	return c.Status(http.StatusOK).JSON(teamResponse(*team))
}

// DeleteTeam removes a team.
func (h *Handler) DeleteTeam(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	team, err := h.uc.DeleteTeam(c.Context(), id)
	if err != nil {
		return h.fail(c, "failed to delete team", err)
	}
	return c.Status(http.StatusOK).JSON(teamResponse(*team))
}

// AddTeamUser adds a member to the team.
func (h *Handler) AddTeamUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var body api.AddTeamUserRequest
	if err := h.parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	user, err := h.uc.AddTeamUser(c.Context(), id, body.UserName)
	if err != nil {
		return h.fail(c, "failed to add team user", err)
	}
	return c.Status(http.StatusCreated).JSON(userResponse(*user))
}

// RemoveTeamUser drops a member from the team.
func (h *Handler) RemoveTeamUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	user, err := h.uc.RemoveTeamUser(c.Context(), id, c.Params("userName"))
	if err != nil {
		return h.fail(c, "failed to remove team user", err)
	}
	return c.Status(http.StatusOK).JSON(userResponse(*user))
}

func teamResponse(t entities.Team) any {
	return struct {
		Team api.Team `json:"team"`
	}{Team: mapper.ToAPITeam(t)}
}
