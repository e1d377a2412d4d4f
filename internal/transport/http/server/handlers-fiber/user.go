package handlers_fiber

import (
	"net/http"

	"og-team-ms/internal/api"
	"og-team-ms/internal/entities"
	"og-team-ms/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListUsers returns all users.
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := h.uc.Users(c.Context())
	if err != nil {
		return h.fail(c, "failed to list users", err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Users []api.User `json:"users"`
	}{Users: mapper.ToAPIList(users, mapper.ToAPIUser)})
}

// GetUser returns a user by id.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	user, err := h.uc.User(c.Context(), id)
	if err != nil {
		return h.fail(c, "failed to get user", err)
	}
	return c.Status(http.StatusOK).JSON(userResponse(*user))
}

// GetUserByName returns a user by username.
func (h *Handler) GetUserByName(c *fiber.Ctx) error {
	user, err := h.uc.UserByUserName(c.Context(), c.Params("userName"))
	if err != nil {
		return h.fail(c, "failed to get user", err)
	}
	if user == nil {
		return writeError(c, entities.ErrUserNotFound)
	}
	return c.Status(http.StatusOK).JSON(userResponse(*user))
}

// CreateUser registers a user.
func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var body api.CreateUserRequest
	if err := h.parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	user, err := h.uc.CreateUser(c.Context(), entities.CreateUserParams{Username: body.Username})
	if err != nil {
		return h.fail(c, "failed to create user", err)
	}
	return c.Status(http.StatusCreated).JSON(userResponse(*user))
}

// UpdateUser patches a user found by username.
func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	var body api.UpdateUserRequest
	if err := h.parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	user, err := h.uc.UpdateUser(c.Context(), c.Params("userName"), mapper.FromUpdateUserRequest(body))
	if err != nil {
		return h.fail(c, "failed to update user", err)
	}
	return c.Status(http.StatusOK).JSON(userResponse(*user))
}

// DeleteUser removes a user found by username.
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	user, err := h.uc.DeleteUser(c.Context(), c.Params("userName"))
	if err != nil {
		return h.fail(c, "failed to delete user", err)
	}
	return c.Status(http.StatusOK).JSON(userResponse(*user))
}

func userResponse(u entities.User) any {
	return struct {
		User api.User `json:"user"`
	}{User: mapper.ToAPIUser(u)}
}
