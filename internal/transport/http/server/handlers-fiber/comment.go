package handlers_fiber

import (
	"net/http"

	"og-team-ms/internal/api"
	"og-team-ms/internal/entities"
	"og-team-ms/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListComments returns all comments.
func (h *Handler) ListComments(c *fiber.Ctx) error {
	comments, err := h.uc.Comments(c.Context())
	if err != nil {
		return h.fail(c, "failed to list comments", err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Comments []api.Comment `json:"comments"`
	}{Comments: mapper.ToAPIList(comments, mapper.ToAPIComment)})
}

// GetComment returns comment by id.
func (h *Handler) GetComment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	comment, err := h.uc.Comment(c.Context(), id)
	if err != nil {
		return h.fail(c, "failed to get comment", err)
	}
	return c.Status(http.StatusOK).JSON(commentResponse(*comment))
}

// CreateComment adds a comment to a task.
func (h *Handler) CreateComment(c *fiber.Ctx) error {
	var body api.CreateCommentRequest
	if err := h.parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	comment, err := h.uc.CreateComment(c.Context(), mapper.FromCreateCommentRequest(body))
	if err != nil {
		return h.fail(c, "failed to create comment", err)
	}
	return c.Status(http.StatusCreated).JSON(commentResponse(*comment))
}

// UpdateComment patches a comment.
func (h *Handler) UpdateComment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var body api.UpdateCommentRequest
	if err := h.parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	comment, err := h.uc.UpdateComment(c.Context(), id, mapper.FromUpdateCommentRequest(body))
	if err != nil {
		return h.fail(c, "failed to update comment", err)
	}
	return c.Status(http.StatusOK).JSON(commentResponse(*comment))
}

// DeleteComment removes a comment.
func (h *Handler) DeleteComment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	comment, err := h.uc.DeleteComment(c.Context(), id)
	if err != nil {
		return h.fail(c, "failed to delete comment", err)
	}
	return c.Status(http.StatusOK).JSON(commentResponse(*comment))
}

func commentResponse(cm entities.Comment) any {
	return struct {
		Comment api.Comment `json:"comment"`
	}{Comment: mapper.ToAPIComment(cm)}
}
