package handlers_fiber

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"og-team-ms/internal/api"
	"og-team-ms/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = err.Error()
	case errors.Is(err, entities.ErrConflict):
		status = http.StatusConflict
		code = api.CONFLICT
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg}}
}

// fail logs the failed operation and writes the error response.
func (h *Handler) fail(c *fiber.Ctx, op string, err error) error {
	if errors.Is(err, entities.ErrInvalidArgument) ||
		errors.Is(err, entities.ErrNotFound) ||
		errors.Is(err, entities.ErrConflict) {
		h.log.Infow(op, "error", err.Error())
	} else {
		h.log.Errorw(op, "error", err.Error())
	}
	return writeError(c, err)
}

// parseBody decodes the body into dst and validates it. Unknown fields are dropped.
func (h *Handler) parseBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fmt.Errorf("%w: invalid body: %s", entities.ErrInvalidArgument, err)
	}
	if err := h.validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %s", entities.ErrInvalidArgument, err)
	}
	return nil
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", entities.ErrInvalidArgument, name)
	}
	return id, nil
}

func queryString(c *fiber.Ctx, key string) *string {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	return &v
}
