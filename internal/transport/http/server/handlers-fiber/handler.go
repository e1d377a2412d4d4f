// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"time"

	"og-team-ms/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the REST API using service layer interfaces.
type Handler struct {
	log      *zap.SugaredLogger
	uc       usecase.InterfaceUsecase
	validate *validator.Validate
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log:      log,
		uc:       usecase,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// AppConfig returns the fiber settings the handlers rely on. Path parameters
// are unescaped so names with spaces or non-ASCII letters reach the usecases decoded.
func AppConfig(requestTimeout time.Duration) fiber.Config {
	return fiber.Config{
		ReadTimeout:  requestTimeout,
		WriteTimeout: requestTimeout,
		UnescapePath: true,
	}
}

// Register mounts all routes on r.
func (h *Handler) Register(r fiber.Router) {
	r.Get("/users", h.ListUsers)
	r.Post("/users", h.CreateUser)
	r.Get("/users/name/:userName", h.GetUserByName)
	r.Patch("/users/name/:userName", h.UpdateUser)
	r.Delete("/users/name/:userName", h.DeleteUser)
	r.Get("/users/:id", h.GetUser)

	r.Get("/teams", h.ListTeams)
	r.Post("/teams", h.CreateTeam)
	r.Get("/teams/name/:name", h.GetTeamByName)
	r.Get("/teams/:id", h.GetTeam)
	r.Patch("/teams/:id", h.UpdateTeam)
	r.Delete("/teams/:id", h.DeleteTeam)
	r.Post("/teams/:id/users", h.AddTeamUser)
	r.Delete("/teams/:id/users/:userName", h.RemoveTeamUser)

	r.Get("/projects", h.ListProjects)
	r.Post("/projects", h.CreateProject)
	r.Get("/projects/name/:name", h.GetProjectByName)
	r.Get("/projects/:id", h.GetProject)
	r.Patch("/projects/:id", h.UpdateProject)
	r.Delete("/projects/:id", h.DeleteProject)

	r.Get("/tasks", h.ListTasks)
	r.Post("/tasks", h.CreateTask)
	r.Get("/tasks/name/:name", h.GetTaskByName)
	r.Get("/tasks/:id", h.GetTask)
	r.Patch("/tasks/:id", h.UpdateTask)
	r.Delete("/tasks/:id", h.DeleteTask)

	r.Get("/comments", h.ListComments)
	r.Post("/comments", h.CreateComment)
	r.Get("/comments/:id", h.GetComment)
	r.Patch("/comments/:id", h.UpdateComment)
	r.Delete("/comments/:id", h.DeleteComment)
}
