package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/taskdeck/taskdeck_backend/internal/api/http/handler"
)

func (r *Router) registerStreamRoutes(api fiber.Router, sh *handler.StreamHandler) {
	stream := api.Group("/stream")

	stream.Get("/tasks", sh.Tasks)
	stream.Get("/employees", sh.Employees)
}
