package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/taskdeck/taskdeck_backend/internal/api/http/handler"
)

func (r *Router) registerTaskRoutes(api fiber.Router, th *handler.TaskHandler) {
	tasks := api.Group("/tasks")

	tasks.Get("/", th.List)
	tasks.Post("/", th.Create)

	t := tasks.Group("/:id")
	t.Get("/", th.Get)
	t.Patch("/", th.Update)
	t.Delete("/", th.Delete)

	api.Get("/attachments/:id/download", th.Download)
}
