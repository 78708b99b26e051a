package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/taskdeck/taskdeck_backend/internal/api/http/handler"
)

func (r *Router) registerEmployeeRoutes(api fiber.Router, eh *handler.EmployeeHandler) {
	employees := api.Group("/employees")

	employees.Get("/", eh.List)
	employees.Post("/", eh.Add)
}
