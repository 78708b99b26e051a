package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/taskdeck/taskdeck_backend/internal/api/http/handler"
)

func (r *Router) registerExportRoutes(api fiber.Router, xh *handler.ExportHandler) {
	api.Get("/export/tasks.csv", xh.TasksCSV)
}
