package handler

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/taskdeck/taskdeck_backend/internal/service/export"
	"github.com/taskdeck/taskdeck_backend/internal/service/task"
)

type ExportHandler struct {
	svc task.Service
}

func NewExportHandler(svc task.Service) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// GET /export/tasks.csv
//
// The export honors the same filter parameters as the task listing, so the
// file mirrors whatever view the caller had narrowed down to.
func (h *ExportHandler) TasksCSV(c fiber.Ctx) error {
	var q struct {
		Status     string `query:"status"`
		AssignedID string `query:"assigned_id"`
		Date       string `query:"date"`
		Q          string `query:"q"`
	}
	_ = c.Bind().Query(&q)

	tasks, err := h.svc.List(c.Context(), task.Filter{
		Status:     task.Status(q.Status),
		AssignedID: q.AssignedID,
		Date:       q.Date,
		Text:       q.Q,
	})
	if err != nil {
		return mapTaskError(c, err)
	}

	var buf bytes.Buffer
	if err := export.WriteTasks(&buf, tasks); err != nil {
		return internalError(c)
	}

	filename := fmt.Sprintf("tasks-%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}
