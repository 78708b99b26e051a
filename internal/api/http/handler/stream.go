package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/taskdeck/taskdeck_backend/internal/service/realtime"
)

type StreamHandler struct {
	hub *realtime.Hub
}

func NewStreamHandler(hub *realtime.Hub) *StreamHandler {
	return &StreamHandler{hub: hub}
}

// GET /stream/tasks
func (h *StreamHandler) Tasks(c fiber.Ctx) error {
	return stream(c, h.hub.SubscribeTasks)
}

// GET /stream/employees
func (h *StreamHandler) Employees(c fiber.Ctx) error {
	return stream(c, h.hub.SubscribeEmployees)
}

// stream pushes every snapshot from the subscription as one SSE data event.
// The subscription is torn down as soon as a write fails, which is how a
// dropped client manifests here.
func stream[T any](c fiber.Ctx, subscribe func(context.Context) (<-chan T, func(), error)) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	return c.SendStreamWriter(func(w *bufio.Writer) {
		// the request context is gone once the handler returns, so the
		// subscription gets its own lifetime bound to the writer
		ctx, stop := context.WithCancel(context.Background())
		defer stop()

		snapshots, cancel, err := subscribe(ctx)
		if err != nil {
			slog.Error("stream subscribe failed", "error", err)
			return
		}
		defer cancel()

		for snap := range snapshots {
			payload, err := json.Marshal(snap)
			if err != nil {
				slog.Error("stream encode failed", "error", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	})
}
