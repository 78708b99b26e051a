package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck_backend/internal/service/employee"
	"github.com/taskdeck/taskdeck_backend/internal/service/session"
	"github.com/taskdeck/taskdeck_backend/internal/service/task"
	"github.com/taskdeck/taskdeck_backend/pkg/kvstore"
)

func newTaskApp(t *testing.T, limits session.Limits) (*fiber.App, task.Service) {
	t.Helper()

	tasks := task.NewKV(kvstore.NewMemory(), nil)
	employees := employee.NewKV(kvstore.NewMemory(), nil)
	h := NewTaskHandler(tasks, employees, limits)

	app := fiber.New()
	app.Post("/tasks", h.Create)
	app.Patch("/tasks/:id", h.Update)
	return app, tasks
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreateRejectsMalformedAttachmentData(t *testing.T) {
	app, tasks := newTaskApp(t, session.Limits{})

	resp := postJSON(t, app, "/tasks", `{
		"title": "broken upload",
		"attachments": [{"name": "x.bin", "mime": "application/octet-stream", "data": "%%%not-base64%%%"}]
	}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// the failed request must not leave a partially created task behind
	got, err := tasks.List(context.Background(), task.Filter{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCreateRejectsOversizedAttachment(t *testing.T) {
	app, _ := newTaskApp(t, session.Limits{MaxFileBytes: 4})

	// "dG9vIGxhcmdl" decodes to "too large", 9 bytes
	resp := postJSON(t, app, "/tasks", `{
		"title": "big upload",
		"attachments": [{"name": "big.txt", "mime": "text/plain", "data": "dG9vIGxhcmdl"}]
	}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestCreateRejectsUnsupportedType(t *testing.T) {
	app, _ := newTaskApp(t, session.Limits{AllowedMimeTypes: []string{"image/*"}})

	resp := postJSON(t, app, "/tasks", `{
		"title": "wrong type",
		"attachments": [{"name": "a.zip", "mime": "application/zip", "data": "AAAA"}]
	}`)
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}

func TestCreateRejectsMalformedLink(t *testing.T) {
	app, _ := newTaskApp(t, session.Limits{})

	resp := postJSON(t, app, "/tasks", `{
		"title": "bad link",
		"attachments": [{"name": "docs", "external": true, "url": "notaurl"}]
	}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
