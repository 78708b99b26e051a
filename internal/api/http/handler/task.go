package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/taskdeck/taskdeck_backend/internal/service/employee"
	"github.com/taskdeck/taskdeck_backend/internal/service/session"
	"github.com/taskdeck/taskdeck_backend/internal/service/task"
)

type TaskHandler struct {
	svc       task.Service
	employees employee.Service
	limits    session.Limits
}

func NewTaskHandler(svc task.Service, employees employee.Service, limits session.Limits) *TaskHandler {
	return &TaskHandler{svc: svc, employees: employees, limits: limits}
}

// attachmentBody is one entry of a task payload's attachment list. Entries
// with an id refer to already stored attachments and are kept; entries
// without one are staged fresh, either as an external link or as a base64
// file payload.
type attachmentBody struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Mime     string `json:"mime"`
	External bool   `json:"external"`
	URL      string `json:"url,omitempty"`
	Data     string `json:"data,omitempty"`
}

func mapTaskError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, task.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, task.ErrAttachmentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, task.ErrTitleRequired),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidAssignee),
		errors.Is(err, session.ErrInvalidURL),
		errors.Is(err, session.ErrInvalidPayload):
		return badRequest(c, err.Error())
	case errors.Is(err, session.ErrFileTooLarge):
		return payloadTooLarge(c, err.Error())
	case errors.Is(err, session.ErrUnsupportedFileType):
		return unsupportedMedia(c, err.Error())
	default:
		return internalError(c)
	}
}

// stageBody stages the fresh (id-less) entries of an attachment list into
// the session.
func stageBody(sess *session.EditSession, atts []attachmentBody) error {
	for _, a := range atts {
		if a.ID != "" {
			continue
		}
		if a.External {
			if _, err := sess.StageLink(a.URL, a.Name); err != nil {
				return err
			}
			continue
		}
		data, err := base64.StdEncoding.DecodeString(a.Data)
		if err != nil {
			return fmt.Errorf("%w: %s is not valid base64", session.ErrInvalidPayload, a.Name)
		}
		if _, err := sess.StageFile(a.Name, a.Mime, data); err != nil {
			return err
		}
	}
	return nil
}

// assigneeName resolves an employee id to its display name. The directory
// is small enough that a list scan beats a dedicated lookup path.
func (h *TaskHandler) assigneeName(c fiber.Ctx, id string) (string, error) {
	employees, err := h.employees.List(c.Context())
	if err != nil {
		return "", err
	}
	for _, e := range employees {
		if e.ID == id {
			return e.Name, nil
		}
	}
	return "", task.ErrInvalidAssignee
}

// GET /tasks
func (h *TaskHandler) List(c fiber.Ctx) error {
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
	return ok(c, tasks)
}

// POST /tasks
func (h *TaskHandler) Create(c fiber.Ctx) error {
	var body struct {
		Title       string           `json:"title"`
		Details     string           `json:"details"`
		AssignedID  string           `json:"assigned_id"`
		Deadline    *time.Time       `json:"deadline"`
		Status      string           `json:"status"`
		Attachments []attachmentBody `json:"attachments"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	draft := task.Draft{
		Title:      body.Title,
		Details:    body.Details,
		AssignedID: body.AssignedID,
		Deadline:   body.Deadline,
		Status:     task.Status(body.Status),
	}
	if body.AssignedID != "" {
		name, err := h.assigneeName(c, body.AssignedID)
		if err != nil {
			return mapTaskError(c, err)
		}
		draft.AssignedName = name
	}

	sess := session.New(h.limits)
	if err := stageBody(sess, body.Attachments); err != nil {
		return mapTaskError(c, err)
	}

	t, err := h.svc.Create(c.Context(), draft, sess)
	if err != nil {
		return mapTaskError(c, err)
	}
	return created(c, t)
}

// GET /tasks/:id
func (h *TaskHandler) Get(c fiber.Ctx) error {
	t, err := h.svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapTaskError(c, err)
	}
	return ok(c, t)
}

// PATCH /tasks/:id
func (h *TaskHandler) Update(c fiber.Ctx) error {
	id := c.Params("id")

	var body struct {
		Title         *string           `json:"title"`
		Details       *string           `json:"details"`
		AssignedID    *string           `json:"assigned_id"`
		Deadline      *time.Time        `json:"deadline"`
		ClearDeadline bool              `json:"clear_deadline"`
		Status        *string           `json:"status"`
		Attachments   *[]attachmentBody `json:"attachments"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	patch := task.Patch{
		Title:         body.Title,
		Details:       body.Details,
		AssignedID:    body.AssignedID,
		Deadline:      body.Deadline,
		ClearDeadline: body.ClearDeadline,
	}
	if body.Status != nil {
		st := task.Status(*body.Status)
		patch.Status = &st
	}
	if body.AssignedID != nil {
		if *body.AssignedID == "" {
			empty := ""
			patch.AssignedName = &empty
		} else {
			name, err := h.assigneeName(c, *body.AssignedID)
			if err != nil {
				return mapTaskError(c, err)
			}
			patch.AssignedName = &name
		}
	}

	// An attachments list replaces the stored set: entries carrying an id
	// survive, everything else staged here is added, the rest is removed on
	// commit.
	var sess *session.EditSession
	if body.Attachments != nil {
		var err error
		sess, err = h.svc.SeedSession(c.Context(), id, h.limits)
		if err != nil {
			return mapTaskError(c, err)
		}

		referenced := make(map[string]bool)
		for _, a := range *body.Attachments {
			if a.ID != "" {
				referenced[a.ID] = true
			}
		}
		for _, st := range sess.Staged() {
			if st.Persisted && !referenced[st.ID] {
				sess.Remove(st.ID)
			}
		}
		if err := stageBody(sess, *body.Attachments); err != nil {
			return mapTaskError(c, err)
		}
	}

	if err := h.svc.Update(c.Context(), id, patch, sess); err != nil {
		return mapTaskError(c, err)
	}
	return noContent(c)
}

// DELETE /tasks/:id
func (h *TaskHandler) Delete(c fiber.Ctx) error {
	if err := h.svc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapTaskError(c, err)
	}
	return noContent(c)
}

// GET /attachments/:id/download
func (h *TaskHandler) Download(c fiber.Ctx) error {
	url, err := h.svc.DownloadURL(c.Context(), c.Params("id"))
	if err != nil {
		return mapTaskError(c, err)
	}
	return ok(c, fiber.Map{"url": url})
}
