package task

import (
	"context"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck_backend/internal/service/session"
)

// Status is a task's workflow state. The values are the display strings the
// task table and CSV export carry verbatim.
type Status string

const (
	StatusOpen          Status = "Open"
	StatusInProgress    Status = "In-progress"
	StatusWaitingClient Status = "Waiting client"
	StatusClosed        Status = "Closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusWaitingClient, StatusClosed:
		return true
	}
	return false
}

// Attachment is a file or external link attached to a task. Exactly one of
// {DataURL, StoragePath, external URL} carries the payload reference,
// depending on External and the storage mode.
type Attachment struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Mime     string `json:"mime"`
	External bool   `json:"external"`

	URL         string    `json:"url,omitempty"`
	DataURL     string    `json:"data_url,omitempty"`
	StoragePath string    `json:"storage_path,omitempty"`
	Size        int64     `json:"size,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Task struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Details      string       `json:"details"`
	AssignedID   string       `json:"assigned_id,omitempty"`
	AssignedName string       `json:"assigned_name,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	Deadline     *time.Time   `json:"deadline,omitempty"`
	Status       Status       `json:"status"`
	Attachments  []Attachment `json:"attachments"`
}

// Draft is the input for creating a task. ID and CreatedAt are assigned by
// the repository.
type Draft struct {
	Title        string
	Details      string
	AssignedID   string
	AssignedName string
	Deadline     *time.Time
	Status       Status
}

// Patch carries the fields an update replaces. Nil fields are left as
// stored; ID and CreatedAt are never touched.
type Patch struct {
	Title         *string
	Details       *string
	AssignedID    *string // empty string clears the assignment
	AssignedName  *string
	Deadline      *time.Time
	ClearDeadline bool
	Status        *Status
}

// ChangeNotifier is pinged after every successful mutation so live
// subscribers can re-query and push a fresh snapshot.
type ChangeNotifier interface {
	NotifyChanged(ctx context.Context)
}

type Service interface {
	// Create assigns an id and creation timestamp, defaults status to Open,
	// and commits the session's staged attachments with the task.
	Create(ctx context.Context, draft Draft, sess *session.EditSession) (*Task, error)

	Get(ctx context.Context, id string) (*Task, error)

	// Update merges the patch into the stored record. A non-nil session
	// replaces the attachment set with the session's working set.
	Update(ctx context.Context, id string, patch Patch, sess *session.EditSession) error

	// Delete removes the task and cascade-deletes its attachments, including
	// blob-store objects. Absent ids are a no-op.
	Delete(ctx context.Context, id string) error

	// List returns tasks newest-created-first, each with its resolved
	// attachments, narrowed by the filter.
	List(ctx context.Context, f Filter) ([]*Task, error)

	// DownloadURL resolves an attachment to a fetchable URL: the link target
	// for external entries, a fresh presigned URL or embedded data URL
	// otherwise.
	DownloadURL(ctx context.Context, attachmentID string) (string, error)

	// SeedSession builds an edit session preloaded with the task's persisted
	// attachments.
	SeedSession(ctx context.Context, id string, limits session.Limits) (*session.EditSession, error)
}

func validateDraft(d *Draft) error {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return ErrTitleRequired
	}
	if d.Status == "" {
		d.Status = StatusOpen
	}
	if !d.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// sessionStaged converts persisted attachments into seeded session entries.
func sessionStaged(atts []Attachment) []session.Staged {
	out := make([]session.Staged, 0, len(atts))
	for _, a := range atts {
		out = append(out, session.Staged{
			ID:          a.ID,
			Name:        a.Name,
			Mime:        a.Mime,
			External:    a.External,
			URL:         a.URL,
			Size:        a.Size,
			Persisted:   true,
			StoragePath: a.StoragePath,
			DataURL:     a.DataURL,
			CreatedAt:   a.CreatedAt,
		})
	}
	return out
}
