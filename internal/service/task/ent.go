package task

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck_backend/internal/repo"
	entattachment "github.com/taskdeck/taskdeck_backend/internal/repo/attachment"
	enttask "github.com/taskdeck/taskdeck_backend/internal/repo/task"
	"github.com/taskdeck/taskdeck_backend/internal/service/session"
	s3pkg "github.com/taskdeck/taskdeck_backend/pkg/s3"
)

// BlobStore is the blob storage surface the document mode persists
// attachment binaries through.
type BlobStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	PresignDownload(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

var _ BlobStore = (*s3pkg.Client)(nil)

type entService struct {
	db       *repo.Client
	blobs    BlobStore
	notifier ChangeNotifier // may be nil
}

// NewEnt returns a Service persisting task and attachment records to the
// document database and attachment binaries to the blob store.
func NewEnt(db *repo.Client, blobs BlobStore, notifier ChangeNotifier) Service {
	return &entService{db: db, blobs: blobs, notifier: notifier}
}

func (s *entService) notify(ctx context.Context) {
	if s.notifier != nil {
		s.notifier.NotifyChanged(ctx)
	}
}

func (s *entService) Create(ctx context.Context, draft Draft, sess *session.EditSession) (*Task, error) {
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}

	var assigned *uuid.UUID
	if draft.AssignedID != "" {
		aid, err := uuid.Parse(draft.AssignedID)
		if err != nil {
			return nil, ErrInvalidAssignee
		}
		assigned = &aid
	}

	row, err := s.db.Task.Create().
		SetTitle(draft.Title).
		SetDetails(draft.Details).
		SetNillableAssignedID(assigned).
		SetAssignedName(draft.AssignedName).
		SetNillableDeadline(draft.Deadline).
		SetStatus(enttask.Status(draft.Status)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	// Attachment commits are not atomic with the task row: a failure here
	// leaves the task stored with fewer attachments, matching the backing
	// store's per-document atomicity.
	if sess != nil {
		if err := s.commitSession(ctx, row.ID, sess); err != nil {
			return nil, err
		}
	}

	t, err := s.Get(ctx, row.ID.String())
	if err != nil {
		return nil, err
	}
	s.notify(ctx)
	return t, nil
}

func (s *entService) Get(ctx context.Context, id string) (*Task, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	row, err := s.db.Task.Get(ctx, uid)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	atts, err := s.db.Attachment.Query().
		Where(entattachment.TaskID(uid)).
		Order(entattachment.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("get task attachments: %w", err)
	}

	return fromRow(row, atts), nil
}

func (s *entService) Update(ctx context.Context, id string, patch Patch, sess *session.EditSession) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return ErrInvalidStatus
	}

	if _, err := s.db.Task.Get(ctx, uid); err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get task: %w", err)
	}

	upd := s.db.Task.UpdateOneID(uid)
	touched := false

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return ErrTitleRequired
		}
		upd = upd.SetTitle(title)
		touched = true
	}
	if patch.Details != nil {
		upd = upd.SetDetails(*patch.Details)
		touched = true
	}
	if patch.AssignedID != nil {
		if *patch.AssignedID == "" {
			upd = upd.ClearAssignedID()
		} else {
			aid, err := uuid.Parse(*patch.AssignedID)
			if err != nil {
				return ErrInvalidAssignee
			}
			upd = upd.SetAssignedID(aid)
		}
		touched = true
	}
	if patch.AssignedName != nil {
		upd = upd.SetAssignedName(*patch.AssignedName)
		touched = true
	}
	if patch.ClearDeadline {
		upd = upd.ClearDeadline()
		touched = true
	} else if patch.Deadline != nil {
		upd = upd.SetDeadline(*patch.Deadline)
		touched = true
	}
	if patch.Status != nil {
		upd = upd.SetStatus(enttask.Status(*patch.Status))
		touched = true
	}

	if touched {
		if err := upd.Exec(ctx); err != nil {
			if repo.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("update task: %w", err)
		}
	}

	if sess != nil {
		if err := s.commitSession(ctx, uid, sess); err != nil {
			return err
		}
	}

	s.notify(ctx)
	return nil
}

func (s *entService) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil // unknown opaque id, nothing to delete
	}

	atts, err := s.db.Attachment.Query().
		Where(entattachment.TaskID(uid)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("list task attachments: %w", err)
	}

	paths := make([]string, 0, len(atts))
	for _, a := range atts {
		if a.StoragePath != "" {
			paths = append(paths, a.StoragePath)
		}
	}
	deleteBlobs(ctx, s.blobs, paths)

	if _, err := s.db.Attachment.Delete().
		Where(entattachment.TaskID(uid)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete task attachments: %w", err)
	}

	if err := s.db.Task.DeleteOneID(uid).Exec(ctx); err != nil && !repo.IsNotFound(err) {
		return fmt.Errorf("delete task: %w", err)
	}

	s.notify(ctx)
	return nil
}

func (s *entService) List(ctx context.Context, f Filter) ([]*Task, error) {
	rows, err := s.db.Task.Query().
		Order(enttask.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	byTask := make(map[uuid.UUID][]*repo.Attachment)
	if len(ids) > 0 {
		atts, err := s.db.Attachment.Query().
			Where(entattachment.TaskIDIn(ids...)).
			Order(entattachment.ByCreatedAt()).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("list attachments: %w", err)
		}
		for _, a := range atts {
			byTask[a.TaskID] = append(byTask[a.TaskID], a)
		}
	}

	tasks := make([]*Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, fromRow(row, byTask[row.ID]))
	}
	return Apply(tasks, f), nil
}

func (s *entService) DownloadURL(ctx context.Context, attachmentID string) (string, error) {
	aid, err := uuid.Parse(attachmentID)
	if err != nil {
		return "", ErrAttachmentNotFound
	}

	a, err := s.db.Attachment.Get(ctx, aid)
	if err != nil {
		if repo.IsNotFound(err) {
			return "", ErrAttachmentNotFound
		}
		return "", fmt.Errorf("get attachment: %w", err)
	}

	if a.External || a.StoragePath == "" {
		return a.URL, nil
	}

	url, err := s.blobs.PresignDownload(ctx, a.StoragePath)
	if err != nil {
		return "", fmt.Errorf("presign: %w", err)
	}
	return url, nil
}

func (s *entService) SeedSession(ctx context.Context, id string, limits session.Limits) (*session.EditSession, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sess := session.New(limits)
	sess.Seed(t.ID, sessionStaged(t.Attachments))
	return sess, nil
}

// deleteBlobs fires the blob deletes concurrently and joins before
// returning. Individual failures are logged and swallowed so a missing or
// already-deleted blob never blocks the caller's cascade.
func deleteBlobs(ctx context.Context, blobs BlobStore, paths []string) {
	var wg sync.WaitGroup
	for _, path := range paths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			if err := blobs.Delete(ctx, path); err != nil {
				slog.Debug("blob delete failed during task cascade", "path", path, "error", err)
			}
		}(path)
	}
	wg.Wait()
}

// commitSession reconciles a task's stored attachments against the
// session's working set: kept persisted entries survive, removed ones are
// deleted (blob first, best-effort), fresh entries are uploaded and stored.
func (s *entService) commitSession(ctx context.Context, taskID uuid.UUID, sess *session.EditSession) error {
	staged := sess.Staged()

	kept := make(map[string]bool, len(staged))
	for _, st := range staged {
		if st.Persisted {
			kept[st.ID] = true
		}
	}

	existing, err := s.db.Attachment.Query().
		Where(entattachment.TaskID(taskID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("list task attachments: %w", err)
	}
	for _, a := range existing {
		if kept[a.ID.String()] {
			continue
		}
		if a.StoragePath != "" {
			// best-effort blob delete, don't block the record removal
			_ = s.blobs.Delete(ctx, a.StoragePath)
		}
		if err := s.db.Attachment.DeleteOne(a).Exec(ctx); err != nil && !repo.IsNotFound(err) {
			return fmt.Errorf("delete attachment: %w", err)
		}
	}

	for _, st := range staged {
		if st.Persisted {
			continue
		}

		if st.External {
			if _, err := s.db.Attachment.Create().
				SetTaskID(taskID).
				SetName(st.Name).
				SetMime("link").
				SetExternal(true).
				SetURL(st.URL).
				Save(ctx); err != nil {
				return fmt.Errorf("create link attachment: %w", err)
			}
			continue
		}

		path := blobKey(taskID, st.Name)
		if err := s.blobs.Upload(ctx, path, st.Mime, bytes.NewReader(st.Data), st.Size); err != nil {
			return fmt.Errorf("upload attachment %q: %w", st.Name, err)
		}
		url, err := s.blobs.PresignDownload(ctx, path)
		if err != nil {
			return fmt.Errorf("presign attachment %q: %w", st.Name, err)
		}

		if _, err := s.db.Attachment.Create().
			SetTaskID(taskID).
			SetName(st.Name).
			SetMime(st.Mime).
			SetURL(url).
			SetStoragePath(path).
			SetSize(st.Size).
			Save(ctx); err != nil {
			return fmt.Errorf("create attachment %q: %w", st.Name, err)
		}
	}

	return nil
}

// blobKey builds the blob store key tasks/{taskId}/{timestamp}-{sanitized}.
func blobKey(taskID uuid.UUID, name string) string {
	clean := strings.ReplaceAll(filepath.Base(name), " ", "_")
	return fmt.Sprintf("tasks/%s/%d-%s", taskID, time.Now().UnixMilli(), clean)
}

func fromRow(row *repo.Task, atts []*repo.Attachment) *Task {
	t := &Task{
		ID:           row.ID.String(),
		Title:        row.Title,
		Details:      row.Details,
		AssignedName: row.AssignedName,
		CreatedAt:    row.CreatedAt,
		Deadline:     row.Deadline,
		Status:       Status(row.Status),
		Attachments:  make([]Attachment, 0, len(atts)),
	}
	if row.AssignedID != nil {
		t.AssignedID = row.AssignedID.String()
	}
	for _, a := range atts {
		att := Attachment{
			ID:          a.ID.String(),
			Name:        a.Name,
			Mime:        a.Mime,
			External:    a.External,
			URL:         a.URL,
			StoragePath: a.StoragePath,
			CreatedAt:   a.CreatedAt,
		}
		if a.Size != nil {
			att.Size = *a.Size
		}
		t.Attachments = append(t.Attachments, att)
	}
	return t
}
