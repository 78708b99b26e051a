package task

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck_backend/internal/service/session"
	"github.com/taskdeck/taskdeck_backend/pkg/kvstore"
)

// tasksKey holds the whole task collection as one JSON blob, mirroring the
// single-key layout the local store always used.
const tasksKey = "taskdeck:tasks"

type kvService struct {
	store    kvstore.Store
	notifier ChangeNotifier // may be nil
}

// NewKV returns a Service persisting to a key-value store. Attachment
// payloads are embedded in the task record as data URLs.
func NewKV(store kvstore.Store, notifier ChangeNotifier) Service {
	return &kvService{store: store, notifier: notifier}
}

func (s *kvService) load() ([]*Task, error) {
	raw, err := s.store.Get(tasksKey)
	if err != nil {
		return nil, fmt.Errorf("%w: read task collection: %v", ErrStorage, err)
	}
	if raw == nil {
		return nil, nil
	}
	var tasks []*Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, fmt.Errorf("%w: malformed task collection: %v", ErrStorage, err)
	}
	return tasks, nil
}

func (s *kvService) save(tasks []*Task) error {
	raw, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("%w: encode task collection: %v", ErrStorage, err)
	}
	if err := s.store.Set(tasksKey, raw); err != nil {
		return fmt.Errorf("%w: write task collection: %v", ErrStorage, err)
	}
	return nil
}

func (s *kvService) notify(ctx context.Context) {
	if s.notifier != nil {
		s.notifier.NotifyChanged(ctx)
	}
}

func (s *kvService) Create(ctx context.Context, draft Draft, sess *session.EditSession) (*Task, error) {
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}

	tasks, err := s.load()
	if err != nil {
		return nil, err
	}

	t := &Task{
		ID:           uuid.NewString(),
		Title:        draft.Title,
		Details:      draft.Details,
		AssignedID:   draft.AssignedID,
		AssignedName: draft.AssignedName,
		CreatedAt:    time.Now(),
		Deadline:     draft.Deadline,
		Status:       draft.Status,
		Attachments:  commitEmbedded(sess),
	}

	if err := s.save(append(tasks, t)); err != nil {
		return nil, err
	}
	s.notify(ctx)
	return t, nil
}

func (s *kvService) Get(ctx context.Context, id string) (*Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, ErrNotFound
}

func (s *kvService) Update(ctx context.Context, id string, patch Patch, sess *session.EditSession) error {
	if patch.Status != nil && !patch.Status.Valid() {
		return ErrInvalidStatus
	}

	tasks, err := s.load()
	if err != nil {
		return err
	}

	var t *Task
	for _, cand := range tasks {
		if cand.ID == id {
			t = cand
			break
		}
	}
	if t == nil {
		return ErrNotFound
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return ErrTitleRequired
		}
		t.Title = title
	}
	if patch.Details != nil {
		t.Details = *patch.Details
	}
	if patch.AssignedID != nil {
		t.AssignedID = *patch.AssignedID
	}
	if patch.AssignedName != nil {
		t.AssignedName = *patch.AssignedName
	}
	if patch.ClearDeadline {
		t.Deadline = nil
	} else if patch.Deadline != nil {
		t.Deadline = patch.Deadline
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if sess != nil {
		t.Attachments = commitEmbedded(sess)
	}

	if err := s.save(tasks); err != nil {
		return err
	}
	s.notify(ctx)
	return nil
}

func (s *kvService) Delete(ctx context.Context, id string) error {
	tasks, err := s.load()
	if err != nil {
		return err
	}

	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		// absent ids are a no-op in local mode
		return nil
	}

	if err := s.save(kept); err != nil {
		return err
	}
	s.notify(ctx)
	return nil
}

func (s *kvService) List(ctx context.Context, f Filter) ([]*Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return Apply(tasks, f), nil
}

func (s *kvService) DownloadURL(ctx context.Context, attachmentID string) (string, error) {
	tasks, err := s.load()
	if err != nil {
		return "", err
	}
	for _, t := range tasks {
		for _, a := range t.Attachments {
			if a.ID != attachmentID {
				continue
			}
			if a.External {
				return a.URL, nil
			}
			return a.DataURL, nil
		}
	}
	return "", ErrAttachmentNotFound
}

func (s *kvService) SeedSession(ctx context.Context, id string, limits session.Limits) (*session.EditSession, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sess := session.New(limits)
	sess.Seed(t.ID, sessionStaged(t.Attachments))
	return sess, nil
}

// commitEmbedded materializes a session's working set for local-mode
// storage: fresh file payloads become self-contained data URLs, links keep
// their target, persisted entries are carried over unchanged.
func commitEmbedded(sess *session.EditSession) []Attachment {
	if sess == nil {
		return nil
	}
	staged := sess.Staged()
	out := make([]Attachment, 0, len(staged))
	for _, st := range staged {
		a := Attachment{
			ID:        st.ID,
			Name:      st.Name,
			Mime:      st.Mime,
			External:  st.External,
			URL:       st.URL,
			Size:      st.Size,
			CreatedAt: time.Now(),
		}
		switch {
		case st.Persisted:
			a.DataURL = st.DataURL
			a.StoragePath = st.StoragePath
			a.CreatedAt = st.CreatedAt
		case !st.External:
			a.DataURL = "data:" + st.Mime + ";base64," + base64.StdEncoding.EncodeToString(st.Data)
		}
		out = append(out, a)
	}
	return out
}
