// Package session models the transient working set of attachments staged
// while a task is being added or edited. Staged entries are validated here
// and only persisted when the enclosing task save commits the session;
// removing an entry before save has no persistence side effect.
package session

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Limits carries the attachment acceptance policy.
type Limits struct {
	// MaxFileBytes is the byte ceiling for non-external uploads.
	MaxFileBytes int64
	// AllowedMimeTypes restricts uploads when non-empty. Entries ending in
	// "/*" match by prefix.
	AllowedMimeTypes []string
}

// Staged is one attachment held in the working set.
type Staged struct {
	ID       string
	Name     string
	Mime     string
	External bool

	// URL is the link target for external entries, or the stored download
	// URL carried over from a persisted record.
	URL string

	// Data holds the payload of a freshly staged file upload.
	Data []byte
	Size int64

	// Persisted marks entries seeded from the task's stored attachments.
	// They are kept as-is when the session commits, including their original
	// creation time.
	Persisted   bool
	StoragePath string
	DataURL     string
	CreatedAt   time.Time
}

// EditSession is the per-add/per-edit working set. It is a plain value
// object: callers hold it for the duration of one form interaction and pass
// it into the task save. Dropping it without saving discards every change.
type EditSession struct {
	TaskID string // empty while adding a new task
	limits Limits
	staged []Staged
}

func New(limits Limits) *EditSession {
	return &EditSession{limits: limits}
}

// Seed loads the persisted attachments of an existing task into the working
// set so the edit flow can remove or extend them.
func (s *EditSession) Seed(taskID string, existing []Staged) {
	s.TaskID = taskID
	s.staged = append([]Staged(nil), existing...)
}

// StageFile validates and stages an uploaded file payload.
func (s *EditSession) StageFile(name, mime string, data []byte) (*Staged, error) {
	if s.limits.MaxFileBytes > 0 && int64(len(data)) > s.limits.MaxFileBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes (max %d)", ErrFileTooLarge, name, len(data), s.limits.MaxFileBytes)
	}
	if !s.mimeAllowed(mime) {
		return nil, fmt.Errorf("%w: %s (%s)", ErrUnsupportedFileType, name, mime)
	}
	if mime == "" {
		mime = "application/octet-stream"
	}

	st := Staged{
		ID:   uuid.NewString(),
		Name: name,
		Mime: mime,
		Data: data,
		Size: int64(len(data)),
	}
	s.staged = append(s.staged, st)
	return &s.staged[len(s.staged)-1], nil
}

// StageLink validates and stages an external link attachment.
func (s *EditSession) StageLink(rawURL, label string) (*Staged, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	name := strings.TrimSpace(label)
	if name == "" {
		name = deriveLabel(u.String())
	}

	st := Staged{
		ID:       uuid.NewString(),
		Name:     name,
		Mime:     "link",
		External: true,
		URL:      u.String(),
	}
	s.staged = append(s.staged, st)
	return &s.staged[len(s.staged)-1], nil
}

// Remove drops a staged entry. Persisted entries are removed from the
// working set only; the stored record survives until the session commits.
func (s *EditSession) Remove(id string) bool {
	for i, st := range s.staged {
		if st.ID == id {
			s.staged = append(s.staged[:i], s.staged[i+1:]...)
			return true
		}
	}
	return false
}

// Staged returns the current working set in staging order.
func (s *EditSession) Staged() []Staged {
	return append([]Staged(nil), s.staged...)
}

func (s *EditSession) Len() int {
	return len(s.staged)
}

func (s *EditSession) mimeAllowed(mime string) bool {
	if len(s.limits.AllowedMimeTypes) == 0 {
		return true
	}
	for _, allowed := range s.limits.AllowedMimeTypes {
		if prefix, ok := strings.CutSuffix(allowed, "/*"); ok {
			if strings.HasPrefix(mime, prefix+"/") {
				return true
			}
			continue
		}
		if mime == allowed {
			return true
		}
	}
	return false
}

// deriveLabel mirrors the label fallback for unlabeled links: the URL with
// its scheme stripped, capped at 60 characters.
func deriveLabel(raw string) string {
	label := strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if len(label) > 60 {
		label = label[:60]
	}
	return label
}
