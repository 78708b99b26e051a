package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck_backend/internal/service/session"
	"github.com/taskdeck/taskdeck_backend/pkg/kvstore"
)

func newKVService(t *testing.T) Service {
	t.Helper()
	return NewKV(kvstore.NewMemory(), nil)
}

func TestKVCreateDefaults(t *testing.T) {
	svc := newKVService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, Draft{Title: "  Ship release  "}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Ship release", created.Title)
	assert.Equal(t, StatusOpen, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	other, err := svc.Create(ctx, Draft{Title: "Second"}, nil)
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID)
}

func TestKVCreateValidation(t *testing.T) {
	svc := newKVService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, Draft{Title: "   "}, nil)
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = svc.Create(ctx, Draft{Title: "ok", Status: Status("Done")}, nil)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestKVUpdateMergesPatch(t *testing.T) {
	svc := newKVService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, Draft{Title: "Draft title", Details: "keep me"}, nil)
	require.NoError(t, err)

	title := "Final title"
	status := StatusClosed
	deadline := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.Update(ctx, created.ID, Patch{
		Title:    &title,
		Status:   &status,
		Deadline: &deadline,
	}, nil))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final title", got.Title)
	assert.Equal(t, "keep me", got.Details, "unpatched fields keep stored values")
	assert.Equal(t, StatusClosed, got.Status)
	require.NotNil(t, got.Deadline)
	assert.True(t, got.Deadline.Equal(deadline))

	// id and creation timestamp never move
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.CreatedAt.Equal(created.CreatedAt))

	require.NoError(t, svc.Update(ctx, created.ID, Patch{ClearDeadline: true}, nil))
	got, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Deadline)
}

func TestKVUpdateErrors(t *testing.T) {
	svc := newKVService(t)
	ctx := context.Background()

	title := "x"
	assert.ErrorIs(t, svc.Update(ctx, "missing", Patch{Title: &title}, nil), ErrNotFound)

	created, err := svc.Create(ctx, Draft{Title: "real"}, nil)
	require.NoError(t, err)

	blank := "  "
	assert.ErrorIs(t, svc.Update(ctx, created.ID, Patch{Title: &blank}, nil), ErrTitleRequired)

	bad := Status("Later")
	assert.ErrorIs(t, svc.Update(ctx, created.ID, Patch{Status: &bad}, nil), ErrInvalidStatus)
}

func TestKVDeleteAbsentIsNoop(t *testing.T) {
	svc := newKVService(t)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "never-existed"))

	created, err := svc.Create(ctx, Draft{Title: "short lived"}, nil)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created.ID))
	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKVDeleteCascadesAttachments(t *testing.T) {
	svc := newKVService(t)
	ctx := context.Background()

	sess := session.New(session.Limits{})
	_, err := sess.StageFile("notes.txt", "text/plain", []byte("hello"))
	require.NoError(t, err)

	created, err := svc.Create(ctx, Draft{Title: "with file"}, sess)
	require.NoError(t, err)
	require.Len(t, created.Attachments, 1)
	attID := created.Attachments[0].ID

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.DownloadURL(ctx, attID)
	assert.ErrorIs(t, err, ErrAttachmentNotFound)
}

func TestKVListNewestFirst(t *testing.T) {
	svc := newKVService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, Draft{Title: "first"}, nil)
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := svc.Create(ctx, Draft{Title: "second"}, nil)
	require.NoError(t, err)

	got, err := svc.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)
}

func TestKVSessionCommitReplacesAttachments(t *testing.T) {
	svc := newKVService(t)
	ctx := context.Background()

	sess := session.New(session.Limits{})
	_, err := sess.StageFile("a.txt", "text/plain", []byte("a"))
	require.NoError(t, err)
	_, err = sess.StageLink("https://example.com/spec", "Spec doc")
	require.NoError(t, err)

	created, err := svc.Create(ctx, Draft{Title: "attached"}, sess)
	require.NoError(t, err)
	require.Len(t, created.Attachments, 2)

	// re-edit: drop the file, keep the link
	edit, err := svc.SeedSession(ctx, created.ID, session.Limits{})
	require.NoError(t, err)
	for _, st := range edit.Staged() {
		if !st.External {
			require.True(t, edit.Remove(st.ID))
		}
	}
	require.NoError(t, svc.Update(ctx, created.ID, Patch{}, edit))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Attachments, 1)
	assert.True(t, got.Attachments[0].External)

	url, err := svc.DownloadURL(ctx, got.Attachments[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/spec", url)
}

func TestKVEditKeepsAttachmentCreatedAt(t *testing.T) {
	svc := newKVService(t)
	ctx := context.Background()

	sess := session.New(session.Limits{})
	_, err := sess.StageFile("a.txt", "text/plain", []byte("a"))
	require.NoError(t, err)

	created, err := svc.Create(ctx, Draft{Title: "attached"}, sess)
	require.NoError(t, err)
	require.Len(t, created.Attachments, 1)
	original := created.Attachments[0].CreatedAt
	require.False(t, original.IsZero())

	time.Sleep(5 * time.Millisecond)

	// an unrelated edit through a seeded session must not restamp the
	// carried-over attachment
	edit, err := svc.SeedSession(ctx, created.ID, session.Limits{})
	require.NoError(t, err)
	require.NoError(t, svc.Update(ctx, created.ID, Patch{}, edit))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Attachments, 1)
	assert.True(t, got.Attachments[0].CreatedAt.Equal(original))
}

func TestKVCancelledEditLeavesRecordUnchanged(t *testing.T) {
	svc := newKVService(t)
	ctx := context.Background()

	sess := session.New(session.Limits{})
	_, err := sess.StageFile("keep.txt", "text/plain", []byte("keep"))
	require.NoError(t, err)

	created, err := svc.Create(ctx, Draft{Title: "stable"}, sess)
	require.NoError(t, err)

	// stage removals and additions, then drop the session without saving
	edit, err := svc.SeedSession(ctx, created.ID, session.Limits{})
	require.NoError(t, err)
	for _, st := range edit.Staged() {
		edit.Remove(st.ID)
	}
	_, err = edit.StageFile("new.txt", "text/plain", []byte("new"))
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Attachments, 1)
	assert.Equal(t, "keep.txt", got.Attachments[0].Name)
}

func TestKVOversizedFileNeverPersisted(t *testing.T) {
	svc := newKVService(t)
	ctx := context.Background()

	sess := session.New(session.Limits{MaxFileBytes: 4})
	_, err := sess.StageFile("big.bin", "application/octet-stream", []byte("too large"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, session.ErrFileTooLarge))

	created, err := svc.Create(ctx, Draft{Title: "clean"}, sess)
	require.NoError(t, err)
	assert.Empty(t, created.Attachments)
}

func TestKVEmbeddedDownloadURL(t *testing.T) {
	svc := newKVService(t)
	ctx := context.Background()

	sess := session.New(session.Limits{})
	_, err := sess.StageFile("pixel.png", "image/png", []byte{0x89, 0x50})
	require.NoError(t, err)

	created, err := svc.Create(ctx, Draft{Title: "img"}, sess)
	require.NoError(t, err)
	require.Len(t, created.Attachments, 1)

	url, err := svc.DownloadURL(ctx, created.Attachments[0].ID)
	require.NoError(t, err)
	assert.Contains(t, url, "data:image/png;base64,")
}
