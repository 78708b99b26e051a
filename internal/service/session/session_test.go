package session

import (
	"bytes"
	"errors"
	"testing"
)

func TestStageFileSizeCeiling(t *testing.T) {
	s := New(Limits{MaxFileBytes: 16})

	if _, err := s.StageFile("small.txt", "text/plain", []byte("ok")); err != nil {
		t.Fatalf("StageFile() error = %v", err)
	}

	_, err := s.StageFile("big.bin", "application/octet-stream", bytes.Repeat([]byte{0}, 17))
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("StageFile() error = %v, want ErrFileTooLarge", err)
	}

	// the rejected file must never enter the working set
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestStageFileMimeAllowlist(t *testing.T) {
	limits := Limits{
		MaxFileBytes: 1 << 20,
		AllowedMimeTypes: []string{
			"image/*",
			"application/pdf",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		},
	}

	tests := []struct {
		name    string
		mime    string
		allowed bool
	}{
		{"png image", "image/png", true},
		{"jpeg image", "image/jpeg", true},
		{"pdf", "application/pdf", true},
		{"word document", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", true},
		{"zip archive", "application/zip", false},
		{"plain text", "text/plain", false},
		{"imagesque prefix abuse", "imagery/png", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(limits)
			_, err := s.StageFile("f", tt.mime, []byte("x"))
			if tt.allowed && err != nil {
				t.Errorf("StageFile(%q) error = %v, want nil", tt.mime, err)
			}
			if !tt.allowed && !errors.Is(err, ErrUnsupportedFileType) {
				t.Errorf("StageFile(%q) error = %v, want ErrUnsupportedFileType", tt.mime, err)
			}
		})
	}
}

func TestStageLink(t *testing.T) {
	s := New(Limits{})

	st, err := s.StageLink("https://example.com/spec.pdf", "")
	if err != nil {
		t.Fatalf("StageLink() error = %v", err)
	}
	if !st.External {
		t.Error("staged link not marked external")
	}
	if st.Name != "example.com/spec.pdf" {
		t.Errorf("derived label = %q", st.Name)
	}

	for _, bad := range []string{"", "notaurl", "ftp://example.com/x", "http://"} {
		if _, err := s.StageLink(bad, "x"); !errors.Is(err, ErrInvalidURL) {
			t.Errorf("StageLink(%q) error = %v, want ErrInvalidURL", bad, err)
		}
	}
}

func TestRemoveBeforeSave(t *testing.T) {
	s := New(Limits{MaxFileBytes: 1 << 20})
	a, _ := s.StageFile("a.png", "image/png", []byte("aaa"))
	b, _ := s.StageLink("https://example.com", "home")

	if !s.Remove(a.ID) {
		t.Fatal("Remove() = false for staged entry")
	}
	if s.Remove("missing") {
		t.Error("Remove() = true for unknown id")
	}

	staged := s.Staged()
	if len(staged) != 1 || staged[0].ID != b.ID {
		t.Errorf("Staged() = %+v, want only the link", staged)
	}
}

func TestSeedCopiesExisting(t *testing.T) {
	s := New(Limits{})
	existing := []Staged{{ID: "att-1", Name: "old.pdf", Persisted: true}}
	s.Seed("task-1", existing)

	if s.TaskID != "task-1" || s.Len() != 1 {
		t.Fatalf("Seed() state = %q/%d", s.TaskID, s.Len())
	}

	// mutating the caller's slice must not leak into the session
	existing[0].Name = "changed"
	if got := s.Staged()[0].Name; got != "old.pdf" {
		t.Errorf("seeded name = %q, want old.pdf", got)
	}
}
