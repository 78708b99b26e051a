// Package employee holds the append-only employee directory. Names are
// unique case-insensitively and records are never edited or removed, so the
// surface is just listing and adding.
package employee

import (
	"context"
	"time"
)

type Employee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// StarterNames seeds an empty directory so a fresh deployment has someone
// to assign tasks to.
var StarterNames = []string{
	"James O'Brian",
	"Adam Baker",
	"Priya Sharma",
	"Mina Patel",
}

// ChangeNotifier is pinged after every successful mutation so live
// subscribers can re-query and push a fresh snapshot.
type ChangeNotifier interface {
	NotifyChanged(ctx context.Context)
}

type Service interface {
	// List returns all employees sorted by name.
	List(ctx context.Context) ([]*Employee, error)

	// Add appends a new employee. The name is trimmed and must be unique
	// ignoring case; otherwise ErrDuplicateName.
	Add(ctx context.Context, name string) (*Employee, error)

	// SeedStarter populates the starter names if, and only if, the directory
	// is empty.
	SeedStarter(ctx context.Context) error
}
