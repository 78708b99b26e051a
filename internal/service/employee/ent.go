package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskdeck/taskdeck_backend/internal/repo"
	entemployee "github.com/taskdeck/taskdeck_backend/internal/repo/employee"
)

type entService struct {
	db       *repo.Client
	notifier ChangeNotifier // may be nil
}

// NewEnt returns a Service backed by the document database. Uniqueness is
// enforced both by a pre-insert lookup and the unique index on the
// lowercased name.
func NewEnt(db *repo.Client, notifier ChangeNotifier) Service {
	return &entService{db: db, notifier: notifier}
}

func (s *entService) notify(ctx context.Context) {
	if s.notifier != nil {
		s.notifier.NotifyChanged(ctx)
	}
}

func (s *entService) List(ctx context.Context) ([]*Employee, error) {
	rows, err := s.db.Employee.Query().
		Order(entemployee.ByNameLower()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	employees := make([]*Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, fromRow(row))
	}
	return employees, nil
}

func (s *entService) Add(ctx context.Context, name string) (*Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	lower := strings.ToLower(name)

	exists, err := s.db.Employee.Query().
		Where(entemployee.NameLower(lower)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check employee name: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	row, err := s.db.Employee.Create().
		SetName(name).
		SetNameLower(lower).
		Save(ctx)
	if err != nil {
		// concurrent insert can still trip the unique index
		if repo.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		return nil, fmt.Errorf("create employee: %w", err)
	}

	s.notify(ctx)
	return fromRow(row), nil
}

func (s *entService) SeedStarter(ctx context.Context) error {
	count, err := s.db.Employee.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("count employees: %w", err)
	}
	if count > 0 {
		return nil
	}

	builders := make([]*repo.EmployeeCreate, 0, len(StarterNames))
	for _, name := range StarterNames {
		builders = append(builders, s.db.Employee.Create().
			SetName(name).
			SetNameLower(strings.ToLower(name)))
	}
	if _, err := s.db.Employee.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("seed employees: %w", err)
	}

	s.notify(ctx)
	return nil
}

func fromRow(row *repo.Employee) *Employee {
	return &Employee{
		ID:        row.ID.String(),
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}
