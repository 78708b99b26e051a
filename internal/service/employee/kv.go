package employee

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck_backend/pkg/kvstore"
)

const employeesKey = "taskdeck:employees"

type kvService struct {
	store    kvstore.Store
	notifier ChangeNotifier // may be nil
}

// NewKV returns a Service persisting the directory to a key-value store as
// one JSON blob.
func NewKV(store kvstore.Store, notifier ChangeNotifier) Service {
	return &kvService{store: store, notifier: notifier}
}

func (s *kvService) load() ([]*Employee, error) {
	raw, err := s.store.Get(employeesKey)
	if err != nil {
		return nil, fmt.Errorf("%w: read employee directory: %v", ErrStorage, err)
	}
	if raw == nil {
		return nil, nil
	}
	var employees []*Employee
	if err := json.Unmarshal(raw, &employees); err != nil {
		return nil, fmt.Errorf("%w: malformed employee directory: %v", ErrStorage, err)
	}
	return employees, nil
}

func (s *kvService) save(employees []*Employee) error {
	raw, err := json.Marshal(employees)
	if err != nil {
		return fmt.Errorf("%w: encode employee directory: %v", ErrStorage, err)
	}
	if err := s.store.Set(employeesKey, raw); err != nil {
		return fmt.Errorf("%w: write employee directory: %v", ErrStorage, err)
	}
	return nil
}

func (s *kvService) notify(ctx context.Context) {
	if s.notifier != nil {
		s.notifier.NotifyChanged(ctx)
	}
}

func (s *kvService) List(ctx context.Context) ([]*Employee, error) {
	employees, err := s.load()
	if err != nil {
		return nil, err
	}
	sort.Slice(employees, func(i, j int) bool {
		return strings.ToLower(employees[i].Name) < strings.ToLower(employees[j].Name)
	})
	return employees, nil
}

func (s *kvService) Add(ctx context.Context, name string) (*Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	employees, err := s.load()
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(name)
	for _, e := range employees {
		if strings.ToLower(e.Name) == lower {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	}

	e := &Employee{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := s.save(append(employees, e)); err != nil {
		return nil, err
	}
	s.notify(ctx)
	return e, nil
}

func (s *kvService) SeedStarter(ctx context.Context) error {
	employees, err := s.load()
	if err != nil {
		return err
	}
	if len(employees) > 0 {
		return nil
	}
	for _, name := range StarterNames {
		employees = append(employees, &Employee{
			ID:        uuid.NewString(),
			Name:      name,
			CreatedAt: time.Now(),
		})
	}
	if err := s.save(employees); err != nil {
		return err
	}
	s.notify(ctx)
	return nil
}
