package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck_backend/config"
	"github.com/taskdeck/taskdeck_backend/internal/service/employee"
	"github.com/taskdeck/taskdeck_backend/internal/service/task"
	"github.com/taskdeck/taskdeck_backend/pkg/database"
	"github.com/taskdeck/taskdeck_backend/pkg/kvstore"
	redispkg "github.com/taskdeck/taskdeck_backend/pkg/redis"
)

func NewSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the starter employee directory and sample tasks",
		Long: `Populates the employee directory with the starter names and creates a
few sample tasks. Each seed only runs against an empty collection, so
re-running it is safe.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			employees, tasks, cleanup, err := newSeedServices(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := context.Background()
			if err := employees.SeedStarter(ctx); err != nil {
				return fmt.Errorf("failed to seed employees: %w", err)
			}
			if err := seedSampleTasks(ctx, employees, tasks); err != nil {
				return fmt.Errorf("failed to seed tasks: %w", err)
			}
			fmt.Println("Employee directory and sample tasks seeded.")
			return nil
		},
	}

	return cmd
}

func newSeedServices(cfg *config.Config) (employee.Service, task.Service, func(), error) {
	if cfg.Storage.Mode == config.StorageModeDocument {
		client, err := database.NewEntClient(cfg.Database)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create ent client: %w", err)
		}
		cleanup := func() { _ = client.Close() }
		// sample tasks carry no attachments, so no blob store is needed
		return employee.NewEnt(client, nil), task.NewEnt(client, nil, nil), cleanup, nil
	}

	rdb, err := redispkg.NewRedisFromCentral(cfg.Redis)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	cleanup := func() { _ = rdb.Close() }
	store := kvstore.NewRedis(rdb)
	return employee.NewKV(store, nil), task.NewKV(store, nil), cleanup, nil
}

// seedSampleTasks creates the demo tasks a fresh board starts with. It is a
// no-op when any task already exists.
func seedSampleTasks(ctx context.Context, employees employee.Service, tasks task.Service) error {
	existing, err := tasks.List(ctx, task.Filter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	byName := make(map[string]*employee.Employee)
	list, err := employees.List(ctx)
	if err != nil {
		return err
	}
	for _, e := range list {
		byName[e.Name] = e
	}

	samples := []struct {
		title    string
		assignee string
		days     int
		status   task.Status
	}{
		{"Add social media links to web design", employee.StarterNames[0], 3, task.StatusClosed},
		{"Database not set up correctly", employee.StarterNames[1], 4, task.StatusOpen},
		{"Client newest web design", employee.StarterNames[0], 3, task.StatusWaitingClient},
	}

	for _, s := range samples {
		deadline := time.Now().AddDate(0, 0, s.days)
		draft := task.Draft{
			Title:    s.title,
			Deadline: &deadline,
			Status:   s.status,
		}
		if e, ok := byName[s.assignee]; ok {
			draft.AssignedID = e.ID
			draft.AssignedName = e.Name
		}
		if _, err := tasks.Create(ctx, draft, nil); err != nil {
			return err
		}
	}
	return nil
}
