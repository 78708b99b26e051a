package app

import (
	"go.uber.org/fx"

	"github.com/taskdeck/taskdeck_backend/config"
	"github.com/taskdeck/taskdeck_backend/internal/repo"
	"github.com/taskdeck/taskdeck_backend/internal/service/employee"
	"github.com/taskdeck/taskdeck_backend/internal/service/realtime"
	"github.com/taskdeck/taskdeck_backend/internal/service/task"
	"github.com/taskdeck/taskdeck_backend/pkg/kvstore"
	s3pkg "github.com/taskdeck/taskdeck_backend/pkg/s3"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideTaskService,
		ProvideEmployeeService,
		ProvideHub,
	),
)

func ProvideTaskService(
	cfg *config.Config,
	db *repo.Client,
	s3 *s3pkg.Client,
	store kvstore.Store,
	bus realtime.Bus,
) task.Service {
	notifier := realtime.NewNotifier(bus, realtime.TopicTasks)
	if cfg.Storage.Mode == config.StorageModeDocument {
		return task.NewEnt(db, s3, notifier)
	}
	return task.NewKV(store, notifier)
}

func ProvideEmployeeService(
	cfg *config.Config,
	db *repo.Client,
	store kvstore.Store,
	bus realtime.Bus,
) employee.Service {
	notifier := realtime.NewNotifier(bus, realtime.TopicEmployees)
	if cfg.Storage.Mode == config.StorageModeDocument {
		return employee.NewEnt(db, notifier)
	}
	return employee.NewKV(store, notifier)
}

func ProvideHub(bus realtime.Bus, tasks task.Service, employees employee.Service) *realtime.Hub {
	return realtime.NewHub(bus, tasks, employees)
}
