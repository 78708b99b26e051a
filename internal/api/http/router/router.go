package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/taskdeck/taskdeck_backend/config"
	"github.com/taskdeck/taskdeck_backend/internal/api/http/handler"
	"github.com/taskdeck/taskdeck_backend/internal/service/employee"
	"github.com/taskdeck/taskdeck_backend/internal/service/realtime"
	"github.com/taskdeck/taskdeck_backend/internal/service/session"
	"github.com/taskdeck/taskdeck_backend/internal/service/task"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg         *config.Config
	TaskSvc     task.Service
	EmployeeSvc employee.Service
	Hub         *realtime.Hub
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	limits := session.Limits{
		MaxFileBytes:     r.p.Cfg.Attachments.MaxFileBytes,
		AllowedMimeTypes: r.p.Cfg.Attachments.AllowedMimeTypes,
	}

	taskH := handler.NewTaskHandler(r.p.TaskSvc, r.p.EmployeeSvc, limits)
	employeeH := handler.NewEmployeeHandler(r.p.EmployeeSvc)
	exportH := handler.NewExportHandler(r.p.TaskSvc)
	streamH := handler.NewStreamHandler(r.p.Hub)

	api := app.Group("/api/v1")

	r.registerEmployeeRoutes(api, employeeH)
	r.registerTaskRoutes(api, taskH)
	r.registerExportRoutes(api, exportH)
	r.registerStreamRoutes(api, streamH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
