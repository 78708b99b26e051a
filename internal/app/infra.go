package app

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/taskdeck/taskdeck_backend/config"
	"github.com/taskdeck/taskdeck_backend/internal/repo"
	"github.com/taskdeck/taskdeck_backend/internal/service/realtime"
	"github.com/taskdeck/taskdeck_backend/pkg/database"
	"github.com/taskdeck/taskdeck_backend/pkg/kvstore"
	"github.com/taskdeck/taskdeck_backend/pkg/observability"
	redispkg "github.com/taskdeck/taskdeck_backend/pkg/redis"
	s3pkg "github.com/taskdeck/taskdeck_backend/pkg/s3"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideEntClient),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideKVStore),
	fx.Provide(ProvideBus),
	fx.Provide(ProvideOTel),
	fx.Provide(ProvideS3Client),
)

// ProvideEntClient opens the document database. In local mode there is
// nothing to open; downstream providers switch on the storage mode and
// never touch the nil client.
func ProvideEntClient(lc fx.Lifecycle, cfg *config.Config) (*repo.Client, error) {
	if cfg.Storage.Mode != config.StorageModeDocument {
		return nil, nil
	}
	client, err := database.NewEntClient(cfg.Database)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing main database connection")
			return client.Close()
		},
	})
	return client, nil
}

func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	rdb, err := redispkg.NewRedisFromCentral(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideKVStore(rdb *redis.Client) kvstore.Store {
	return kvstore.NewRedis(rdb)
}

func ProvideBus(rdb *redis.Client) realtime.Bus {
	return realtime.NewRedisBus(rdb)
}

func ProvideS3Client(cfg *config.Config) (*s3pkg.Client, error) {
	if cfg.Storage.Mode != config.StorageModeDocument {
		return nil, nil
	}
	return s3pkg.New(cfg.S3)
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Server.Environment,
		OTLPEndpoint:   cfg.Observability.Tracing.OTLPEndpoint,
		OTLPInsecure:   cfg.Observability.Tracing.OTLPInsecure,
		SamplingRate:   cfg.Observability.Tracing.SamplingRate,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
