// Package container provides dependency injection using Uber FX
package container

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	pantryapp "github.com/pantrysage/v2/internal/application/pantry"
	recipeapp "github.com/pantrysage/v2/internal/application/recipes"
	"github.com/pantrysage/v2/internal/application/suggestion"
	"github.com/pantrysage/v2/internal/infrastructure/config"
	"github.com/pantrysage/v2/internal/infrastructure/http/handlers"
	"github.com/pantrysage/v2/internal/infrastructure/http/server"
	"github.com/pantrysage/v2/internal/infrastructure/monitoring"
	"github.com/pantrysage/v2/internal/infrastructure/persistence/memory"
	"github.com/pantrysage/v2/internal/infrastructure/persistence/migrations"
	"github.com/pantrysage/v2/internal/infrastructure/persistence/postgres"
	"github.com/pantrysage/v2/internal/infrastructure/persistence/redis"
	"github.com/pantrysage/v2/internal/matching"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/internal/ports/outbound"
	"github.com/pantrysage/v2/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module wires the full application graph.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MonitoringModule,
	StorageModule,
	CacheModule,
	EngineModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
	func(log *zap.Logger) *zap.SugaredLogger {
		return log.Sugar()
	},
)

// MonitoringModule provides the Prometheus collectors
var MonitoringModule = fx.Provide(
	monitoring.NewMetrics,
	func(m *monitoring.Metrics) outbound.SuggestionMetrics { return m },
)

// Storage bundles the persistence backends selected by configuration.
// Pool is nil when the in-memory backend is active.
type Storage struct {
	Pantry  outbound.PantryRepository
	Recipes outbound.RecipeRepository
	Pool    *pgxpool.Pool
}

// StorageModule provides the pantry and recipe repositories
var StorageModule = fx.Provide(
	NewStorage,
	func(s *Storage) outbound.PantryRepository { return s.Pantry },
	func(s *Storage) outbound.RecipeRepository { return s.Recipes },
)

// NewStorage selects the persistence backend from configuration. The
// postgres backend connects and applies the schema eagerly so a broken
// database fails the boot instead of the first request.
func NewStorage(cfg *config.Config, log *zap.Logger) (*Storage, error) {
	if cfg.Database.Backend == "memory" {
		log.Info("Using in-memory persistence")
		return &Storage{
			Pantry:  memory.NewPantryRepository(),
			Recipes: memory.NewRecipeRepository(),
		}, nil
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	if err := migrations.Apply(ctx, pool, log); err != nil {
		pool.Close()
		return nil, err
	}
	return &Storage{
		Pantry:  postgres.NewPantryRepository(pool, log),
		Recipes: postgres.NewRecipeRepository(pool, log),
		Pool:    pool,
	}, nil
}

// Cache bundles the cache backend selected by configuration. Client is
// nil when the in-memory backend is active.
type Cache struct {
	Repository outbound.CacheRepository
	Client     *goredis.Client
}

// CacheModule provides the suggestion cache
var CacheModule = fx.Provide(
	NewCache,
	func(c *Cache) outbound.CacheRepository { return c.Repository },
)

// NewCache selects the cache backend from configuration.
func NewCache(cfg *config.Config, log *zap.Logger) (*Cache, error) {
	if cfg.Cache.Backend == "memory" {
		log.Info("Using in-memory cache")
		return &Cache{Repository: memory.NewCacheRepository()}, nil
	}

	client, err := redis.NewClient(context.Background(), cfg, log)
	if err != nil {
		return nil, err
	}
	return &Cache{
		Repository: redis.NewCacheRepository(client, log),
		Client:     client,
	}, nil
}

// EngineModule provides the matching and ranking engine
var EngineModule = fx.Provide(
	func(cfg *config.Config) *matching.Engine {
		return matching.NewEngine(cfg.Matching.ScoreConfig(), matching.DefaultTables())
	},
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(
		pantryRepo outbound.PantryRepository,
		recipeRepo outbound.RecipeRepository,
		cache outbound.CacheRepository,
		engine *matching.Engine,
		metrics outbound.SuggestionMetrics,
		log *zap.Logger,
	) inbound.SuggestionService {
		return suggestion.NewSuggestionService(pantryRepo, recipeRepo, cache, engine, metrics, log)
	},
	func(repo outbound.PantryRepository, log *zap.Logger) inbound.PantryService {
		return pantryapp.NewPantryService(repo, log)
	},
	func(repo outbound.RecipeRepository, log *zap.Logger) inbound.RecipeService {
		return recipeapp.NewRecipeService(repo, log)
	},
)

// HTTPModule provides HTTP server and handlers
var HTTPModule = fx.Provide(
	handlers.NewAPIHandlers,
	server.NewServer,
)

// LifecycleModule registers the lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks starts the HTTP server and tears down the
// external connections on stop.
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	storage *Storage,
	cache *Cache,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting PantrySage",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := srv.Start(); err != nil {
					log.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down PantrySage")

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Failed to shut down HTTP server", zap.Error(err))
			}
			if storage.Pool != nil {
				storage.Pool.Close()
			}
			if cache.Client != nil {
				if err := cache.Client.Close(); err != nil {
					log.Error("Failed to close Redis client", zap.Error(err))
				}
			}
			_ = log.Sync()
			return nil
		},
	})
}
