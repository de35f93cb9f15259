package app

import (
	"context"
	"fmt"

	"github.com/Emacore17/adottaungatto-it-sub001/cache"
	"github.com/Emacore17/adottaungatto-it-sub001/config"
	"github.com/Emacore17/adottaungatto-it-sub001/geo"
	"github.com/Emacore17/adottaungatto-it-sub001/handler"
	"github.com/Emacore17/adottaungatto-it-sub001/middleware/auth"
	cachemw "github.com/Emacore17/adottaungatto-it-sub001/middleware/cache"
	log "github.com/Emacore17/adottaungatto-it-sub001/pkg/logger"
	"github.com/Emacore17/adottaungatto-it-sub001/repository"
	"github.com/Emacore17/adottaungatto-it-sub001/search"
	"github.com/Shopify/sarama"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Application struct {
	app           *fiber.App
	cfg           *config.Config
	index         *geo.Index
	resolver      *search.Resolver
	cacheRepo     *cache.RedisRepository
	kafkaProducer sarama.SyncProducer
	checks        map[string]handler.Check
	closers       []func()
}

// New builds the listing source chosen by cfg and everything the routes need.
// A missing kafka producer only disables the events endpoint.
func New(ctx context.Context, cfg *config.Config, kafkaProducer sarama.SyncProducer) (*Application, error) {
	index, err := geo.Load(cfg.GeographyDataPath)
	if err != nil {
		return nil, err
	}

	a := &Application{
		cfg:           cfg,
		index:         index,
		cacheRepo:     cache.NewRedisRepository(cfg.RedisAddr, cfg.RedisPassword),
		kafkaProducer: kafkaProducer,
		checks:        map[string]handler.Check{},
	}

	source, err := a.listingSource(ctx)
	if err != nil {
		return nil, err
	}
	if a.cacheRepo.Enabled() {
		a.checks["redis"] = func(context.Context) error { return a.cacheRepo.Ping() }
	}

	a.resolver = search.NewResolver(index, source, search.Policy{
		MinMatches:     cfg.MinMatches,
		NearbyRadiusKm: cfg.NearbyRadiusKm,
	})

	a.app = fiber.New(fiber.Config{ErrorHandler: handler.ErrorHandler})
	a.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	a.app.Use(cors.New())
	a.app.Use(recover.New())
	a.app.Use(auth.New(cfg.ApiKey))
	a.app.Use(pprof.New())
	a.app.Use(cachemw.New(a.cacheRepo, cfg.CacheTTL))

	a.Register()

	return a, nil
}

func (a *Application) listingSource(ctx context.Context) (search.ListingSource, error) {
	log.Logger().Info("listing source selected", zap.String("backend", a.cfg.ListingsBackend))

	switch a.cfg.ListingsBackend {
	case config.BackendPostgres:
		repo, err := repository.New(ctx, a.cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, repo.Close)
		a.checks["postgres"] = repo.Ping
		return repo, nil
	case config.BackendElastic:
		if a.cfg.ElasticURL == "" {
			return nil, fmt.Errorf("ELASTIC_CONN_STR must be set for the %s backend", config.BackendElastic)
		}
		listingIndex := search.NewListingIndex(a.cfg.ElasticURL, a.cfg.ElasticIndex)
		a.checks["elasticsearch"] = listingIndex.Ping
		return listingIndex, nil
	case config.BackendMemory:
		return search.LoadMemorySource(a.cfg.ListingsSeedPath)
	}

	return nil, fmt.Errorf("unknown listings backend %q", a.cfg.ListingsBackend)
}

func (a *Application) Register() {
	geography := handler.NewGeographyHandler(a.index)

	handler.RegisterSwagger(a.app)
	a.app.Get("/healthcheck", handler.HealthCheck)
	a.app.Get("/readiness", handler.Readiness(a.checks))
	a.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	a.app.Get("/monitor", monitor.New())
	a.app.Get("/listings/search", handler.SearchListings(a.resolver, a.cfg.SearchTimeout))
	a.app.Get("/listings/filters", handler.GetListingFiltersHandler())
	a.app.Post("/listings/events", handler.CreateListingEventsHandler(a.kafkaProducer))
	a.app.Get("/geography/regions", geography.HandleRegions)
	a.app.Get("/geography/areas/:id", geography.HandleArea)
	a.app.Get("/geography/areas/:id/children", geography.HandleChildren)
	a.app.Get("/geography/suggest", geography.HandleSuggest)
	a.app.Get("/caches/prune", handler.InvalidateCache(a.cacheRepo))
}

func (a *Application) App() *fiber.App {
	return a.app
}

func (a *Application) Listen() error {
	return a.app.Listen(":" + a.cfg.Port)
}

func (a *Application) Shutdown() error {
	err := a.app.Shutdown()
	for _, closeFn := range a.closers {
		closeFn()
	}
	if a.kafkaProducer != nil {
		if cerr := a.kafkaProducer.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
