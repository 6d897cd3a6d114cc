package container

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"blinds/storefront/internal/cache"
	"blinds/storefront/internal/category"
	"blinds/storefront/internal/client"
	"blinds/storefront/internal/config"
	"blinds/storefront/internal/endpoint"
	"blinds/storefront/internal/mapper"
	"blinds/storefront/internal/server"
	"blinds/storefront/internal/service"
	"blinds/storefront/internal/sizing"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config     *config.Config
	Categories *category.Table
	Client     client.CatalogClient
	Service    *service.Service
	Server     *server.Server

	httpServer *http.Server
	redis      *redis.Client
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	ConfigureLogging(cfg.Log)

	container := &Container{
		Config: cfg,
	}

	// Category table is validated before anything is served
	table, err := category.Default().WithAliases(cfg.Catalog.CategoryAliases)
	if err != nil {
		return nil, fmt.Errorf("invalid category aliases: %w", err)
	}
	container.Categories = table
	log.Infof("✅ Category table ready: %d categories, %d aliases", len(table.All()), table.Len())

	responseCache := cache.NewMemoryCache()
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		// Test connection
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		log.Info("✅ Connected to Redis successfully")
		container.redis = rdb
		responseCache = cache.NewRedisCache(rdb, cfg.Redis.KeyPrefix)
	}

	baseURL := endpoint.Resolve(cfg.Catalog, endpoint.RuntimeServer)
	if !endpoint.Configured(cfg.Catalog) {
		log.Warnf("⚠️ No catalog endpoint configured, using %s", baseURL)
	}
	catalogClient := client.NewCatalogClient(cfg.Catalog, baseURL, responseCache)
	container.Client = catalogClient

	svc := service.NewService(
		catalogClient,
		table,
		mapper.NewProductMapper(table),
		cfg.Catalog.ListLimit,
	)
	container.Service = svc

	srv, err := server.New(svc, sizing.NewValidator(), server.Options{
		APIURL:         endpoint.Resolve(cfg.Catalog, endpoint.RuntimeBrowser),
		RequestTimeout: cfg.Server.RequestTimeout(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize server: %w", err)
	}
	container.Server = srv

	container.httpServer = &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return container, nil
}

// Run serves HTTP until ctx is cancelled, then shuts the server down gracefully
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if c.Config.Catalog.ProbeOnStart {
		g.Go(func() error {
			endpoint.CheckOnStart(ctx, c.Config.Catalog)
			return nil
		})
	}

	g.Go(func() error {
		log.Infof("🚀 Storefront listening on %s", c.httpServer.Addr)
		if err := c.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("🛑 Shutting down HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(c.Config.Server.ShutdownTimeout)*time.Second)
		defer cancel()
		return c.httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	var errs []error
	if c.Client != nil {
		errs = append(errs, c.Client.Close())
	}
	if c.redis != nil {
		errs = append(errs, c.redis.Close())
	}

	log.Info("Container shut down successfully")
	return errors.Join(errs...)
}

// ConfigureLogging applies the log level and format to the standard logrus logger.
func ConfigureLogging(cfg config.LogConfig) {
	log.SetOutput(os.Stdout)

	if strings.EqualFold(cfg.Format, "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		log.Warnf("⚠️ Unknown log level %q, using info", cfg.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
