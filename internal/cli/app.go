package cli

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"appliancefit/internal/catalog"
	"appliancefit/internal/config"
	"appliancefit/internal/crawler"
	"appliancefit/internal/db"
	"appliancefit/internal/importer"
	"appliancefit/internal/repository"
)

// app holds the collaborators built from config. Every backing service is
// optional; one that is not configured or not reachable is left out.
type app struct {
	cfg      *config.Config
	scraper  *crawler.Scraper
	catalogs catalog.Chain
	stores   []importer.SpecSaver
	raw      *repository.RawRepository

	pool        *pgxpool.Pool
	sqlDB       *sql.DB
	redisClient *redis.Client
}

func newApp(ctx context.Context, cfg *config.Config) *app {
	a := &app{
		cfg:     cfg,
		scraper: crawler.NewScraper(crawler.NewFetcher(cfg.FetchTimeout, cfg.UserAgent), cfg.SourceBaseURL),
	}

	if cfg.RedisURL != "" {
		a.openRedis(ctx)
	}
	if cfg.DatabaseURL != "" {
		a.openPostgres(ctx)
	}
	if cfg.CatalogXLSX != "" {
		a.catalogs = append(a.catalogs, catalog.NewSheet(cfg.CatalogXLSX, cfg.CatalogSheet))
	}
	if cfg.GVizSheetID != "" {
		a.catalogs = append(a.catalogs, catalog.NewGViz(cfg.GVizSheetID, cfg.CatalogSheet))
	}

	names := make([]string, 0, len(a.catalogs))
	for _, c := range a.catalogs {
		names = append(names, c.Name())
	}
	log.Info().Strs("catalogs", names).Msg("[App] ready")
	return a
}

func (a *app) openRedis(ctx context.Context) {
	r, client, err := catalog.NewRedisFromURL(a.cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("[App] redis disabled")
		return
	}
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("[App] redis unreachable, disabled")
		_ = client.Close()
		return
	}
	a.redisClient = client
	a.catalogs = append(a.catalogs, r)
	a.stores = append(a.stores, r)
}

func (a *app) openPostgres(ctx context.Context) {
	pool, err := db.NewPool(ctx, a.cfg.DatabaseURL)
	if err != nil {
		log.Warn().Err(err).Msg("[App] postgres catalog disabled")
		return
	}
	repo := &repository.CatalogRepository{DB: pool}
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Warn().Err(err).Msg("[App] postgres catalog disabled")
		pool.Close()
		return
	}
	a.pool = pool
	pg := catalog.NewPostgres(repo)
	a.catalogs = append(a.catalogs, pg)
	a.stores = append(a.stores, pg)

	sqlDB, err := db.New(a.cfg.DatabaseURL)
	if err != nil {
		log.Warn().Err(err).Msg("[App] raw page snapshots disabled")
		return
	}
	raw := &repository.RawRepository{DB: sqlDB}
	if err := raw.EnsureSchema(); err != nil {
		log.Warn().Err(err).Msg("[App] raw page snapshots disabled")
		_ = sqlDB.Close()
		return
	}
	a.sqlDB = sqlDB
	a.raw = raw
}

// rawStore returns the snapshot store as an interface, nil when disabled.
func (a *app) rawStore() importer.RawStore {
	if a.raw == nil {
		return nil
	}
	return a.raw
}

func (a *app) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
	if a.sqlDB != nil {
		_ = a.sqlDB.Close()
	}
	if a.redisClient != nil {
		_ = a.redisClient.Close()
	}
}
