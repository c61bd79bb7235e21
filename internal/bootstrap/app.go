package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/catalog"
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/recommend"
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/scoring"
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/services/health"
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/shared/config"
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/shared/server"
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/shared/storage/db"
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/shared/storage/object"
	localstore "github.com/Varshitha-vasamsetti/eco-pack-ai/internal/shared/storage/object/local"
	s3store "github.com/Varshitha-vasamsetti/eco-pack-ai/internal/shared/storage/object/s3"
)

// App holds shared dependencies wired for serving.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Store            object.ObjectStore
	Bundle           *scoring.Bundle
	Catalog          *catalog.Snapshot
	CatalogRepo      catalog.Repo
	HistoryRepo      recommend.HistoryRepo
	CatalogService   *catalog.Service
	RecommendService *recommend.Service
	CatalogHandler   *catalog.Handler
	RecommendHandler *recommend.Handler
	Health           *health.Service
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	bundle, err := buildBundle(ctx, cfg, store)
	if err != nil {
		return nil, err
	}

	var catalogRepo catalog.Repo
	if sqlDB != nil {
		catalogRepo = &catalog.PGRepo{DB: sqlDB}
	} else {
		catalogRepo = catalog.NewMemoryRepo()
	}

	snapshot, err := catalog.LoadSnapshot(ctx, catalogRepo)
	if err != nil {
		return nil, err
	}

	engine := recommend.NewEngine(bundle, snapshot)

	var historyRepo recommend.HistoryRepo
	if sqlDB != nil {
		historyRepo = &recommend.PGRepo{DB: sqlDB}
	} else {
		historyRepo = recommend.NewMemoryRepo()
	}

	catalogSvc := &catalog.Service{Catalog: snapshot, Repo: catalogRepo}
	recommendSvc := &recommend.Service{
		Engine:     engine,
		Categories: catalogRepo,
		History:    historyRepo,
	}

	app := &App{
		Config:           cfg,
		DB:               sqlDB,
		Store:            store,
		Bundle:           bundle,
		Catalog:          snapshot,
		CatalogRepo:      catalogRepo,
		HistoryRepo:      historyRepo,
		CatalogService:   catalogSvc,
		RecommendService: recommendSvc,
		CatalogHandler:   catalog.NewHandler(catalogSvc),
		RecommendHandler: recommend.NewHandler(recommendSvc),
		Health:           health.NewService(bundle != nil, snapshot.Len(), sqlDB != nil),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		CatalogHandler:   app.CatalogHandler,
		RecommendHandler: app.RecommendHandler,
		Health:           app.Health,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

// buildBundle fetches the trained model bundle from the object store. In dev
// a missing or unreadable bundle falls back to the embedded one; production
// refuses to start on anything but a valid trained artifact.
func buildBundle(ctx context.Context, cfg config.Config, store object.ObjectStore) (*scoring.Bundle, error) {
	rc, err := store.Open(ctx, cfg.ModelBundleKey)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: model bundle %s unavailable; using embedded bundle: %v", cfg.ModelBundleKey, err)
			return scoring.DefaultBundle()
		}
		return nil, fmt.Errorf("open model bundle %s: %w", cfg.ModelBundleKey, err)
	}
	defer rc.Close()

	bundle, err := scoring.LoadBundle(rc)
	if err != nil {
		return nil, fmt.Errorf("load model bundle %s: %w", cfg.ModelBundleKey, err)
	}
	return bundle, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
