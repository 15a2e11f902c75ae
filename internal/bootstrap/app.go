package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"advisor-backend/internal/evaluations"
	"advisor-backend/internal/reference"
	"advisor-backend/internal/shared/config"
	"advisor-backend/internal/shared/server"
	"advisor-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config            config.Config
	Router            *gin.Engine
	DB                *sql.DB
	EvaluationsRepo   evaluations.Repo
	EvaluationService *evaluations.Service
	ReferenceService  *reference.Service
	EvaluationHandler *evaluations.Handler
	ReferenceHandler  *reference.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB := buildDB(ctx, cfg)

	var repo evaluations.Repo
	if sqlDB != nil {
		repo = &evaluations.PGRepo{DB: sqlDB}
	} else {
		repo = evaluations.NewMemoryRepo()
	}

	evalSvc := evaluations.NewService(repo)
	refSvc := reference.NewService()

	evalHandler := evaluations.NewHandler(evalSvc)
	evalHandler.MaxList = cfg.EvaluationHistory

	app := &App{
		Config:            cfg,
		DB:                sqlDB,
		EvaluationsRepo:   repo,
		EvaluationService: evalSvc,
		ReferenceService:  refSvc,
		EvaluationHandler: evalHandler,
		ReferenceHandler:  reference.NewHandler(refSvc),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            cfg,
		EvaluationHandler: app.EvaluationHandler,
		ReferenceHandler:  app.ReferenceHandler,
	})

	return app, nil
}

// buildDB connects and migrates when DATABASE_URL is set, otherwise
// signals the in-memory fallback by returning nil.
func buildDB(ctx context.Context, cfg config.Config) *sql.DB {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
		return nil
	}
	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("bootstrap: failed to connect database, falling back to memory: %v", err)
		return nil
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("bootstrap: failed to run migrations, falling back to memory: %v", err)
		sqlDB.Close()
		return nil
	}
	return sqlDB
}
