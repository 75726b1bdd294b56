package app

import (
	"context"
	"log"
	"os"
	"time"

	"career-connect/internal/config"
	"career-connect/internal/database"
	"career-connect/internal/database/migration"
	dbpostgres "career-connect/internal/database/postgres"
	"career-connect/internal/database/seeder"
	"career-connect/internal/infrastructure/cache"
	"career-connect/internal/ws"
)

// Container owns the process-wide dependencies: database pool, cache,
// websocket hub and the shared logger. Build once in main, close once on
// shutdown.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := (migration.Runner{Dir: os.Getenv("MIGRATIONS_DIR")}).Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := verifySchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redis := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  redis,
		Hub:    hub,
		Logger: logger,
	}, nil
}

func verifySchema(ctx context.Context, db database.DB) error {
	checks := []struct {
		table   string
		columns []string
	}{
		{"users", []string{"id", "email", "name", "password_hash", "created_at", "updated_at"}},
		{"student_profiles", []string{"user_id", "branch", "skills", "cgpa", "projects", "interests"}},
		{"learning_activities", []string{"id", "user_id", "activity", "created_at"}},
		{"opportunities", []string{"id", "source", "title", "company", "location", "category", "url", "stipend", "posted_at", "scraped_at"}},
	}
	for _, c := range checks {
		if err := seeder.EnsureTableColumns(ctx, db, c.table, c.columns...); err != nil {
			return err
		}
	}
	return nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
