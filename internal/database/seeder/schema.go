package seeder

import (
	"context"
	"fmt"

	"career-connect/internal/database"
)

// SchemaSeeder creates the base tables. Idempotent; versioned changes on
// top of this baseline go through the migration runner.
type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS student_profiles (
		user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		branch TEXT NOT NULL,
		skills TEXT NOT NULL DEFAULT '',
		cgpa DOUBLE PRECISION NOT NULL DEFAULT 0,
		projects TEXT NOT NULL DEFAULT '',
		interests TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS learning_activities (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		activity TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_learning_activities_user ON learning_activities (user_id)`,
	`CREATE TABLE IF NOT EXISTS opportunities (
		id UUID PRIMARY KEY,
		source TEXT NOT NULL,
		title TEXT NOT NULL,
		company TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		url TEXT NOT NULL,
		stipend TEXT NOT NULL DEFAULT '',
		posted_at TIMESTAMPTZ,
		scraped_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (source, url)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_opportunities_source ON opportunities (source)`,
	`CREATE INDEX IF NOT EXISTS idx_opportunities_category ON opportunities (category)`,
}

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// EnsureTableColumns verifies the live schema carries the columns the
// repositories scan; a mismatch fails startup instead of the first query.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}
	for _, col := range columns {
		if col == "" {
			return fmt.Errorf("empty column")
		}
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}
