package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"career-connect/internal/database"
	"career-connect/internal/domain/opportunity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresOpportunityRepository struct {
	db database.DB
}

func NewPostgresOpportunityRepository(db database.DB) *PostgresOpportunityRepository {
	return &PostgresOpportunityRepository{db: db}
}

func (r *PostgresOpportunityRepository) List(ctx context.Context, f opportunity.ListFilter) ([]opportunity.Opportunity, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT id, source, title, company, location, category, url, stipend, posted_at, scraped_at
		 FROM opportunities`
	args := make([]any, 0, 4)
	conds := make([]string, 0, 2)
	if s := strings.TrimSpace(f.Source); s != "" {
		args = append(args, s)
		conds = append(conds, "source = $"+strconv.Itoa(len(args)))
	}
	if c := strings.TrimSpace(f.Category); c != "" {
		args = append(args, c)
		conds = append(conds, "category = $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, limit)
	query += " ORDER BY scraped_at DESC, title ASC LIMIT $" + strconv.Itoa(len(args))
	args = append(args, offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]opportunity.Opportunity, 0)
	for rows.Next() {
		var o opportunity.Opportunity
		if err := rows.Scan(
			&o.ID, &o.Source, &o.Title, &o.Company, &o.Location,
			&o.Category, &o.URL, &o.Stipend, &o.PostedAt, &o.ScrapedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresOpportunityRepository) GetByID(ctx context.Context, id uuid.UUID) (opportunity.Opportunity, error) {
	var o opportunity.Opportunity
	err := r.db.QueryRow(ctx,
		`SELECT id, source, title, company, location, category, url, stipend, posted_at, scraped_at
		 FROM opportunities WHERE id = $1`,
		id,
	).Scan(&o.ID, &o.Source, &o.Title, &o.Company, &o.Location, &o.Category, &o.URL, &o.Stipend, &o.PostedAt, &o.ScrapedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return opportunity.Opportunity{}, opportunity.ErrNotFound
		}
		return opportunity.Opportunity{}, err
	}
	return o, nil
}

// ReplaceSource swaps a source's rows in one transaction so a listing read
// never observes the gap between delete and insert.
func (r *PostgresOpportunityRepository) ReplaceSource(ctx context.Context, source string, items []opportunity.Opportunity) error {
	source = strings.TrimSpace(source)
	if source == "" {
		return errors.New("empty source")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM opportunities WHERE source = $1`, source); err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, o := range items {
		id := o.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		scrapedAt := o.ScrapedAt
		if scrapedAt.IsZero() {
			scrapedAt = now
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO opportunities (id, source, title, company, location, category, url, stipend, posted_at, scraped_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 ON CONFLICT (source, url) DO UPDATE SET
				title = EXCLUDED.title,
				company = EXCLUDED.company,
				location = EXCLUDED.location,
				category = EXCLUDED.category,
				stipend = EXCLUDED.stipend,
				posted_at = EXCLUDED.posted_at,
				scraped_at = EXCLUDED.scraped_at`,
			id, source, o.Title, o.Company, o.Location, o.Category, o.URL, o.Stipend, o.PostedAt, scrapedAt,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
