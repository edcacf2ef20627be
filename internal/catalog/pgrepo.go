package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgSchema = `
CREATE TABLE IF NOT EXISTS software (
	id BIGINT PRIMARY KEY,
	name TEXT NOT NULL,
	slug TEXT,
	category TEXT,
	description TEXT,
	image TEXT,
	gallery TEXT[] NOT NULL DEFAULT '{}',
	is_active BOOLEAN,
	is_free BOOLEAN,
	price_one_time DOUBLE PRECISION,
	price_yearly DOUBLE PRECISION,
	payment_link_onetime TEXT,
	payment_link_yearly TEXT,
	download_url TEXT,
	sort_order INTEGER
);
CREATE TABLE IF NOT EXISTS clients (
	id BIGINT PRIMARY KEY,
	name TEXT NOT NULL,
	industry TEXT,
	city TEXT,
	website TEXT,
	image TEXT,
	sort_order INTEGER NOT NULL DEFAULT 0,
	is_active BOOLEAN NOT NULL DEFAULT TRUE
);
CREATE TABLE IF NOT EXISTS known_issues (
	id BIGINT PRIMARY KEY,
	title TEXT NOT NULL,
	status TEXT,
	content TEXT,
	sort_order INTEGER NOT NULL DEFAULT 0,
	is_active BOOLEAN NOT NULL DEFAULT TRUE
);
CREATE TABLE IF NOT EXISTS release_notes (
	id BIGINT PRIMARY KEY,
	title TEXT NOT NULL,
	version TEXT,
	software_id BIGINT,
	release_date TIMESTAMPTZ NOT NULL DEFAULT now(),
	content TEXT,
	is_published BOOLEAN NOT NULL DEFAULT TRUE
);`

// PgRepo is the PostgreSQL-backed Store.
type PgRepo struct {
	pool *pgxpool.Pool
}

func NewPgRepo(pool *pgxpool.Pool) *PgRepo {
	return &PgRepo{pool: pool}
}

// EnsureSchema creates the catalog tables when missing
func (r *PgRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, pgSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (r *PgRepo) ListSoftware(ctx context.Context) ([]CatalogItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, COALESCE(slug, ''), COALESCE(category, ''), COALESCE(description, ''),
		       COALESCE(image, ''), gallery, is_active, is_free, price_one_time, price_yearly,
		       COALESCE(payment_link_onetime, ''), COALESCE(payment_link_yearly, ''),
		       COALESCE(download_url, ''), sort_order
		FROM software
		ORDER BY COALESCE(sort_order, 0), id`)
	if err != nil {
		return nil, fmt.Errorf("list software: %w", err)
	}
	defer rows.Close()

	items := []CatalogItem{}
	for rows.Next() {
		var it CatalogItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Slug, &it.Category, &it.Description,
			&it.Image, &it.Gallery, &it.IsActive, &it.IsFree, &it.PriceOneTime, &it.PriceYearly,
			&it.PaymentLinkOneTime, &it.PaymentLinkYearly, &it.DownloadURL, &it.SortOrder); err != nil {
			return nil, fmt.Errorf("scan software: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PgRepo) ListClients(ctx context.Context) ([]ClientItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, COALESCE(industry, ''), COALESCE(city, ''), COALESCE(website, ''),
		       COALESCE(image, ''), sort_order
		FROM clients
		WHERE is_active
		ORDER BY sort_order ASC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	items := []ClientItem{}
	for rows.Next() {
		var it ClientItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Industry, &it.City, &it.Website, &it.Image, &it.SortOrder); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PgRepo) ListIssues(ctx context.Context) ([]IssueItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, COALESCE(NULLIF(status, ''), 'Open'), COALESCE(content, ''), sort_order
		FROM known_issues
		WHERE is_active
		ORDER BY sort_order ASC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer rows.Close()

	items := []IssueItem{}
	for rows.Next() {
		var it IssueItem
		if err := rows.Scan(&it.ID, &it.Title, &it.Status, &it.Content, &it.SortOrder); err != nil {
			return nil, fmt.Errorf("scan issue: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PgRepo) ListReleases(ctx context.Context) ([]ReleaseItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.id, r.title, COALESCE(r.version, ''), r.software_id, COALESCE(s.name, ''),
		       r.release_date, COALESCE(r.content, '')
		FROM release_notes r
		LEFT JOIN software s ON s.id = r.software_id
		WHERE r.is_published
		ORDER BY r.release_date DESC, r.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list releases: %w", err)
	}
	defer rows.Close()

	items := []ReleaseItem{}
	for rows.Next() {
		var (
			it  ReleaseItem
			day time.Time
		)
		if err := rows.Scan(&it.ID, &it.Title, &it.Version, &it.SoftwareID, &it.SoftwareName, &day, &it.Content); err != nil {
			return nil, fmt.Errorf("scan release: %w", err)
		}
		it.ReleaseDate = day.UTC().Format(time.RFC3339)
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PgRepo) CountSoftware(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM software`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count software: %w", err)
	}
	return n, nil
}

// Seed inserts the seed rows in a single transaction
func (r *PgRepo) Seed(ctx context.Context, data SeedData) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, it := range data.Software {
			gallery := it.Gallery
			if gallery == nil {
				gallery = []string{}
			}
			batch.Queue(`INSERT INTO software (id, name, slug, category, description, image, gallery,
				is_active, is_free, price_one_time, price_yearly, payment_link_onetime,
				payment_link_yearly, download_url, sort_order)
				VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7,
				$8, $9, $10, $11, NULLIF($12, ''), NULLIF($13, ''), NULLIF($14, ''), $15)`,
				it.ID, it.Name, it.Slug, it.Category, it.Description, it.Image, gallery,
				it.IsActive, it.IsFree, it.PriceOneTime, it.PriceYearly, it.PaymentLinkOneTime,
				it.PaymentLinkYearly, it.DownloadURL, it.SortOrder)
		}
		for _, it := range data.Clients {
			batch.Queue(`INSERT INTO clients (id, name, industry, city, website, image, sort_order, is_active)
				VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8)`,
				it.ID, it.Name, it.Industry, it.City, it.Website, it.Image, it.SortOrder, flag(it.IsActive, true))
		}
		for _, it := range data.Issues {
			batch.Queue(`INSERT INTO known_issues (id, title, status, content, sort_order, is_active)
				VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6)`,
				it.ID, it.Title, it.Status, it.Content, it.SortOrder, flag(it.IsActive, true))
		}
		for _, it := range data.Releases {
			day := time.Now().UTC()
			if it.ReleaseDate != "" {
				parsed, err := ParseReleaseDate(it.ReleaseDate)
				if err != nil {
					return fmt.Errorf("release %d: %w", it.ID, err)
				}
				day = parsed
			}
			batch.Queue(`INSERT INTO release_notes (id, title, version, software_id, release_date, content, is_published)
				VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), $7)`,
				it.ID, it.Title, it.Version, it.SoftwareID, day, it.Content, flag(it.IsPublished, true))
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("seed batch: %w", err)
		}
		return nil
	})
}
