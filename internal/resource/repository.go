package resource

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const repoTimeout = 5 * time.Second

const resourceColumns = `id, title, description, category, language, provider, role,
file_name, file_path, s3_key, s3_bucket, file_size, mime_type, created_at, updated_at`

// Repository provides access to resource metadata storage.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository builds a new resource repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new resource row and returns it with the assigned
// identifier and timestamps.
func (r *Repository) Create(ctx context.Context, res Resource) (Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, repoTimeout)
	defer cancel()

	query := `
INSERT INTO resources (title, description, category, language, provider, role,
	file_name, file_path, s3_key, s3_bucket, file_size, mime_type)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + resourceColumns + `;`

	row := r.pool.QueryRow(ctx, query,
		res.Title,
		res.Description,
		res.Category,
		res.Language,
		res.Provider,
		res.Role,
		res.FileName,
		res.FilePath,
		res.S3Key,
		res.S3Bucket,
		res.FileSize,
		res.MimeType,
	)

	stored, err := scanResource(row)
	if err != nil {
		return Resource{}, fmt.Errorf("create resource: %w", err)
	}
	return stored, nil
}

// List returns every stored resource ordered by identifier.
func (r *Repository) List(ctx context.Context) ([]Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, repoTimeout)
	defer cancel()

	query := `SELECT ` + resourceColumns + ` FROM resources ORDER BY id;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	var resources []Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resources: %w", err)
	}
	return resources, nil
}

// Get fetches a single resource by identifier.
func (r *Repository) Get(ctx context.Context, id int64) (Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, repoTimeout)
	defer cancel()

	query := `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1;`

	res, err := scanResource(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Resource{}, ErrResourceNotFound
		}
		return Resource{}, fmt.Errorf("get resource: %w", err)
	}
	return res, nil
}

// Summary computes the total row count, the sum of known file sizes and the
// four group-by-count breakdowns. Null column values form their own group.
func (r *Repository) Summary(ctx context.Context) (Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, repoTimeout)
	defer cancel()

	var summary Summary
	totalsQuery := `SELECT COUNT(id), COALESCE(SUM(file_size), 0) FROM resources;`
	if err := r.pool.QueryRow(ctx, totalsQuery).Scan(&summary.TotalResources, &summary.TotalSize); err != nil {
		return Summary{}, fmt.Errorf("summary totals: %w", err)
	}

	var err error
	if summary.CategoriesBreakdown, err = r.breakdown(ctx, "category"); err != nil {
		return Summary{}, err
	}
	if summary.LanguagesBreakdown, err = r.breakdown(ctx, "language"); err != nil {
		return Summary{}, err
	}
	if summary.ProvidersBreakdown, err = r.breakdown(ctx, "provider"); err != nil {
		return Summary{}, err
	}
	if summary.RolesBreakdown, err = r.breakdown(ctx, "role"); err != nil {
		return Summary{}, err
	}

	return summary, nil
}

func (r *Repository) breakdown(ctx context.Context, column string) ([]BreakdownEntry, error) {
	// column is one of the fixed classification columns, never user input.
	query := fmt.Sprintf(`SELECT %s, COUNT(id) FROM resources GROUP BY %s ORDER BY %s;`, column, column, column)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("breakdown by %s: %w", column, err)
	}
	defer rows.Close()

	entries := []BreakdownEntry{}
	for rows.Next() {
		var entry BreakdownEntry
		if err := rows.Scan(&entry.Value, &entry.Count); err != nil {
			return nil, fmt.Errorf("scan %s breakdown: %w", column, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s breakdown: %w", column, err)
	}
	return entries, nil
}

func scanResource(row pgx.Row) (Resource, error) {
	var res Resource
	err := row.Scan(
		&res.ID,
		&res.Title,
		&res.Description,
		&res.Category,
		&res.Language,
		&res.Provider,
		&res.Role,
		&res.FileName,
		&res.FilePath,
		&res.S3Key,
		&res.S3Bucket,
		&res.FileSize,
		&res.MimeType,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	return res, err
}
