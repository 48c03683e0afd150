package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaTimeout = 10 * time.Second

const resourcesDDL = `
CREATE TABLE IF NOT EXISTS resources (
    id SERIAL PRIMARY KEY,
    title VARCHAR(200) NOT NULL,
    description TEXT,
    category VARCHAR(50),
    language VARCHAR(50),
    provider VARCHAR(50),
    role VARCHAR(50),
    file_name VARCHAR(255) NOT NULL,
    file_path TEXT NOT NULL,
    s3_key TEXT,
    s3_bucket VARCHAR(100),
    file_size INTEGER,
    mime_type VARCHAR(100),
    created_at TIMESTAMP NOT NULL DEFAULT now(),
    updated_at TIMESTAMP NOT NULL DEFAULT now()
);`

// EnsureSchema creates the resources table when it does not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, schemaTimeout)
	defer cancel()

	if _, err := pool.Exec(ctx, resourcesDDL); err != nil {
		return fmt.Errorf("create resources table: %w", err)
	}
	return nil
}
