package imports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Report is one persisted import outcome.
type Report struct {
	ID            uuid.UUID
	Source        string
	FileName      string
	FileKey       string
	ImportedCount int
	ErrorCount    int
	Errors        []string
	CreatedBy     uuid.UUID
	CreatedAt     time.Time
}

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Record persists one import report.
func (r *Repository) Record(ctx context.Context, report Report) (Report, error) {
	errs := report.Errors
	if errs == nil {
		errs = []string{}
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO import_reports (source, file_name, file_key, imported_count, error_count, errors, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, report.Source, report.FileName, report.FileKey, report.ImportedCount, report.ErrorCount, errs, report.CreatedBy).
		Scan(&report.ID, &report.CreatedAt)
	return report, err
}

// List returns recent import reports, newest first. Non-admin actors only
// see their own imports.
func (r *Repository) List(ctx context.Context, actorID uuid.UUID, allActors bool, limit int) ([]Report, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, source, file_name, file_key, imported_count, error_count, errors, created_by, created_at
		FROM import_reports
		WHERE $1 OR created_by = $2
		ORDER BY created_at DESC
		LIMIT $3`

	rows, err := r.pool.Query(ctx, query, allActors, actorID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := make([]Report, 0)
	for rows.Next() {
		var report Report
		if err := rows.Scan(
			&report.ID, &report.Source, &report.FileName, &report.FileKey,
			&report.ImportedCount, &report.ErrorCount, &report.Errors,
			&report.CreatedBy, &report.CreatedAt,
		); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}
