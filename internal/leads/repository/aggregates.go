package repository

import (
	"context"
	"fmt"

	"leadtrack_backend/internal/leads/access"
	"leadtrack_backend/internal/leads/domain"

	"github.com/google/uuid"
)

// Stats holds the grouped aggregates for one role scope. The grouped counts
// partition the scoped lead set exactly: both maps sum to Total.
type Stats struct {
	Total    int
	ByStatus map[domain.Status]int
	BySource map[domain.Source]int
	My       int
	Won      int
	Lost     int
}

// GetStats computes counts and funnel aggregates within the scope.
// My uses the same role rule as the scope itself, so for an unrestricted
// admin it equals Total.
func (r *Repository) GetStats(ctx context.Context, scope access.Scope) (Stats, error) {
	stats := Stats{
		ByStatus: make(map[domain.Status]int),
		BySource: make(map[domain.Source]int),
	}

	clause, args := scopeClause(scope, 1)

	query := fmt.Sprintf(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE l.status = 'closed_won'),
			COUNT(*) FILTER (WHERE l.status = 'closed_lost')
		FROM leads l
		WHERE TRUE%s`, clause)
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&stats.Total, &stats.Won, &stats.Lost); err != nil {
		return Stats{}, fmt.Errorf("stats totals: %w", err)
	}
	stats.My = stats.Total

	statusQuery := fmt.Sprintf(`
		SELECT l.status, COUNT(*)
		FROM leads l
		WHERE TRUE%s
		GROUP BY l.status`, clause)
	rows, err := r.pool.Query(ctx, statusQuery, args...)
	if err != nil {
		return Stats{}, fmt.Errorf("stats by status: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status domain.Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return Stats{}, err
		}
		stats.ByStatus[status] = count
	}
	if rows.Err() != nil {
		return Stats{}, rows.Err()
	}

	sourceQuery := fmt.Sprintf(`
		SELECT l.source, COUNT(*)
		FROM leads l
		WHERE TRUE%s
		GROUP BY l.source`, clause)
	sourceRows, err := r.pool.Query(ctx, sourceQuery, args...)
	if err != nil {
		return Stats{}, fmt.Errorf("stats by source: %w", err)
	}
	defer sourceRows.Close()
	for sourceRows.Next() {
		var source domain.Source
		var count int
		if err := sourceRows.Scan(&source, &count); err != nil {
			return Stats{}, err
		}
		stats.BySource[source] = count
	}
	if sourceRows.Err() != nil {
		return Stats{}, sourceRows.Err()
	}

	return stats, nil
}

// AssigneeStats is one per-assignee rollup entry.
type AssigneeStats struct {
	AssigneeID uuid.UUID
	Name       string
	Total      int
	Won        int
	Lost       int
}

// GetAssigneeRollup groups the scoped leads by assignee with each assignee's
// own won/lost counts. Unassigned leads are excluded from the rollup.
func (r *Repository) GetAssigneeRollup(ctx context.Context, scope access.Scope) ([]AssigneeStats, error) {
	clause, args := scopeClause(scope, 1)

	query := fmt.Sprintf(`
		SELECT
			l.assigned_to,
			u.name,
			COUNT(*),
			COUNT(*) FILTER (WHERE l.status = 'closed_won'),
			COUNT(*) FILTER (WHERE l.status = 'closed_lost')
		FROM leads l
		JOIN users u ON u.id = l.assigned_to
		WHERE l.assigned_to IS NOT NULL%s
		GROUP BY l.assigned_to, u.name
		ORDER BY u.name ASC`, clause)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("assignee rollup: %w", err)
	}
	defer rows.Close()

	items := make([]AssigneeStats, 0)
	for rows.Next() {
		var item AssigneeStats
		if err := rows.Scan(&item.AssigneeID, &item.Name, &item.Total, &item.Won, &item.Lost); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
