// Package repository provides lead persistence over the document-style store
// primitives: create, find, update and aggregate. All SQL lives here.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"leadtrack_backend/internal/leads/access"
	"leadtrack_backend/internal/leads/domain"
	"leadtrack_backend/internal/users"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("lead not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const leadColumns = `id, status, source, created_by, assigned_to,
	name, surname, email_address, mobile_number, telephone_number, whatsapp_number,
	company_trading_name, company_registered_name, company_address, industry,
	employee_count, company_size, annual_turnover,
	provider_data, ad_id, campaign_id, form_id, extra_fields,
	created_at, updated_at`

func scanLead(row pgx.Row) (domain.Lead, error) {
	var lead domain.Lead
	err := row.Scan(
		&lead.ID, &lead.Status, &lead.Source, &lead.CreatedBy, &lead.AssignedTo,
		&lead.Name, &lead.Surname, &lead.EmailAddress, &lead.MobileNumber, &lead.TelephoneNumber, &lead.WhatsAppNumber,
		&lead.CompanyTradingName, &lead.CompanyRegisteredName, &lead.CompanyAddress, &lead.Industry,
		&lead.EmployeeCount, &lead.CompanySize, &lead.AnnualTurnover,
		&lead.ProviderData, &lead.AdID, &lead.CampaignID, &lead.FormID, &lead.Extra,
		&lead.CreatedAt, &lead.UpdatedAt,
	)
	return lead, err
}

const insertLeadSQL = `
	INSERT INTO leads (
		status, source, created_by, assigned_to,
		name, surname, email_address, mobile_number, telephone_number, whatsapp_number,
		company_trading_name, company_registered_name, company_address, industry,
		employee_count, company_size, annual_turnover,
		provider_data, ad_id, campaign_id, form_id, extra_fields
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	RETURNING ` + leadColumns

func insertArgs(draft domain.Lead) []interface{} {
	providerData := draft.ProviderData
	if providerData == nil {
		providerData = map[string]string{}
	}
	extra := draft.Extra
	if extra == nil {
		extra = map[string]string{}
	}

	return []interface{}{
		draft.Status, draft.Source, draft.CreatedBy, draft.AssignedTo,
		draft.Name, draft.Surname, draft.EmailAddress, draft.MobileNumber, draft.TelephoneNumber, draft.WhatsAppNumber,
		draft.CompanyTradingName, draft.CompanyRegisteredName, draft.CompanyAddress, draft.Industry,
		draft.EmployeeCount, draft.CompanySize, draft.AnnualTurnover,
		providerData, draft.AdID, draft.CampaignID, draft.FormID, extra,
	}
}

// Create persists one lead draft, assigning identity and timestamps.
func (r *Repository) Create(ctx context.Context, draft domain.Lead) (domain.Lead, error) {
	return scanLead(r.pool.QueryRow(ctx, insertLeadSQL, insertArgs(draft)...))
}

// BulkCreate persists all drafts in one transaction-backed batch. Either
// every draft is written or, on any failure, none are.
func (r *Repository) BulkCreate(ctx context.Context, drafts []domain.Lead) ([]domain.Lead, error) {
	if len(drafts) == 0 {
		return nil, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, draft := range drafts {
		batch.Queue(insertLeadSQL, insertArgs(draft)...)
	}

	results := tx.SendBatch(ctx, batch)
	created := make([]domain.Lead, 0, len(drafts))
	for range drafts {
		lead, err := scanLead(results.QueryRow())
		if err != nil {
			_ = results.Close()
			return nil, fmt.Errorf("bulk insert: %w", err)
		}
		created = append(created, lead)
	}
	if err := results.Close(); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// GetByID fetches one lead if the scope allows seeing it.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID, scope access.Scope) (domain.Lead, error) {
	clause, args := scopeClause(scope, 2)
	query := fmt.Sprintf("SELECT %s FROM leads l WHERE l.id = $1%s", leadColumns, clause)

	lead, err := scanLead(r.pool.QueryRow(ctx, query, append([]interface{}{id}, args...)...))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Lead{}, ErrNotFound
	}
	return lead, err
}

// UpdateStatus sets the funnel status. Any status may follow any other;
// monotonic progression is deliberately not enforced.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, scope access.Scope, status domain.Status) (domain.Lead, error) {
	clause, args := scopeClause(scope, 3)
	query := fmt.Sprintf(`
		UPDATE leads l SET status = $2, updated_at = now()
		WHERE l.id = $1%s
		RETURNING %s`, clause, leadColumns)

	lead, err := scanLead(r.pool.QueryRow(ctx, query, append([]interface{}{id, status}, args...)...))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Lead{}, ErrNotFound
	}
	return lead, err
}

// Assign sets or clears the assignee.
func (r *Repository) Assign(ctx context.Context, id uuid.UUID, scope access.Scope, assignee *uuid.UUID) (domain.Lead, error) {
	clause, args := scopeClause(scope, 3)
	query := fmt.Sprintf(`
		UPDATE leads l SET assigned_to = $2, updated_at = now()
		WHERE l.id = $1%s
		RETURNING %s`, clause, leadColumns)

	lead, err := scanLead(r.pool.QueryRow(ctx, query, append([]interface{}{id, assignee}, args...)...))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Lead{}, ErrNotFound
	}
	return lead, err
}

// ListParams are the caller filters merged on top of the role scope.
type ListParams struct {
	Scope  access.Scope
	Status *domain.Status
	Source *domain.Source
	Search string
	Limit  int
	Offset int
}

// List returns one page of visible leads, most recently created first,
// plus the total count under the same predicate.
func (r *Repository) List(ctx context.Context, params ListParams) ([]domain.Lead, int, error) {
	whereClause, args := buildListWhere(params)

	var total int
	countQuery := "SELECT COUNT(*) FROM leads l WHERE " + whereClause
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	argIdx := len(args) + 1
	args = append(args, params.Limit, params.Offset)
	query := fmt.Sprintf(`
		SELECT %s
		FROM leads l
		WHERE %s
		ORDER BY l.created_at DESC
		LIMIT $%d OFFSET $%d`, leadColumns, whereClause, argIdx, argIdx+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	leads := make([]domain.Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, 0, err
		}
		leads = append(leads, lead)
	}
	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	return leads, total, nil
}

func buildListWhere(params ListParams) (string, []interface{}) {
	whereClauses := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	// The role predicate always comes first, before any caller filter.
	if clause, scopeArgs := scopeClause(params.Scope, argIdx); clause != "" {
		whereClauses = append(whereClauses, strings.TrimPrefix(clause, " AND "))
		args = append(args, scopeArgs...)
		argIdx += len(scopeArgs)
	}

	if params.Status != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("l.status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.Source != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("l.source = $%d", argIdx))
		args = append(args, *params.Source)
		argIdx++
	}
	if params.Search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(
			`(l.company_trading_name ILIKE $%d OR l.company_registered_name ILIKE $%d
			OR l.name ILIKE $%d OR l.surname ILIKE $%d OR l.email_address ILIKE $%d
			OR l.mobile_number ILIKE $%d OR l.telephone_number ILIKE $%d)`,
			argIdx, argIdx, argIdx, argIdx, argIdx, argIdx, argIdx,
		))
		args = append(args, "%"+params.Search+"%")
	}

	return strings.Join(whereClauses, " AND "), args
}

// scopeClause renders the role predicate as an AND-clause starting at the
// given positional argument index.
func scopeClause(scope access.Scope, argIdx int) (string, []interface{}) {
	switch scope.Mode {
	case access.ModeSelf:
		return fmt.Sprintf(" AND l.assigned_to = $%d", argIdx), []interface{}{scope.ActorID}
	case access.ModeTeam:
		return fmt.Sprintf(" AND l.assigned_to IN (SELECT id FROM users WHERE role = ANY($%d))", argIdx),
			[]interface{}{roleStrings(scope.TeamRoles)}
	default:
		return "", nil
	}
}

func roleStrings(roles []users.Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}
