// Package service implements lead use cases on top of the repository,
// the import pipeline and the role scope rules.
package service

import (
	"context"
	"errors"

	"leadtrack_backend/internal/imports"
	"leadtrack_backend/internal/leads/access"
	"leadtrack_backend/internal/leads/domain"
	"leadtrack_backend/internal/leads/importer"
	"leadtrack_backend/internal/leads/repository"
	"leadtrack_backend/internal/leads/transport"
	"leadtrack_backend/internal/users"
	"leadtrack_backend/platform/apperr"
	"leadtrack_backend/platform/logger"
	"leadtrack_backend/platform/phone"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Service struct {
	repo        *repository.Repository
	users       *users.Repository
	importer    *importer.Importer
	archiver    imports.Archiver
	importsRepo *imports.Repository
	phoneRegion string
	log         *logger.Logger
}

func New(
	repo *repository.Repository,
	usersRepo *users.Repository,
	imp *importer.Importer,
	archiver imports.Archiver,
	importsRepo *imports.Repository,
	phoneRegion string,
	log *logger.Logger,
) *Service {
	return &Service{
		repo:        repo,
		users:       usersRepo,
		importer:    imp,
		archiver:    archiver,
		importsRepo: importsRepo,
		phoneRegion: phoneRegion,
		log:         log,
	}
}

// Create stores a single manually captured lead owned by the actor.
func (s *Service) Create(ctx context.Context, actorID uuid.UUID, req transport.CreateLeadRequest) (transport.LeadResponse, error) {
	draft := domain.Lead{
		Status:    domain.StatusNew,
		Source:    domain.SourceManual,
		CreatedBy: actorID,

		Name:         req.Name,
		Surname:      req.Surname,
		EmailAddress: req.EmailAddress,
		MobileNumber: phone.NormalizeE164(req.MobileNumber, s.phoneRegion),

		TelephoneNumber: req.TelephoneNumber,
		WhatsAppNumber:  req.WhatsAppNumber,

		CompanyTradingName:    req.CompanyTradingName,
		CompanyRegisteredName: req.CompanyRegisteredName,
		CompanyAddress:        req.CompanyAddress,
		Industry:              req.Industry,
		EmployeeCount:         req.EmployeeCount,
		CompanySize:           req.CompanySize,
		AnnualTurnover:        req.AnnualTurnover,
	}

	if req.AssignedTo != nil {
		if err := s.ensureUserExists(ctx, *req.AssignedTo); err != nil {
			return transport.LeadResponse{}, err
		}
		draft.AssignedTo = req.AssignedTo
	} else {
		// Manually captured leads default to the creator.
		actor := actorID
		draft.AssignedTo = &actor
	}

	lead, err := s.repo.Create(ctx, draft)
	if err != nil {
		s.log.DatabaseError("create lead", err)
		return transport.LeadResponse{}, apperr.Wrap(apperr.KindInternal, "failed to create lead", err)
	}

	return transport.ToLeadResponse(lead), nil
}

// GetByID returns one lead the scope allows seeing.
func (s *Service) GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (transport.LeadResponse, error) {
	lead, err := s.repo.GetByID(ctx, id, scope)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.LeadResponse{}, apperr.NotFound("lead not found")
		}
		s.log.DatabaseError("get lead", err)
		return transport.LeadResponse{}, apperr.Wrap(apperr.KindInternal, "failed to fetch lead", err)
	}

	return transport.ToLeadResponse(lead), nil
}

// List returns one page of leads visible to the scope, with caller filters
// applied on top of the role predicate.
func (s *Service) List(ctx context.Context, scope access.Scope, req transport.ListLeadsRequest) (transport.LeadListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	params := repository.ListParams{
		Scope:  scope,
		Search: req.Search,
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}
	if req.Status != "" {
		status := domain.Status(req.Status)
		params.Status = &status
	}
	if req.Source != "" {
		source := domain.Source(req.Source)
		params.Source = &source
	}

	leads, total, err := s.repo.List(ctx, params)
	if err != nil {
		s.log.DatabaseError("list leads", err)
		return transport.LeadListResponse{}, apperr.Wrap(apperr.KindInternal, "failed to list leads", err)
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	return transport.LeadListResponse{
		Success: true,
		Data:    transport.ToLeadResponses(leads),
		Pagination: transport.PaginationResponse{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalLeads:  total,
			HasNext:     page < totalPages,
			HasPrev:     page > 1,
		},
	}, nil
}

// UpdateStatus moves a lead to any funnel status. Backwards moves are
// allowed.
func (s *Service) UpdateStatus(ctx context.Context, scope access.Scope, id uuid.UUID, req transport.UpdateStatusRequest) (transport.LeadResponse, error) {
	if !domain.ValidStatus(req.Status) {
		return transport.LeadResponse{}, apperr.Validation("invalid status")
	}
	status := domain.Status(req.Status)

	lead, err := s.repo.UpdateStatus(ctx, id, scope, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.LeadResponse{}, apperr.NotFound("lead not found")
		}
		s.log.DatabaseError("update lead status", err)
		return transport.LeadResponse{}, apperr.Wrap(apperr.KindInternal, "failed to update lead", err)
	}

	return transport.ToLeadResponse(lead), nil
}

// Assign sets or clears the assignee of a lead within the scope.
func (s *Service) Assign(ctx context.Context, scope access.Scope, id uuid.UUID, req transport.AssignLeadRequest) (transport.LeadResponse, error) {
	if req.AssignedTo != nil {
		if err := s.ensureUserExists(ctx, *req.AssignedTo); err != nil {
			return transport.LeadResponse{}, err
		}
	}

	lead, err := s.repo.Assign(ctx, id, scope, req.AssignedTo)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.LeadResponse{}, apperr.NotFound("lead not found")
		}
		s.log.DatabaseError("assign lead", err)
		return transport.LeadResponse{}, apperr.Wrap(apperr.KindInternal, "failed to assign lead", err)
	}

	return transport.ToLeadResponse(lead), nil
}

func (s *Service) ensureUserExists(ctx context.Context, id uuid.UUID) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return apperr.BadRequest("assignee does not exist")
		}
		s.log.DatabaseError("get user", err)
		return apperr.Wrap(apperr.KindInternal, "failed to verify assignee", err)
	}
	return nil
}
