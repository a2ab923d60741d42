// Package leads provides the lead tracking bounded context module.
// This file defines the module that encapsulates all leads setup and route registration.
package leads

import (
	apphttp "leadtrack_backend/internal/http"
	"leadtrack_backend/internal/imports"
	"leadtrack_backend/internal/leads/handler"
	"leadtrack_backend/internal/leads/importer"
	"leadtrack_backend/internal/leads/repository"
	"leadtrack_backend/internal/leads/service"
	"leadtrack_backend/internal/users"
	"leadtrack_backend/platform/config"
	"leadtrack_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ModuleConfig combines the config interfaces the leads module needs.
type ModuleConfig interface {
	config.ImportConfig
	config.StorageConfig
}

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the leads module with all its dependencies.
// The archiver may be nil when file archival is disabled.
func NewModule(pool *pgxpool.Pool, archiver imports.Archiver, cfg ModuleConfig, log *logger.Logger) *Module {
	repo := repository.New(pool)
	usersRepo := users.NewRepository(pool)
	importsRepo := imports.NewRepository(pool)

	imp := importer.New(repo, cfg.GetDefaultPhoneRegion(), log)
	svc := service.New(repo, usersRepo, imp, archiver, importsRepo, cfg.GetDefaultPhoneRegion(), log)
	h := handler.New(svc, cfg.GetMaxImportFileSize())

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the lead service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts leads routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	leadsGroup := ctx.Protected.Group("/leads")
	m.handler.RegisterRoutes(leadsGroup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
