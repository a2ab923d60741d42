package provider

import (
	"errors"
	"net/http"

	apphttp "leadtrack_backend/internal/http"
	"leadtrack_backend/platform/httpkit"
	"leadtrack_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Module exposes provider credential management endpoints.
type Module struct {
	store *CredentialStore
}

func NewModule(store *CredentialStore) *Module {
	return &Module{store: store}
}

func (m *Module) Name() string {
	return "provider"
}

// Store returns the credential store for programmatic use.
func (m *Module) Store() *CredentialStore {
	return m.store
}

// RegisterRoutes mounts provider credential routes on the router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/provider/credentials")
	group.PUT("/:account", m.save)
	group.GET("/:account", m.load)
	group.DELETE("/:account", m.delete)
}

type saveCredentialsRequest struct {
	AccessToken string   `json:"accessToken" validate:"required"`
	BusinessID  string   `json:"businessId" validate:"required"`
	FormIDs     []string `json:"formIds"`
}

func (m *Module) save(c *gin.Context) {
	if id := httpkit.MustGetIdentity(c); id == nil {
		return
	}

	var req saveCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	if err := validator.Validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	err := m.store.Save(c.Request.Context(), c.Param("account"), Credentials{
		AccessToken: req.AccessToken,
		BusinessID:  req.BusinessID,
		FormIDs:     req.FormIDs,
	})
	if err != nil {
		httpkit.Error(c, http.StatusInternalServerError, "failed to save credentials", nil)
		return
	}

	httpkit.OK(c, gin.H{"success": true})
}

func (m *Module) load(c *gin.Context) {
	if id := httpkit.MustGetIdentity(c); id == nil {
		return
	}

	creds, err := m.store.Load(c.Request.Context(), c.Param("account"))
	if errors.Is(err, ErrCredentialsNotFound) {
		httpkit.Error(c, http.StatusNotFound, "provider credentials not found", nil)
		return
	}
	if err != nil {
		httpkit.Error(c, http.StatusInternalServerError, "failed to load credentials", nil)
		return
	}

	// The token itself stays server-side.
	httpkit.OK(c, gin.H{
		"success":    true,
		"businessId": creds.BusinessID,
		"formIds":    creds.FormIDs,
		"updatedAt":  creds.UpdatedAt,
	})
}

func (m *Module) delete(c *gin.Context) {
	if id := httpkit.MustGetIdentity(c); id == nil {
		return
	}

	if err := m.store.Delete(c.Request.Context(), c.Param("account")); err != nil {
		httpkit.Error(c, http.StatusInternalServerError, "failed to delete credentials", nil)
		return
	}

	httpkit.OK(c, gin.H{"success": true})
}

var _ apphttp.Module = (*Module)(nil)
