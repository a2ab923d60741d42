package users

import (
	"time"

	apphttp "leadtrack_backend/internal/http"
	"leadtrack_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Module exposes the user directory for assignment pickers.
type Module struct {
	repo *Repository
}

func NewModule(pool *pgxpool.Pool) *Module {
	return &Module{repo: NewRepository(pool)}
}

func (m *Module) Name() string {
	return "users"
}

// Repository returns the user repository for cross-module lookups.
func (m *Module) Repository() *Repository {
	return m.repo
}

// UserResponse is the directory entry served to pickers. Credential fields
// never leave this package.
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department string    `json:"department,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RegisterRoutes mounts user routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/users", m.list)
}

func (m *Module) list(c *gin.Context) {
	if id := httpkit.MustGetIdentity(c); id == nil {
		return
	}

	items, err := m.repo.ListActive(c.Request.Context())
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	out := make([]UserResponse, 0, len(items))
	for _, u := range items {
		out = append(out, UserResponse{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			Role:       string(u.Role),
			Department: u.Department,
			CreatedAt:  u.CreatedAt,
		})
	}

	httpkit.OK(c, gin.H{"success": true, "data": out})
}

var _ apphttp.Module = (*Module)(nil)
