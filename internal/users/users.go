// Package users provides the user model and role catalog consumed by the
// visibility scoping in the leads context.
package users

import (
	"time"

	"github.com/google/uuid"
)

// Role determines a user's visibility scope over leads.
type Role string

const (
	RoleAdmin            Role = "admin"
	RoleSalesManager     Role = "sales_manager"
	RoleSalesAgent       Role = "sales_agent"
	RoleMarketingManager Role = "marketing_manager"
	RoleMarketingAgent   Role = "marketing_agent"
	RoleOther            Role = "other"
)

// ParseRole maps a raw role string to a known Role. Unknown or empty values
// become RoleOther, which downstream scoping treats as least privilege.
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RoleAdmin, RoleSalesManager, RoleSalesAgent, RoleMarketingManager, RoleMarketingAgent:
		return Role(raw)
	default:
		return RoleOther
	}
}

// User is an account that captures, triages or reports on leads.
// The credential hash is opaque here; authentication lives upstream.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Department   string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
