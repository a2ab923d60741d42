// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity represents the acting user as established by the upstream auth
// layer. Handlers depend on this interface rather than on Gin context keys.
type Identity interface {
	// UserID returns the acting user's ID.
	UserID() uuid.UUID
	// Role returns the acting user's role, or "" when none was resolved.
	// Callers treat an empty role as least privilege, not as a failure.
	Role() string
	// IsAuthenticated reports whether an actor was resolved at all.
	IsAuthenticated() bool
}

type identity struct {
	userID        uuid.UUID
	role          string
	authenticated bool
}

func (i *identity) UserID() uuid.UUID     { return i.userID }
func (i *identity) Role() string          { return i.role }
func (i *identity) IsAuthenticated() bool { return i.authenticated }

// GetIdentity extracts the Identity from a Gin context.
// Returns an unauthenticated identity when no actor info is present.
func GetIdentity(c *gin.Context) Identity {
	userID, userOK := c.Get(ContextActorIDKey)
	if !userOK {
		return &identity{}
	}

	uid, ok := userID.(uuid.UUID)
	if !ok {
		return &identity{}
	}

	role := ""
	if roleValue, ok := c.Get(ContextActorRoleKey); ok {
		role, _ = roleValue.(string)
	}

	return &identity{userID: uid, role: role, authenticated: true}
}

// MustGetIdentity extracts the Identity from a Gin context, aborting the
// request with 401 Unauthorized when no actor was resolved.
func MustGetIdentity(c *gin.Context) Identity {
	id := GetIdentity(c)
	if !id.IsAuthenticated() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil
	}
	return id
}
