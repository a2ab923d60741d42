// Package access builds the role-scoped visibility predicate applied to
// every lead query before any caller-supplied filter. All listing and
// aggregation consumers call this one authority instead of re-deriving the
// role rules.
package access

import (
	"leadtrack_backend/internal/users"

	"github.com/google/uuid"
)

// Mode selects how a scope restricts visible leads.
type Mode int

const (
	// ModeSelf restricts to leads assigned to the actor.
	ModeSelf Mode = iota
	// ModeTeam restricts to leads assigned to users holding one of the
	// scope's team roles.
	ModeTeam
	// ModeAll applies no restriction.
	ModeAll
)

// Scope is the visibility predicate for one actor. It is a data-only filter
// description; the repository translates it into store predicates.
type Scope struct {
	Mode      Mode
	ActorID   uuid.UUID
	TeamRoles []users.Role
}

// ForActor derives the visibility scope from the actor's role.
// Unknown or missing roles fall back to self-only, the least privilege
// default, rather than failing the request.
func ForActor(actorID uuid.UUID, role users.Role) Scope {
	switch role {
	case users.RoleAdmin:
		return Scope{Mode: ModeAll, ActorID: actorID}
	case users.RoleSalesManager:
		return Scope{
			Mode:      ModeTeam,
			ActorID:   actorID,
			TeamRoles: []users.Role{users.RoleSalesAgent, users.RoleSalesManager},
		}
	case users.RoleMarketingManager:
		return Scope{
			Mode:      ModeTeam,
			ActorID:   actorID,
			TeamRoles: []users.Role{users.RoleMarketingAgent, users.RoleMarketingManager},
		}
	case users.RoleSalesAgent, users.RoleMarketingAgent:
		return Scope{Mode: ModeSelf, ActorID: actorID}
	default:
		return Scope{Mode: ModeSelf, ActorID: actorID}
	}
}

// AllowsTeamRollup reports whether the actor may request the per-assignee
// rollup, reserved for manager and admin roles.
func (s Scope) AllowsTeamRollup() bool {
	return s.Mode == ModeAll || s.Mode == ModeTeam
}
