package repository

import (
	"testing"

	"leadtrack_backend/internal/leads/access"
	"leadtrack_backend/internal/leads/domain"
	"leadtrack_backend/internal/users"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestScopeClause(t *testing.T) {
	actorID := uuid.New()

	t.Run("all mode adds no predicate", func(t *testing.T) {
		clause, args := scopeClause(access.Scope{Mode: access.ModeAll, ActorID: actorID}, 1)
		require.Empty(t, clause)
		require.Empty(t, args)
	})

	t.Run("self mode filters on assignee", func(t *testing.T) {
		clause, args := scopeClause(access.Scope{Mode: access.ModeSelf, ActorID: actorID}, 3)
		require.Equal(t, " AND l.assigned_to = $3", clause)
		require.Equal(t, []interface{}{actorID}, args)
	})

	t.Run("team mode filters on team roles", func(t *testing.T) {
		scope := access.Scope{
			Mode:      access.ModeTeam,
			ActorID:   actorID,
			TeamRoles: []users.Role{users.RoleSalesAgent, users.RoleSalesManager},
		}
		clause, args := scopeClause(scope, 1)
		require.Contains(t, clause, "assigned_to IN")
		require.Contains(t, clause, "$1")
		require.Equal(t, []interface{}{[]string{"sales_agent", "sales_manager"}}, args)
	})
}

func TestBuildListWhere(t *testing.T) {
	actorID := uuid.New()
	status := domain.StatusQualified
	source := domain.SourceCSVImport

	t.Run("scope predicate comes before caller filters", func(t *testing.T) {
		params := ListParams{
			Scope:  access.Scope{Mode: access.ModeSelf, ActorID: actorID},
			Status: &status,
		}
		where, args := buildListWhere(params)
		require.Equal(t, "TRUE AND l.assigned_to = $1 AND l.status = $2", where)
		require.Equal(t, []interface{}{actorID, status}, args)
	})

	t.Run("all filters combine with sequential placeholders", func(t *testing.T) {
		params := ListParams{
			Scope:  access.Scope{Mode: access.ModeSelf, ActorID: actorID},
			Status: &status,
			Source: &source,
			Search: "acme",
		}
		where, args := buildListWhere(params)
		require.Contains(t, where, "l.status = $2")
		require.Contains(t, where, "l.source = $3")
		require.Contains(t, where, "ILIKE $4")
		require.Len(t, args, 4)
		require.Equal(t, "%acme%", args[3])
	})

	t.Run("unrestricted scope with no filters", func(t *testing.T) {
		params := ListParams{Scope: access.Scope{Mode: access.ModeAll, ActorID: actorID}}
		where, args := buildListWhere(params)
		require.Equal(t, "TRUE", where)
		require.Empty(t, args)
	})
}
