package access

import (
	"testing"

	"leadtrack_backend/internal/users"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestForActor(t *testing.T) {
	actor := uuid.New()

	cases := []struct {
		role      users.Role
		mode      Mode
		teamRoles []users.Role
	}{
		{users.RoleAdmin, ModeAll, nil},
		{users.RoleSalesAgent, ModeSelf, nil},
		{users.RoleMarketingAgent, ModeSelf, nil},
		{users.RoleSalesManager, ModeTeam, []users.Role{users.RoleSalesAgent, users.RoleSalesManager}},
		{users.RoleMarketingManager, ModeTeam, []users.Role{users.RoleMarketingAgent, users.RoleMarketingManager}},
		{users.RoleOther, ModeSelf, nil},
		{users.Role("intern"), ModeSelf, nil},
		{users.Role(""), ModeSelf, nil},
	}

	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			scope := ForActor(actor, tc.role)
			assert.Equal(t, tc.mode, scope.Mode)
			assert.Equal(t, actor, scope.ActorID)
			assert.Equal(t, tc.teamRoles, scope.TeamRoles)
		})
	}
}

func TestAllowsTeamRollup(t *testing.T) {
	actor := uuid.New()

	assert.True(t, ForActor(actor, users.RoleAdmin).AllowsTeamRollup())
	assert.True(t, ForActor(actor, users.RoleSalesManager).AllowsTeamRollup())
	assert.True(t, ForActor(actor, users.RoleMarketingManager).AllowsTeamRollup())
	assert.False(t, ForActor(actor, users.RoleSalesAgent).AllowsTeamRollup())
	assert.False(t, ForActor(actor, users.RoleOther).AllowsTeamRollup())
}
