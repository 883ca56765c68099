package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticPolicy(t *testing.T) {
	p := StaticPolicy{}

	tests := []struct {
		role   UserRole
		action Action
		want   bool
	}{
		{RoleUser, ActionManageAny, false},
		{RoleSupport, ActionManageAny, true},
		{RoleSupport, ActionAutoApprove, true},
		{RoleSupport, ActionModerate, false},
		{RoleModerator, ActionModerate, true},
		{RoleModerator, ActionSetStatus, false},
		{RoleModerator, ActionSetPremium, false},
		{RoleAdmin, ActionSetStatus, true},
		{RoleAdmin, ActionSetPremium, true},
		{RoleUser, ActionCreateRestricted, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.action), func(t *testing.T) {
			assert.Equal(t, tt.want, p.Can(tt.role, tt.action))
		})
	}
}

func TestCanManage(t *testing.T) {
	p := StaticPolicy{}

	assert.True(t, CanManage(p, NewActor(7, RoleUser), 7), "owner")
	assert.False(t, CanManage(p, NewActor(8, RoleUser), 7), "stranger")
	assert.True(t, CanManage(p, NewActor(8, RoleSupport), 7), "support")
	assert.False(t, CanManage(p, Anonymous(), 0), "anonymous never owns ownerless rows")
}

func TestParseUserRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseUserRole("admin"))
	assert.Equal(t, RoleModerator, ParseUserRole(" MODERATOR "))
	assert.Equal(t, RoleUser, ParseUserRole("root"))
}

func TestDefaultGrants_MatchStaticPolicy(t *testing.T) {
	p := StaticPolicy{}
	for _, g := range DefaultGrants() {
		assert.True(t, p.Can(g.Role, g.Action))
	}
}
