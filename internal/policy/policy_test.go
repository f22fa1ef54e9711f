package policy

import (
	"testing"

	"ngo-admin-system/internal/model"

	"github.com/stretchr/testify/require"
)

func userWith(id uint, role model.Role) *model.User {
	u := &model.User{Role: role}
	u.ID = id
	return u
}

func TestCanManageEntityClass(t *testing.T) {
	require.True(t, CanManageEntityClass(model.RoleAdmin))
	require.True(t, CanManageEntityClass(model.RoleManager))
	require.False(t, CanManageEntityClass(model.RoleVolunteer))
	require.False(t, CanManageEntityClass(model.RoleIntern))
	require.False(t, CanManageEntityClass(model.RoleDonor))
}

func TestCanCreateUser(t *testing.T) {
	require.True(t, CanCreateUser(model.RoleAdmin))
	require.True(t, CanCreateUser(model.RoleManager))
	require.True(t, CanCreateUser(model.RoleVolunteer))
	require.True(t, CanCreateUser(model.RoleIntern))
	require.False(t, CanCreateUser(model.RoleDonor))
}

func TestAvailableRoles(t *testing.T) {
	require.Equal(t, model.AllRoles, AvailableRoles(model.RoleAdmin))
	require.Equal(t,
		[]model.Role{model.RoleVolunteer, model.RoleIntern, model.RoleDonor},
		AvailableRoles(model.RoleManager))
	require.Empty(t, AvailableRoles(model.RoleVolunteer))
	require.Empty(t, AvailableRoles(model.RoleIntern))
	require.Empty(t, AvailableRoles(model.RoleDonor))
}

func TestRoleAssignable(t *testing.T) {
	require.True(t, RoleAssignable(model.RoleAdmin, model.RoleAdmin))
	require.True(t, RoleAssignable(model.RoleManager, model.RoleDonor))
	require.False(t, RoleAssignable(model.RoleManager, model.RoleAdmin))
	require.False(t, RoleAssignable(model.RoleManager, model.RoleManager))
	require.False(t, RoleAssignable(model.RoleVolunteer, model.RoleDonor))
}

// 任何角色都不能编辑或删除自己
func TestCanEditOrDeleteUser_SelfAlwaysDenied(t *testing.T) {
	for _, role := range model.AllRoles {
		u := userWith(7, role)
		require.False(t, CanEditOrDeleteUser(u, u), "role %s", role)
		require.False(t, CanChangeRole(u, u), "role %s", role)
		require.False(t, CanChangeStatus(u, u), "role %s", role)
	}
}

func TestCanEditOrDeleteUser_AdminAll(t *testing.T) {
	admin := userWith(1, model.RoleAdmin)
	for _, role := range model.AllRoles {
		require.True(t, CanEditOrDeleteUser(admin, userWith(2, role)), "target %s", role)
	}
}

// Manager 对 Manager / Admin 一律拒绝，低角色放行
func TestCanEditOrDeleteUser_ManagerScope(t *testing.T) {
	manager := userWith(1, model.RoleManager)

	require.False(t, CanEditOrDeleteUser(manager, userWith(2, model.RoleAdmin)))
	require.False(t, CanEditOrDeleteUser(manager, userWith(3, model.RoleManager)))

	require.True(t, CanEditOrDeleteUser(manager, userWith(4, model.RoleVolunteer)))
	require.True(t, CanEditOrDeleteUser(manager, userWith(5, model.RoleIntern)))
	require.True(t, CanEditOrDeleteUser(manager, userWith(6, model.RoleDonor)))
}

func TestCanEditOrDeleteUser_LowRolesDenied(t *testing.T) {
	for _, role := range []model.Role{model.RoleVolunteer, model.RoleIntern, model.RoleDonor} {
		actor := userWith(1, role)
		for _, target := range model.AllRoles {
			require.False(t, CanEditOrDeleteUser(actor, userWith(2, target)),
				"actor %s target %s", role, target)
		}
	}
}

func TestCanEditOrDeleteUser_NilInput(t *testing.T) {
	require.False(t, CanEditOrDeleteUser(nil, userWith(1, model.RoleAdmin)))
	require.False(t, CanEditOrDeleteUser(userWith(1, model.RoleAdmin), nil))
}
