// Package policy 汇总各页面分散的角色权限判定，全部为纯函数
// 判定只依赖 (操作者, 目标) 两个输入，不读全局状态，便于在 handler 和测试中复用
package policy

import "ngo-admin-system/internal/model"

// CanManageEntityClass 是否可以管理项目/捐赠/素材这类实体（创建、编辑、删除入口）
// 仅 Admin 和 Manager 可以
func CanManageEntityClass(role model.Role) bool {
	return role == model.RoleAdmin || role == model.RoleManager
}

// CanCreateUser 是否可以创建用户，Donor 之外的角色都可以
// 素材上传入口与此共用同一个角色集合
func CanCreateUser(role model.Role) bool {
	switch role {
	case model.RoleAdmin, model.RoleManager, model.RoleVolunteer, model.RoleIntern:
		return true
	}
	return false
}

// AvailableRoles 操作者可分配给他人的角色集合
// Admin 可分配全部角色；Manager 只能分配 Volunteer/Intern/Donor；其余角色无权分配
func AvailableRoles(role model.Role) []model.Role {
	switch role {
	case model.RoleAdmin:
		return []model.Role{model.RoleAdmin, model.RoleManager, model.RoleVolunteer, model.RoleIntern, model.RoleDonor}
	case model.RoleManager:
		return []model.Role{model.RoleVolunteer, model.RoleIntern, model.RoleDonor}
	}
	return nil
}

// RoleAssignable 目标角色是否在操作者可分配范围内
func RoleAssignable(actor model.Role, target model.Role) bool {
	for _, r := range AvailableRoles(actor) {
		if r == target {
			return true
		}
	}
	return false
}

// CanEditOrDeleteUser 是否可以编辑或删除目标用户
// 判定顺序固定：先排除自己，再放行 Admin，最后 Manager 只能动低角色
// Manager 对 Manager / Admin 一律拒绝
func CanEditOrDeleteUser(actor, target *model.User) bool {
	if actor == nil || target == nil {
		return false
	}
	if actor.ID == target.ID {
		// 不能编辑或删除自己
		return false
	}
	if actor.Role == model.RoleAdmin {
		return true
	}
	if actor.Role == model.RoleManager {
		switch target.Role {
		case model.RoleVolunteer, model.RoleIntern, model.RoleDonor:
			return true
		}
	}
	return false
}

// CanChangeRole 是否可以修改目标用户的角色，规则与编辑删除完全一致
func CanChangeRole(actor, target *model.User) bool {
	return CanEditOrDeleteUser(actor, target)
}

// CanChangeStatus 是否可以启用/停用目标用户，规则与编辑删除完全一致
func CanChangeStatus(actor, target *model.User) bool {
	return CanEditOrDeleteUser(actor, target)
}
