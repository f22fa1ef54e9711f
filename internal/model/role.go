package model

// Role 用户角色
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleManager   Role = "Manager"
	RoleVolunteer Role = "Volunteer"
	RoleIntern    Role = "Intern"
	RoleDonor     Role = "Donor"
)

// AllRoles 全部角色，顺序固定
var AllRoles = []Role{RoleAdmin, RoleManager, RoleVolunteer, RoleIntern, RoleDonor}

// Valid 校验角色取值是否合法
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleVolunteer, RoleIntern, RoleDonor:
		return true
	}
	return false
}

// UserStatus 用户状态
type UserStatus string

const (
	StatusActive   UserStatus = "Active"
	StatusInactive UserStatus = "Inactive"
)

func (s UserStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}
