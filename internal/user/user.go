package user

import (
	userdm "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
)

// User is the domain view of an account: everything but the password digest.
// Permission checks are role gates on this one concrete type; there is no
// per-role subtype.
type User struct {
	Username   string
	FullName   string
	Department string
	Role       userdm.Role
}

func (u User) CanAssignHRRole() bool {
	return u.Role == userdm.RoleAdmin
}

func (u User) CanManageEmployees() bool {
	return u.Role == userdm.RoleHR
}

func (u User) CanManageProjects() bool {
	return u.Role == userdm.RoleHR
}

func (u User) CanConfigureWeights() bool {
	return u.Role == userdm.RoleAdmin
}

// IsPendingApproval reports whether the account still awaits the admin's
// HR-role decision. Pending accounts act as regular employees meanwhile.
func (u User) IsPendingApproval() bool {
	return u.Role == userdm.RolePending
}

func FromDataModel(u userdm.User) User {
	return User{
		Username:   u.Username,
		FullName:   u.FullName,
		Department: u.Department,
		Role:       u.Role,
	}
}
