package user

import (
	"strings"

	"github.com/frahmantamala/hr-management/internal/core/common/textcodec"
)

type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleHR       Role = "HR"
	RoleAdmin    Role = "ADMIN"
	RolePending  Role = "PENDING"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleHR, RoleAdmin, RolePending:
		return true
	}
	return false
}

// ParseRole maps unknown strings to RoleEmployee, matching the loader's
// lenient treatment of legacy records.
func ParseRole(s string) Role {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HR":
		return RoleHR
	case "ADMIN":
		return RoleAdmin
	case "PENDING":
		return RolePending
	}
	return RoleEmployee
}

// User is the persisted account record. One struct covers all roles; the
// role field decides which backing file the record is written to.
type User struct {
	Username     string
	PasswordHash string
	FullName     string
	Department   string
	Role         Role
}

// Serialize renders the users-file form: five pipe-joined fields. Field
// values containing '|' or a newline corrupt the line; the format has no
// escaping.
func (u User) Serialize() string {
	return textcodec.Join(u.Username, u.PasswordHash, u.FullName, u.Department, string(u.Role))
}

// SerializeHR renders the hr_users-file form, which carries no role column.
func (u User) SerializeHR() string {
	return textcodec.Join(u.Username, u.PasswordHash, u.FullName, u.Department)
}

// SerializeAdmin renders the admin-file form kept compatible with legacy
// files: username|hash|fullname|ADMIN|ADMIN.
func (u User) SerializeAdmin() string {
	return textcodec.Join(u.Username, u.PasswordHash, u.FullName, "ADMIN", "ADMIN")
}

// Parse reads a users-file line. Lines with fewer than five fields are
// rejected; extra fields are ignored.
func Parse(line string) (User, bool) {
	fields, ok := textcodec.Split(line, 5)
	if !ok {
		return User{}, false
	}
	return User{
		Username:     fields[0],
		PasswordHash: fields[1],
		FullName:     fields[2],
		Department:   fields[3],
		Role:         ParseRole(fields[4]),
	}, true
}

// ParseHR reads an hr_users-file line: four fields minimum, a trailing role
// column from files written by older versions is ignored.
func ParseHR(line string) (User, bool) {
	fields, ok := textcodec.Split(line, 4)
	if !ok {
		return User{}, false
	}
	return User{
		Username:     fields[0],
		PasswordHash: fields[1],
		FullName:     fields[2],
		Department:   fields[3],
		Role:         RoleHR,
	}, true
}

// ParseAdmin reads the single admin-file line: three fields minimum, extras
// ignored.
func ParseAdmin(line string) (User, bool) {
	fields, ok := textcodec.Split(line, 3)
	if !ok {
		return User{}, false
	}
	return User{
		Username:     fields[0],
		PasswordHash: fields[1],
		FullName:     fields[2],
		Department:   "ADMIN",
		Role:         RoleAdmin,
	}, true
}
