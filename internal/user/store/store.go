// Package store keeps every account in memory and mirrors each mutation to
// the three backing files: the users file (employee and pending records),
// the HR users file, and the single-record admin file. Usernames are unique
// across all three; the partitions are role views over one record set, the
// separate files are a serialization concern.
package store

import (
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/auth"
	"github.com/frahmantamala/hr-management/internal/core/common/textcodec"
	userdm "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
)

// ScoreProvider resolves the persisted performance score for a username,
// returning -1 when the user was never evaluated.
type ScoreProvider interface {
	GetPerformanceScore(username string) float64
}

// RatedEmployee pairs an employee with their score snapshot; Score is -1 for
// unrated employees.
type RatedEmployee struct {
	User  userdm.User
	Score float64
}

type UserStore struct {
	storage  internal.StorageConfig
	security internal.SecurityConfig
	logger   *slog.Logger

	employees []userdm.User // EMPLOYEE and PENDING roles
	hrUsers   []userdm.User
	admin     *userdm.User
}

func New(storage internal.StorageConfig, security internal.SecurityConfig, logger *slog.Logger) *UserStore {
	s := &UserStore{
		storage:  storage,
		security: security,
		logger:   logger,
	}
	s.Load()
	return s
}

// Load resets all partitions and re-reads the three files. Records in the
// users file claiming HR or ADMIN roles are discarded: those partitions are
// owned by their dedicated files. A missing, empty or malformed admin file
// produces a default administrator, persisted immediately.
func (s *UserStore) Load() {
	s.employees = nil
	s.hrUsers = nil
	s.admin = nil

	lines, err := textcodec.ReadLines(s.storage.UsersPath())
	if err != nil {
		s.logger.Error("failed to read users file", "path", s.storage.UsersPath(), "error", err)
	}
	for _, line := range lines {
		u, ok := userdm.Parse(line)
		if !ok {
			s.logger.Warn("skipping malformed user record", "line", line)
			continue
		}
		if u.Role == userdm.RoleHR || u.Role == userdm.RoleAdmin {
			continue
		}
		s.employees = append(s.employees, u)
	}

	s.loadHRUsers()
	s.loadAdmin()
}

func (s *UserStore) loadHRUsers() {
	lines, err := textcodec.ReadLines(s.storage.HRUsersPath())
	if err != nil {
		s.logger.Error("failed to read hr users file", "path", s.storage.HRUsersPath(), "error", err)
	}
	for _, line := range lines {
		u, ok := userdm.ParseHR(line)
		if !ok {
			s.logger.Warn("skipping malformed hr user record", "line", line)
			continue
		}
		s.hrUsers = append(s.hrUsers, u)
	}
}

func (s *UserStore) loadAdmin() {
	lines, err := textcodec.ReadLines(s.storage.AdminPath())
	if err != nil {
		s.logger.Error("failed to read admin file", "path", s.storage.AdminPath(), "error", err)
	}
	if len(lines) > 0 {
		if u, ok := userdm.ParseAdmin(lines[0]); ok {
			s.admin = &u
			return
		}
		s.logger.Warn("admin file is malformed, creating default administrator")
	}
	s.createDefaultAdmin()
}

func (s *UserStore) createDefaultAdmin() {
	admin := userdm.User{
		Username:     s.security.DefaultAdminLogin,
		PasswordHash: auth.HashPassword(s.security.DefaultAdminPassword),
		FullName:     "Системный администратор",
		Department:   "ADMIN",
		Role:         userdm.RoleAdmin,
	}
	s.admin = &admin
	s.logger.Warn("created default administrator, change the password after first login",
		"login", s.security.DefaultAdminLogin,
		"password", s.security.DefaultAdminPassword)
	s.saveAdmin()
}

// FindByUsername checks the admin record, then the HR partition, then the
// employee partition. Usernames are unique across all three, so the order
// only short-circuits the scan.
func (s *UserStore) FindByUsername(username string) (userdm.User, bool) {
	if s.admin != nil && s.admin.Username == username {
		return *s.admin, true
	}
	for _, u := range s.hrUsers {
		if u.Username == username {
			return u, true
		}
	}
	for _, u := range s.employees {
		if u.Username == username {
			return u, true
		}
	}
	return userdm.User{}, false
}

// AddUser rejects duplicate usernames and invalid roles. HR records go to
// the HR partition; every other role, PENDING included, is structurally an
// employee record.
func (s *UserStore) AddUser(u userdm.User) bool {
	if !u.Role.IsValid() {
		return false
	}
	if _, exists := s.FindByUsername(u.Username); exists {
		return false
	}
	if u.Role == userdm.RoleHR {
		s.hrUsers = append(s.hrUsers, u)
	} else {
		s.employees = append(s.employees, u)
	}
	s.saveAll()
	return true
}

// RemoveUserByUsername removes from the employee partition only. Cascading
// removal of project assignments is the caller's responsibility.
func (s *UserStore) RemoveUserByUsername(username string) bool {
	for i, u := range s.employees {
		if u.Username == username {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			s.saveEmployees()
			return true
		}
	}
	return false
}

func (s *UserStore) RemoveHRUserByUsername(username string) bool {
	for i, u := range s.hrUsers {
		if u.Username == username {
			s.hrUsers = append(s.hrUsers[:i], s.hrUsers[i+1:]...)
			s.saveHRUsers()
			return true
		}
	}
	return false
}

// MoveUserToHR promotes a PENDING employee into the HR partition, keeping
// username, password, full name and department. Any other starting state
// fails.
func (s *UserStore) MoveUserToHR(username string) bool {
	for i, u := range s.employees {
		if u.Username == username && u.Role == userdm.RolePending {
			u.Role = userdm.RoleHR
			s.hrUsers = append(s.hrUsers, u)
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			s.saveAll()
			return true
		}
	}
	return false
}

func (s *UserStore) UpdateEmployee(username, fullName, department string) bool {
	for i := range s.employees {
		if s.employees[i].Username == username {
			s.employees[i].FullName = fullName
			s.employees[i].Department = department
			s.saveEmployees()
			return true
		}
	}
	return false
}

// IsPasswordAlreadyUsed scans every partition for a matching digest. The
// system forbids two accounts from sharing a password.
func (s *UserStore) IsPasswordAlreadyUsed(passwordHash string) bool {
	if s.admin != nil && s.admin.PasswordHash == passwordHash {
		return true
	}
	for _, u := range s.hrUsers {
		if u.PasswordHash == passwordHash {
			return true
		}
	}
	for _, u := range s.employees {
		if u.PasswordHash == passwordHash {
			return true
		}
	}
	return false
}

func (s *UserStore) GetAllEmployees() []userdm.User {
	out := make([]userdm.User, len(s.employees))
	copy(out, s.employees)
	return out
}

func (s *UserStore) GetPendingUsers() []userdm.User {
	var out []userdm.User
	for _, u := range s.employees {
		if u.Role == userdm.RolePending {
			out = append(out, u)
		}
	}
	return out
}

func (s *UserStore) HRUsers() []userdm.User {
	out := make([]userdm.User, len(s.hrUsers))
	copy(out, s.hrUsers)
	return out
}

// AllUsers returns the admin record followed by employees and HR users.
func (s *UserStore) AllUsers() []userdm.User {
	var out []userdm.User
	if s.admin != nil {
		out = append(out, *s.admin)
	}
	out = append(out, s.employees...)
	out = append(out, s.hrUsers...)
	return out
}

func (s *UserStore) IsHRUser(username string) bool {
	for _, u := range s.hrUsers {
		if u.Username == username {
			return true
		}
	}
	return false
}

func (s *UserStore) IsAdminUser(username string) bool {
	return s.admin != nil && s.admin.Username == username
}

// SearchByName matches the keyword case-insensitively against full name or
// username of employee-partition records.
func (s *UserStore) SearchByName(keyword string) []userdm.User {
	needle := strings.ToLower(keyword)
	var out []userdm.User
	for _, u := range s.employees {
		if strings.Contains(strings.ToLower(u.FullName), needle) ||
			strings.Contains(strings.ToLower(u.Username), needle) {
			out = append(out, u)
		}
	}
	return out
}

func (s *UserStore) SortedByName(ascending bool) []userdm.User {
	out := s.GetAllEmployees()
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].FullName < out[j].FullName
		}
		return out[i].FullName > out[j].FullName
	})
	return out
}

// SortedByRating orders rated employees by score descending with full-name
// ties ascending, then unrated employees by full name. Scores are rounded to
// two decimals before comparison.
func (s *UserStore) SortedByRating(scores ScoreProvider) []RatedEmployee {
	rated := make([]RatedEmployee, 0, len(s.employees))
	for _, u := range s.employees {
		score := scores.GetPerformanceScore(u.Username)
		if score >= 0 {
			score = math.Round(score*100) / 100
		}
		rated = append(rated, RatedEmployee{User: u, Score: score})
	}

	sort.SliceStable(rated, func(i, j int) bool {
		a, b := rated[i], rated[j]
		switch {
		case a.Score >= 0 && b.Score >= 0:
			if a.Score != b.Score {
				return a.Score > b.Score
			}
			return a.User.FullName < b.User.FullName
		case a.Score >= 0:
			return true
		case b.Score >= 0:
			return false
		default:
			return a.User.FullName < b.User.FullName
		}
	})
	return rated
}

// Rank returns the 1-based position of username in the rating order and the
// total employee count, or (-1, total) when the username is not an employee.
func (s *UserStore) Rank(username string, scores ScoreProvider) (int, int) {
	sorted := s.SortedByRating(scores)
	position := -1
	for i, r := range sorted {
		if r.User.Username == username {
			position = i + 1
			break
		}
	}
	return position, len(sorted)
}

// ----------------- PERSISTENCE -----------------
//
// Write-through: every mutation rewrites the affected files in full. A
// failed write is logged and the in-memory state stands; memory and disk
// diverge until the next successful save.

func (s *UserStore) saveEmployees() {
	lines := make([]string, 0, len(s.employees))
	for _, u := range s.employees {
		lines = append(lines, u.Serialize())
	}
	if err := textcodec.WriteLines(s.storage.UsersPath(), lines); err != nil {
		s.logger.Error("failed to write users file", "path", s.storage.UsersPath(), "error", err)
	}
}

func (s *UserStore) saveHRUsers() {
	lines := make([]string, 0, len(s.hrUsers))
	for _, u := range s.hrUsers {
		lines = append(lines, u.SerializeHR())
	}
	if err := textcodec.WriteLines(s.storage.HRUsersPath(), lines); err != nil {
		s.logger.Error("failed to write hr users file", "path", s.storage.HRUsersPath(), "error", err)
	}
}

func (s *UserStore) saveAdmin() {
	var lines []string
	if s.admin != nil {
		lines = append(lines, s.admin.SerializeAdmin())
	}
	if err := textcodec.WriteLines(s.storage.AdminPath(), lines); err != nil {
		s.logger.Error("failed to write admin file", "path", s.storage.AdminPath(), "error", err)
	}
}

func (s *UserStore) saveAll() {
	s.saveEmployees()
	s.saveHRUsers()
	s.saveAdmin()
}
