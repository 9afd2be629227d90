package user

import (
	"log/slog"
	"strings"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/auth"
	projectdm "github.com/frahmantamala/hr-management/internal/core/datamodel/project"
	userdm "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
)

// reservedLogins can never be registered; the admin account is synthesized
// by the store, not created through registration.
var reservedLogins = map[string]struct{}{
	"admin":         {},
	"administrator": {},
	"root":          {},
}

// StoreAPI is the slice of the user store the service depends on.
type StoreAPI interface {
	FindByUsername(username string) (userdm.User, bool)
	AddUser(u userdm.User) bool
	RemoveUserByUsername(username string) bool
	RemoveHRUserByUsername(username string) bool
	MoveUserToHR(username string) bool
	UpdateEmployee(username, fullName, department string) bool
	IsPasswordAlreadyUsed(passwordHash string) bool
}

// AssignmentCleaner is what the service needs from the project side to
// cascade a user deletion. The user store itself never touches assignments;
// that split is deliberate.
type AssignmentCleaner interface {
	AssignmentsForUser(username string) []projectdm.Assignment
	RemoveEmployeeFromProject(username, projectName string) bool
}

type Service struct {
	store       StoreAPI
	assignments AssignmentCleaner
	security    internal.SecurityConfig
	logger      *slog.Logger
}

func NewService(store StoreAPI, assignments AssignmentCleaner, security internal.SecurityConfig, logger *slog.Logger) *Service {
	return &Service{
		store:       store,
		assignments: assignments,
		security:    security,
		logger:      logger,
	}
}

// IsPasswordAvailable digests the candidate plaintext and checks it against
// every stored account. Used by the registration prompt loop before the DTO
// is complete.
func (s *Service) IsPasswordAvailable(password string) bool {
	return !s.store.IsPasswordAlreadyUsed(auth.HashPassword(password))
}

// Register creates an account. Choosing the HR department yields a PENDING
// record that an administrator must approve; everything else registers as a
// regular employee.
func (s *Service) Register(dto RegisterDTO) (*User, error) {
	if err := dto.Validate(s.security.MinPasswordLength); err != nil {
		return nil, err
	}
	if _, reserved := reservedLogins[strings.ToLower(dto.Username)]; reserved {
		return nil, internal.ErrUsernameReserved
	}
	if _, exists := s.store.FindByUsername(dto.Username); exists {
		return nil, internal.ErrUsernameTaken
	}

	passwordHash := auth.HashPassword(dto.Password)
	if s.store.IsPasswordAlreadyUsed(passwordHash) {
		return nil, internal.ErrPasswordInUse
	}

	role := userdm.RoleEmployee
	if dto.WantsHRRole() {
		role = userdm.RolePending
	}

	record := userdm.User{
		Username:     dto.Username,
		PasswordHash: passwordHash,
		FullName:     dto.FullName,
		Department:   dto.Department,
		Role:         role,
	}
	if !s.store.AddUser(record) {
		return nil, internal.ErrUsernameTaken
	}

	s.logger.Info("registered user", "username", dto.Username, "role", role)
	domainUser := FromDataModel(record)
	return &domainUser, nil
}

// Authenticate verifies credentials and returns the domain user. The
// attempt budget is owned by the console.
func (s *Service) Authenticate(username, password string) (*User, error) {
	record, ok := s.store.FindByUsername(username)
	if !ok {
		return nil, internal.ErrUserNotFound
	}
	if !auth.VerifyPassword(password, record.PasswordHash) {
		return nil, internal.ErrInvalidCredentials
	}
	domainUser := FromDataModel(record)
	return &domainUser, nil
}

func (s *Service) UpdateEmployee(dto UpdateEmployeeDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}
	if !s.store.UpdateEmployee(dto.Username, dto.FullName, dto.Department) {
		return internal.ErrUserNotFound
	}
	s.logger.Info("updated employee", "username", dto.Username)
	return nil
}

// RemoveUser deletes an account from whichever partition holds it and
// cascades the removal of its project assignments. The cascade runs here,
// outside the store, mirroring the store's contract.
func (s *Service) RemoveUser(username string) error {
	removed := s.store.RemoveUserByUsername(username)
	if !removed {
		removed = s.store.RemoveHRUserByUsername(username)
	}
	if !removed {
		return internal.ErrUserNotFound
	}

	for _, a := range s.assignments.AssignmentsForUser(username) {
		s.assignments.RemoveEmployeeFromProject(username, a.ProjectName)
	}
	s.logger.Info("removed user", "username", username)
	return nil
}

// PromoteToHR approves a pending HR request. Only PENDING employees can be
// promoted.
func (s *Service) PromoteToHR(username string) error {
	record, ok := s.store.FindByUsername(username)
	if !ok {
		return internal.ErrUserNotFound
	}
	if record.Role != userdm.RolePending {
		return internal.ErrUserNotPending
	}
	if !s.store.MoveUserToHR(username) {
		return internal.ErrUserNotPending
	}
	s.logger.Info("promoted user to hr", "username", username)
	return nil
}
