package project

import (
	"log/slog"

	"github.com/frahmantamala/hr-management/internal"
	projectdm "github.com/frahmantamala/hr-management/internal/core/datamodel/project"
)

// StoreAPI is the slice of the project store the service depends on.
type StoreAPI interface {
	AddProject(name, description, status string) bool
	RemoveProject(name string) bool
	UpdateProject(name, status, description string) bool
	FindProject(name string) (projectdm.Project, bool)
	AssignEmployee(username, projectName, role string) bool
	RemoveEmployeeFromProject(username, projectName string) bool
	UpdateEmployeeRole(username, projectName, newRole string) bool
}

type Service struct {
	store  StoreAPI
	logger *slog.Logger
}

func NewService(store StoreAPI, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func (s *Service) CreateProject(dto CreateProjectDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}
	if _, exists := s.store.FindProject(dto.Name); exists {
		return internal.ErrProjectNameTaken
	}
	if !s.store.AddProject(dto.Name, dto.Description, dto.Status) {
		return internal.ErrProjectNameTaken
	}
	s.logger.Info("created project", "name", dto.Name)
	return nil
}

// RemoveProject deletes the project; the store cascades its assignments.
func (s *Service) RemoveProject(name string) error {
	if !s.store.RemoveProject(name) {
		return internal.ErrProjectNotFound
	}
	s.logger.Info("removed project", "name", name)
	return nil
}

func (s *Service) UpdateProject(dto UpdateProjectDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}
	if !s.store.UpdateProject(dto.Name, dto.Status, dto.Description) {
		return internal.ErrProjectNotFound
	}
	s.logger.Info("updated project", "name", dto.Name)
	return nil
}

func (s *Service) AssignEmployee(dto AssignEmployeeDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}
	if !s.store.AssignEmployee(dto.Username, dto.ProjectName, dto.Role) {
		return internal.ErrProjectNotFound
	}
	s.logger.Info("assigned employee", "username", dto.Username, "project", dto.ProjectName)
	return nil
}

func (s *Service) RemoveEmployee(username, projectName string) error {
	if !s.store.RemoveEmployeeFromProject(username, projectName) {
		return internal.ErrAssignmentNotFound
	}
	s.logger.Info("removed assignment", "username", username, "project", projectName)
	return nil
}

func (s *Service) ChangeEmployeeRole(username, projectName, newRole string) error {
	if !s.store.UpdateEmployeeRole(username, projectName, newRole) {
		return internal.ErrAssignmentNotFound
	}
	s.logger.Info("changed assignment role", "username", username, "project", projectName, "role", newRole)
	return nil
}
