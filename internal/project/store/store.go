// Package store keeps projects and employee-project assignments in memory,
// mirrored to two flat files with the same write-through discipline as the
// user store.
package store

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/textcodec"
	projectdm "github.com/frahmantamala/hr-management/internal/core/datamodel/project"
)

type ProjectStore struct {
	storage internal.StorageConfig
	logger  *slog.Logger
	now     func() time.Time

	projects    []projectdm.Project
	assignments []projectdm.Assignment
}

func New(storage internal.StorageConfig, logger *slog.Logger) *ProjectStore {
	s := &ProjectStore{
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
	s.Load()
	return s
}

// Load re-reads both files independently, skipping malformed lines.
func (s *ProjectStore) Load() {
	s.projects = nil
	s.assignments = nil

	lines, err := textcodec.ReadLines(s.storage.ProjectsPath())
	if err != nil {
		s.logger.Error("failed to read projects file", "path", s.storage.ProjectsPath(), "error", err)
	}
	for _, line := range lines {
		p, ok := projectdm.Parse(line)
		if !ok {
			s.logger.Warn("skipping malformed project record", "line", line)
			continue
		}
		s.projects = append(s.projects, p)
	}

	lines, err = textcodec.ReadLines(s.storage.AssignmentsPath())
	if err != nil {
		s.logger.Error("failed to read assignments file", "path", s.storage.AssignmentsPath(), "error", err)
	}
	for _, line := range lines {
		a, ok := projectdm.ParseAssignment(line)
		if !ok {
			s.logger.Warn("skipping malformed assignment record", "line", line)
			continue
		}
		s.assignments = append(s.assignments, a)
	}
}

// AddProject rejects an empty name and duplicate names. The created date is
// stamped here and never changes.
func (s *ProjectStore) AddProject(name, description, status string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	if _, exists := s.FindProject(name); exists {
		return false
	}
	s.projects = append(s.projects, projectdm.Project{
		Name:        name,
		Description: description,
		Status:      status,
		CreatedDate: s.now().Format(projectdm.DateLayout),
	})
	s.saveProjects()
	return true
}

// RemoveProject deletes the project and every assignment referencing it.
func (s *ProjectStore) RemoveProject(name string) bool {
	idx := -1
	for i, p := range s.projects {
		if p.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	s.projects = append(s.projects[:idx], s.projects[idx+1:]...)

	kept := s.assignments[:0]
	for _, a := range s.assignments {
		if a.ProjectName != name {
			kept = append(kept, a)
		}
	}
	s.assignments = kept

	s.saveProjects()
	s.saveAssignments()
	return true
}

// UpdateProject applies a partial update: an empty status or description
// argument means "leave unchanged", not "set to empty".
func (s *ProjectStore) UpdateProject(name, status, description string) bool {
	for i := range s.projects {
		if s.projects[i].Name == name {
			if status != "" {
				s.projects[i].Status = status
			}
			if description != "" {
				s.projects[i].Description = description
			}
			s.saveProjects()
			return true
		}
	}
	return false
}

func (s *ProjectStore) FindProject(name string) (projectdm.Project, bool) {
	for _, p := range s.projects {
		if p.Name == name {
			return p, true
		}
	}
	return projectdm.Project{}, false
}

// AssignEmployee requires the project to exist but deliberately checks
// neither that the username exists nor that the pair is already assigned;
// duplicate assignments accumulate. Callers wanting stricter behavior
// validate before calling.
func (s *ProjectStore) AssignEmployee(username, projectName, role string) bool {
	if _, exists := s.FindProject(projectName); !exists {
		return false
	}
	if role == "" {
		role = projectdm.DefaultAssignmentRole
	}
	s.assignments = append(s.assignments, projectdm.Assignment{
		Username:     username,
		ProjectName:  projectName,
		Role:         role,
		AssignedDate: s.now().Format(projectdm.DateLayout),
	})
	s.saveAssignments()
	return true
}

// RemoveEmployeeFromProject drops the first matching assignment only.
func (s *ProjectStore) RemoveEmployeeFromProject(username, projectName string) bool {
	for i, a := range s.assignments {
		if a.Username == username && a.ProjectName == projectName {
			s.assignments = append(s.assignments[:i], s.assignments[i+1:]...)
			s.saveAssignments()
			return true
		}
	}
	return false
}

// UpdateEmployeeRole relabels the first matching assignment only.
func (s *ProjectStore) UpdateEmployeeRole(username, projectName, newRole string) bool {
	for i := range s.assignments {
		if s.assignments[i].Username == username && s.assignments[i].ProjectName == projectName {
			s.assignments[i].Role = newRole
			s.saveAssignments()
			return true
		}
	}
	return false
}

func (s *ProjectStore) AllProjects() []projectdm.Project {
	out := make([]projectdm.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

func (s *ProjectStore) AllAssignments() []projectdm.Assignment {
	out := make([]projectdm.Assignment, len(s.assignments))
	copy(out, s.assignments)
	return out
}

// ProjectsForUser resolves the projects a user is assigned to, in project
// declaration order, one entry per assignment.
func (s *ProjectStore) ProjectsForUser(username string) []projectdm.Project {
	var out []projectdm.Project
	for _, a := range s.assignments {
		if a.Username != username {
			continue
		}
		if p, ok := s.FindProject(a.ProjectName); ok {
			out = append(out, p)
		}
	}
	return out
}

func (s *ProjectStore) AssignmentsForProject(projectName string) []projectdm.Assignment {
	var out []projectdm.Assignment
	for _, a := range s.assignments {
		if a.ProjectName == projectName {
			out = append(out, a)
		}
	}
	return out
}

func (s *ProjectStore) AssignmentsForUser(username string) []projectdm.Assignment {
	var out []projectdm.Assignment
	for _, a := range s.assignments {
		if a.Username == username {
			out = append(out, a)
		}
	}
	return out
}

func (s *ProjectStore) SearchByName(keyword string) []projectdm.Project {
	needle := strings.ToLower(keyword)
	var out []projectdm.Project
	for _, p := range s.projects {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByStatus matches the status label exactly.
func (s *ProjectStore) FilterByStatus(status string) []projectdm.Project {
	var out []projectdm.Project
	for _, p := range s.projects {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

func (s *ProjectStore) SortedByName(ascending bool) []projectdm.Project {
	out := s.AllProjects()
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].Name < out[j].Name
		}
		return out[i].Name > out[j].Name
	})
	return out
}

// SortedByDate sorts lexicographically on the stored date string; the
// YYYY-MM-DD HH:MM:SS form makes that chronological.
func (s *ProjectStore) SortedByDate(ascending bool) []projectdm.Project {
	out := s.AllProjects()
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].CreatedDate < out[j].CreatedDate
		}
		return out[i].CreatedDate > out[j].CreatedDate
	})
	return out
}

func (s *ProjectStore) saveProjects() {
	lines := make([]string, 0, len(s.projects))
	for _, p := range s.projects {
		lines = append(lines, p.Serialize())
	}
	if err := textcodec.WriteLines(s.storage.ProjectsPath(), lines); err != nil {
		s.logger.Error("failed to write projects file", "path", s.storage.ProjectsPath(), "error", err)
	}
}

func (s *ProjectStore) saveAssignments() {
	lines := make([]string, 0, len(s.assignments))
	for _, a := range s.assignments {
		lines = append(lines, a.Serialize())
	}
	if err := textcodec.WriteLines(s.storage.AssignmentsPath(), lines); err != nil {
		s.logger.Error("failed to write assignments file", "path", s.storage.AssignmentsPath(), "error", err)
	}
}
