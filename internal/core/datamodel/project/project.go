package project

import (
	"github.com/frahmantamala/hr-management/internal/core/common/textcodec"
)

// DateLayout is the sortable timestamp form used for created and assigned
// dates. Lexicographic order on the stored string equals chronological order.
const DateLayout = "2006-01-02 15:04:05"

// DefaultAssignmentRole is applied when an assignment is created without an
// explicit role label.
const DefaultAssignmentRole = "Участник"

type Project struct {
	Name        string
	Description string
	Status      string
	CreatedDate string
}

func (p Project) Serialize() string {
	return textcodec.Join(p.Name, p.Description, p.Status, p.CreatedDate)
}

func Parse(line string) (Project, bool) {
	fields, ok := textcodec.Split(line, 4)
	if !ok {
		return Project{}, false
	}
	return Project{
		Name:        fields[0],
		Description: fields[1],
		Status:      fields[2],
		CreatedDate: fields[3],
	}, true
}

// Assignment links a user to a project. The composite relationship key is
// (Username, ProjectName); the store does not deduplicate it.
type Assignment struct {
	Username     string
	ProjectName  string
	Role         string
	AssignedDate string
}

func (a Assignment) Serialize() string {
	return textcodec.Join(a.Username, a.ProjectName, a.Role, a.AssignedDate)
}

func ParseAssignment(line string) (Assignment, bool) {
	fields, ok := textcodec.Split(line, 4)
	if !ok {
		return Assignment{}, false
	}
	return Assignment{
		Username:     fields[0],
		ProjectName:  fields[1],
		Role:         fields[2],
		AssignedDate: fields[3],
	}, true
}
