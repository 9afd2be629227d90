package project

import "github.com/frahmantamala/hr-management/internal/core/common/validation"

type CreateProjectDTO struct {
	Name        string
	Description string
	Status      string
}

func (dto *CreateProjectDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(120)
	v.Field("description", dto.Description).MaxLength(500)
	v.Field("status", dto.Status).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// UpdateProjectDTO carries a partial update: empty Status or Description
// means "leave unchanged".
type UpdateProjectDTO struct {
	Name        string
	Status      string
	Description string
}

func (dto *UpdateProjectDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type AssignEmployeeDTO struct {
	Username    string
	ProjectName string
	Role        string
}

func (dto *AssignEmployeeDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("username", dto.Username).Required()
	v.Field("project", dto.ProjectName).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}
