package user

import (
	"strings"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/validation"
)

// RegisterDTO carries a registration request. Passwords arrive in plaintext
// and are digested inside the service.
type RegisterDTO struct {
	Username        string
	Password        string
	PasswordConfirm string
	FullName        string
	Department      string
}

func (dto RegisterDTO) Validate(minPasswordLength int) *internal.AppError {
	v := validation.NewValidator()
	v.Field("username", dto.Username).Required()
	v.Field("password", dto.Password).Required().MinLength(minPasswordLength)
	v.Field("fullname", dto.FullName).Required()
	v.Field("department", dto.Department).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	if dto.Password != dto.PasswordConfirm {
		return internal.NewValidationFieldError("password", "Пароли не совпадают", internal.ErrCodePasswordMismatch)
	}
	return nil
}

// WantsHRRole reports whether the chosen department routes the account into
// the pending-approval flow.
func (dto RegisterDTO) WantsHRRole() bool {
	return strings.EqualFold(strings.TrimSpace(dto.Department), "HR")
}

type UpdateEmployeeDTO struct {
	Username   string
	FullName   string
	Department string
}

func (dto UpdateEmployeeDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("username", dto.Username).Required()
	v.Field("fullname", dto.FullName).Required()
	v.Field("department", dto.Department).Required()
	return v.Validate()
}
