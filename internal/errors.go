package internal

import (
	"fmt"
	"strings"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden    ErrorType = "FORBIDDEN"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidUsername  ErrorCode = "INVALID_USERNAME"
	ErrCodeInvalidFullName  ErrorCode = "INVALID_FULLNAME"
	ErrCodeInvalidRole      ErrorCode = "INVALID_ROLE"
	ErrCodePasswordTooShort ErrorCode = "PASSWORD_TOO_SHORT"
	ErrCodePasswordMismatch ErrorCode = "PASSWORD_MISMATCH"
	ErrCodeInvalidScore     ErrorCode = "INVALID_SCORE"
	ErrCodeInvalidWeight    ErrorCode = "INVALID_WEIGHT"

	ErrCodeUserNotFound      ErrorCode = "USER_NOT_FOUND"
	ErrCodeUsernameTaken     ErrorCode = "USERNAME_TAKEN"
	ErrCodeUsernameReserved  ErrorCode = "USERNAME_RESERVED"
	ErrCodePasswordInUse     ErrorCode = "PASSWORD_IN_USE"
	ErrCodeUserNotPending    ErrorCode = "USER_NOT_PENDING"
	ErrCodeInvalidCredential ErrorCode = "INVALID_CREDENTIALS"

	ErrCodeProjectNotFound    ErrorCode = "PROJECT_NOT_FOUND"
	ErrCodeProjectNameTaken   ErrorCode = "PROJECT_NAME_TAKEN"
	ErrCodeAssignmentNotFound ErrorCode = "ASSIGNMENT_NOT_FOUND"

	ErrCodeReportFailed ErrorCode = "REPORT_FAILED"
)

type AppError struct {
	Type    ErrorType
	Code    ErrorCode
	Message string
	Details interface{}
	Cause   error
}

func (e *AppError) Error() string {
	if e.Details != nil {
		if validationErrors, ok := e.Details.(ValidationErrors); ok && len(validationErrors.Errors) > 0 {
			return validationErrors.Errors[0].Message
		}
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) GetDetailedMessage() string {
	if e.Details != nil {
		if validationErrors, ok := e.Details.(ValidationErrors); ok {
			if len(validationErrors.Errors) == 1 {
				return validationErrors.Errors[0].Message
			} else if len(validationErrors.Errors) > 1 {
				messages := make([]string, len(validationErrors.Errors))
				for i, err := range validationErrors.Errors {
					messages[i] = err.Message
				}
				return strings.Join(messages, "; ")
			}
		}
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

type ValidationError struct {
	Field   string
	Message string
	Code    string
}

type ValidationErrors struct {
	Errors []ValidationError
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

func NewValidationFieldError(field, message string, code ErrorCode) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: ValidationErrors{
			Errors: []ValidationError{
				{Field: field, Message: message, Code: string(code)},
			},
		},
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Code:    code,
		Message: message,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:    ErrorTypeUnauthorized,
		Code:    code,
		Message: message,
	}
}

func NewForbiddenError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:    ErrorTypeForbidden,
		Code:    code,
		Message: message,
	}
}

func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:    ErrorTypeConflict,
		Code:    code,
		Message: message,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Code:    "INTERNAL_ERROR",
		Message: message,
		Cause:   cause,
	}
}

var (
	ErrInvalidCredentials = NewUnauthorizedError("Неверный логин или пароль", ErrCodeInvalidCredential)
	ErrUserNotFound       = NewNotFoundError("Пользователь не найден", ErrCodeUserNotFound)
	ErrUsernameTaken      = NewConflictError("Логин уже занят", ErrCodeUsernameTaken)
	ErrUsernameReserved   = NewValidationError("Данный логин зарезервирован системой", ErrCodeUsernameReserved)
	ErrPasswordInUse      = NewConflictError("Этот пароль уже используется другим пользователем", ErrCodePasswordInUse)
	ErrUserNotPending     = NewValidationError("Пользователь не ожидает назначения роли HR", ErrCodeUserNotPending)

	ErrProjectNotFound    = NewNotFoundError("Проект не найден", ErrCodeProjectNotFound)
	ErrProjectNameTaken   = NewConflictError("Проект с таким названием уже существует", ErrCodeProjectNameTaken)
	ErrAssignmentNotFound = NewNotFoundError("Назначение на проект не найдено", ErrCodeAssignmentNotFound)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}
