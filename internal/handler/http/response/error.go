package response

import (
	"errors"
	"net/http"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/attendance"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/auth"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/department"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/employee"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/holiday"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/permission"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/salaryreport"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/setting"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/user"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/usergroup"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenInvalid):
		Unauthorized(w, "Refresh token invalid")
	case errors.Is(err, auth.ErrUserNotActive):
		Forbidden(w, "User account is deactivated")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserNameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Permission domain errors
	case errors.Is(err, permission.ErrPermissionNotFound):
		NotFound(w, "Permission not found")
	case errors.Is(err, permission.ErrPermissionExists):
		Conflict(w, "Permission already exists")

	// User group domain errors
	case errors.Is(err, usergroup.ErrUserGroupNotFound):
		NotFound(w, "User group not found")
	case errors.Is(err, usergroup.ErrUserGroupNameExists):
		Conflict(w, "User group name already exists")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNotActive):
		BadRequest(w, "Employee is not active", nil)
	case errors.Is(err, employee.ErrNationalIDExists):
		Conflict(w, "National ID already registered")
	case errors.Is(err, employee.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceExists):
		Conflict(w, "Attendance record already exists for this employee and date")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Official holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Official holiday already exists for this date")

	// Settings domain errors
	case errors.Is(err, setting.ErrSettingNotFound):
		NotFound(w, "Setting not found")

	// Salary report domain errors
	case errors.Is(err, salaryreport.ErrReportNotFound):
		NotFound(w, "Salary report not found")
	case errors.Is(err, salaryreport.ErrReportAlreadyExists):
		Conflict(w, "Salary report already exists for this employee and period")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
