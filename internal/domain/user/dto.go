package user

import "github.com/MohamedSalah50/hr-backend-go/internal/pkg/validator"

var validRoles = []string{string(RoleSuperAdmin), string(RoleAdmin), string(RoleUser)}

type CreateUserRequest struct {
	FullName    string  `json:"fullName"`
	UserName    string  `json:"userName"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Role        *string `json:"role,omitempty"`
	UserGroupID *string `json:"userGroupId,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "fullName", Message: "is required"})
	}
	if !validator.IsValidUsername(r.UserName) {
		errs = append(errs, validator.ValidationError{Field: "userName", Message: "must be 3-30 characters (letters, digits, dot, underscore)"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, validRoles) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "is not a known role"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	ID          string  `json:"-"`
	FullName    *string `json:"fullName,omitempty"`
	UserName    *string `json:"userName,omitempty"`
	Email       *string `json:"email,omitempty"`
	Password    *string `json:"password,omitempty"`
	Role        *string `json:"role,omitempty"`
	UserGroupID *string `json:"userGroupId,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`

	// Set by the service after hashing Password; never read from the body.
	PasswordHash *string `json:"-"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "fullName", Message: "must not be empty"})
	}
	if r.UserName != nil && !validator.IsValidUsername(*r.UserName) {
		errs = append(errs, validator.ValidationError{Field: "userName", Message: "must be 3-30 characters (letters, digits, dot, underscore)"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, validRoles) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "is not a known role"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UserFilter narrows List. Search matches name, username, and email;
// GroupID restricts to members of one user group.
type UserFilter struct {
	Search  string
	GroupID string
}

type UserResponse struct {
	ID          string  `json:"id"`
	FullName    string  `json:"fullName"`
	UserName    string  `json:"userName"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	UserGroupID *string `json:"userGroupId,omitempty"`
	IsActive    bool    `json:"isActive"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type ListUserResponse struct {
	Data  []UserResponse `json:"data"`
	Total int64          `json:"total"`
}

type ToggleUserStatusResponse struct {
	ID       string `json:"id"`
	IsActive bool   `json:"isActive"`
}
