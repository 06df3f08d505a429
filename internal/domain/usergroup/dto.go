package usergroup

import "github.com/MohamedSalah50/hr-backend-go/internal/pkg/validator"

type CreateUserGroupRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Permissions []string `json:"permissions"`
	UserIDs     []string `json:"userIds,omitempty"`
}

func (r *CreateUserGroupRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserGroupRequest struct {
	ID          string    `json:"-"`
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Permissions *[]string `json:"permissions,omitempty"`
}

func (r *UpdateUserGroupRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GroupUsersRequest struct {
	UserIDs []string `json:"userIds"`
}

func (r *GroupUsersRequest) Validate() error {
	if len(r.UserIDs) == 0 {
		return validator.ValidationErrors{
			{Field: "userIds", Message: "must not be empty"},
		}
	}
	return nil
}

type GroupPermissionsRequest struct {
	Permissions []string `json:"permissions"`
}

func (r *GroupPermissionsRequest) Validate() error {
	if len(r.Permissions) == 0 {
		return validator.ValidationErrors{
			{Field: "permissions", Message: "must not be empty"},
		}
	}
	return nil
}

type UserGroupResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Permissions []string `json:"permissions"`
	UserIDs     []string `json:"userIds"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

type ListUserGroupResponse struct {
	Data  []UserGroupResponse `json:"data"`
	Total int64               `json:"total"`
}
