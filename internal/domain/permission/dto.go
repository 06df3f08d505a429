package permission

import "github.com/MohamedSalah50/hr-backend-go/internal/pkg/validator"

type CreatePermissionRequest struct {
	Name        string  `json:"name"`
	Resource    string  `json:"resource"`
	Action      string  `json:"action"`
	Description *string `json:"description,omitempty"`
}

func (r *CreatePermissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.Resource) {
		errs = append(errs, validator.ValidationError{Field: "resource", Message: "is required"})
	}
	if validator.IsEmpty(r.Action) {
		errs = append(errs, validator.ValidationError{Field: "action", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePermissionRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Resource    *string `json:"resource,omitempty"`
	Action      *string `json:"action,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdatePermissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Resource != nil && validator.IsEmpty(*r.Resource) {
		errs = append(errs, validator.ValidationError{Field: "resource", Message: "must not be empty"})
	}
	if r.Action != nil && validator.IsEmpty(*r.Action) {
		errs = append(errs, validator.ValidationError{Field: "action", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PermissionResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Resource    string  `json:"resource"`
	Action      string  `json:"action"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type ListPermissionResponse struct {
	Data  []PermissionResponse `json:"data"`
	Total int64                `json:"total"`
}
