package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeNotActive  = errors.New("employee is not active")
	ErrNationalIDExists   = errors.New("national ID already registered")
	ErrDepartmentNotFound = errors.New("department not found")
)
