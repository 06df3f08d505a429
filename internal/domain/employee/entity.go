package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	FullName     string
	NationalID   string
	Phone        string
	Address      string
	BirthDate    time.Time
	Gender       Gender
	Nationality  string
	ContractDate time.Time
	BaseSalary   decimal.Decimal
	CheckInTime  string // "HH:MM" scheduled check-in
	CheckOutTime string // "HH:MM" scheduled check-out
	DepartmentID string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time

	// Joined fields
	DepartmentName *string
}

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)
