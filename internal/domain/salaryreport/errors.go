package salaryreport

import "errors"

var (
	ErrReportNotFound      = errors.New("salary report not found")
	ErrReportAlreadyExists = errors.New("salary report already exists for this employee and period")
)
