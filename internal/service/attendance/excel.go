package attendance

import (
	"fmt"
	"io"
	"strings"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/attendance"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Attendance"

var exportHeaders = []string{
	"Employee ID", "Employee Name", "Department", "Date",
	"Check In", "Check Out", "Status", "Late Hours", "Overtime Hours", "Notes",
}

// Import resolves columns by header name, so both the bare template
// (Employee ID, Date, Check In, Check Out, Status, Notes) and a previously
// exported workbook are accepted.
var importHeaders = []string{"Employee ID", "Date", "Check In", "Check Out", "Status", "Notes"}

func writeWorkbook(records []attendance.Attendance, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}
	last, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	f.SetCellStyle(sheetName, "A1", last, headerStyle)

	for i, att := range records {
		row := i + 2
		values := []any{
			att.EmployeeID,
			derefOr(att.EmployeeName, ""),
			derefOr(att.DepartmentName, ""),
			att.Date.Format("2006-01-02"),
			derefOr(att.CheckIn, ""),
			derefOr(att.CheckOut, ""),
			string(att.Status),
			att.LateHours.InexactFloat64(),
			att.OvertimeHours.InexactFloat64(),
			derefOr(att.Notes, ""),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	return f.Write(w)
}

type importRow struct {
	Number  int
	Request attendance.CreateAttendanceRequest
}

func readWorkbook(r io.Reader) ([]importRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("workbook has no data rows")
	}

	columns := make(map[string]int, len(rows[0]))
	for col, header := range rows[0] {
		columns[strings.TrimSpace(header)] = col
	}
	for _, header := range []string{"Employee ID", "Date"} {
		if _, ok := columns[header]; !ok {
			return nil, fmt.Errorf("workbook is missing the %q column", header)
		}
	}

	cell := func(row []string, header string) string {
		col, ok := columns[header]
		if !ok || col >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[col])
	}

	var result []importRow
	for i, row := range rows[1:] {
		req := attendance.CreateAttendanceRequest{
			EmployeeID: cell(row, "Employee ID"),
			Date:       cell(row, "Date"),
			CheckIn:    optional(cell(row, "Check In")),
			CheckOut:   optional(cell(row, "Check Out")),
			Status:     optional(cell(row, "Status")),
			Notes:      optional(cell(row, "Notes")),
		}
		result = append(result, importRow{Number: i + 2, Request: req})
	}

	return result, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
