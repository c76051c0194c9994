// Package report renders the attendance ledger as an XLSX workbook.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"hrms-lite/internal/service"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	AttendanceSheet = "Attendance"
	SummarySheet    = "Summary"
)

// AttendanceWorkbook builds a workbook with one row per record on the
// Attendance sheet and one row per employee on the Summary sheet. The caller
// closes the returned file.
func AttendanceWorkbook(records []service.AttendanceDTO, summary []service.AttendanceSummary) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", AttendanceSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("add summary sheet: %w", err)
	}

	rows := make([][]interface{}, 0, len(records)+1)
	rows = append(rows, []interface{}{"Employee", "Date", "Status"})
	for _, record := range records {
		rows = append(rows, []interface{}{record.Employee, record.Date, record.Status})
	}
	if err := writeRows(f, AttendanceSheet, rows); err != nil {
		f.Close()
		return nil, err
	}

	rows = make([][]interface{}, 0, len(summary)+1)
	rows = append(rows, []interface{}{"Employee ID", "Name", "Present", "Total", "Percentage"})
	for _, row := range summary {
		rows = append(rows, []interface{}{row.EmployeeCode, row.Name, row.Present, row.Total, row.Percentage})
	}
	if err := writeRows(f, SummarySheet, rows); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

// WriteAttendance streams the workbook built by AttendanceWorkbook to w.
func WriteAttendance(w io.Writer, records []service.AttendanceDTO, summary []service.AttendanceSummary) error {
	f, err := AttendanceWorkbook(records, summary)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
