package service

import (
	"math"
	"strings"

	"golang.org/x/text/cases"

	"hrms-lite/internal/models"
)

// FilterEmployees keeps employees whose name, employee id, email or
// department contains filter.Search (case-folded), and whose department
// equals filter.Department when set. The input slice is not modified.
func FilterEmployees(employees []models.Employee, filter EmployeeFilter) []models.Employee {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(filter.Search))
	department := strings.TrimSpace(filter.Department)

	out := make([]models.Employee, 0, len(employees))
	for _, employee := range employees {
		if department != "" && employee.Department != department {
			continue
		}
		if needle != "" && !matchesAny(fold, needle, employee.Name, employee.EmployeeID, employee.Email, employee.Department) {
			continue
		}
		out = append(out, employee)
	}
	return out
}

func matchesAny(fold cases.Caser, needle string, values ...string) bool {
	for _, value := range values {
		if strings.Contains(fold.String(value), needle) {
			return true
		}
	}
	return false
}

// FilterAttendance applies the employee and date predicates together.
// An empty filter keeps every record.
func FilterAttendance(records []models.Attendance, filter AttendanceFilter) []models.Attendance {
	var day string
	if filter.Date != nil {
		day = filter.Date.Format(DateLayout)
	}

	out := make([]models.Attendance, 0, len(records))
	for _, record := range records {
		if filter.EmployeeID != "" && record.EmployeeRef != filter.EmployeeID {
			continue
		}
		if day != "" && record.Date.Format(DateLayout) != day {
			continue
		}
		out = append(out, record)
	}
	return out
}

// Summarize counts present and total records per employee, in roster order.
// Employees without records get a zero row.
func Summarize(employees []models.Employee, records []models.Attendance) []AttendanceSummary {
	type tally struct{ present, total int }
	counts := make(map[string]*tally, len(employees))
	for _, record := range records {
		t, ok := counts[record.EmployeeRef]
		if !ok {
			t = &tally{}
			counts[record.EmployeeRef] = t
		}
		t.total++
		if record.Status == string(StatusPresent) {
			t.present++
		}
	}

	out := make([]AttendanceSummary, 0, len(employees))
	for _, employee := range employees {
		row := AttendanceSummary{
			EmployeeID:   employee.ID,
			EmployeeCode: employee.EmployeeID,
			Name:         employee.Name,
		}
		if t, ok := counts[employee.ID]; ok {
			row.Present = t.present
			row.Total = t.total
		}
		row.Percentage = PresentPercentage(row.Present, row.Total)
		out = append(out, row)
	}
	return out
}

// PresentPercentage is round(present/total*100), or 0 without records.
func PresentPercentage(present, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(present) / float64(total) * 100))
}
