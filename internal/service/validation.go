package service

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"hrms-lite/internal/apperror"
)

const (
	msgRequired = "Required"

	maxEmployeeIDLength = 64
	minNameLength       = 2
	maxNameLength       = 200
	maxEmailLength      = 320
)

var (
	employeeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// validateEmployee trims the input, checks every field and returns the
// normalized input or a validation error listing each failing field.
func validateEmployee(input CreateEmployeeInput) (CreateEmployeeInput, error) {
	out := CreateEmployeeInput{
		EmployeeID: strings.TrimSpace(input.EmployeeID),
		Name:       strings.TrimSpace(input.Name),
		Email:      strings.ToLower(strings.TrimSpace(input.Email)),
	}
	fields := map[string]string{}

	switch {
	case out.EmployeeID == "":
		fields["employee_id"] = msgRequired
	case utf8.RuneCountInString(out.EmployeeID) > maxEmployeeIDLength:
		fields["employee_id"] = "Employee ID must be at most 64 characters"
	case !employeeIDPattern.MatchString(out.EmployeeID):
		fields["employee_id"] = "Only letters, digits, '-' and '_' are allowed"
	}

	nameLength := utf8.RuneCountInString(out.Name)
	switch {
	case out.Name == "":
		fields["name"] = msgRequired
	case nameLength < minNameLength:
		fields["name"] = "Name must be at least 2 characters"
	case nameLength > maxNameLength:
		fields["name"] = "Name must be at most 200 characters"
	}

	switch {
	case out.Email == "":
		fields["email"] = msgRequired
	case len(out.Email) > maxEmailLength || !emailPattern.MatchString(out.Email):
		fields["email"] = "Invalid email address"
	}

	department, ok := parseDepartment(input.Department)
	if !ok {
		fields["department"] = "Unknown department"
	}
	out.Department = string(department)

	if len(fields) > 0 {
		return CreateEmployeeInput{}, apperror.Validation(fields)
	}
	return out, nil
}

type attendanceFields struct {
	employeeRef string
	date        time.Time
	status      Status
}

// validateAttendance rejects a missing employee, a missing, malformed or
// future date, and an unknown status. today is the current calendar date.
func validateAttendance(input MarkAttendanceInput, today time.Time) (attendanceFields, error) {
	out := attendanceFields{employeeRef: strings.TrimSpace(input.EmployeeID)}
	fields := map[string]string{}

	if out.employeeRef == "" {
		fields["employee_id"] = "Select an employee"
	}

	rawDate := strings.TrimSpace(input.Date)
	if rawDate == "" {
		fields["date"] = msgRequired
	} else if date, err := ParseDate(rawDate); err != nil {
		fields["date"] = "Date must be YYYY-MM-DD"
	} else if date.After(today) {
		fields["date"] = "Date cannot be in the future"
	} else {
		out.date = date
	}

	status, ok := parseStatus(input.Status)
	if !ok {
		fields["status"] = "Status must be Present or Absent"
	}
	out.status = status

	if len(fields) > 0 {
		return attendanceFields{}, apperror.Validation(fields)
	}
	return out, nil
}

func parseDepartment(raw string) (Department, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return DefaultDepartment, true
	}
	for _, department := range Departments {
		if strings.EqualFold(value, string(department)) {
			return department, true
		}
	}
	return "", false
}

func parseStatus(raw string) (Status, bool) {
	value := strings.TrimSpace(raw)
	switch {
	case value == "":
		return DefaultStatus, true
	case strings.EqualFold(value, string(StatusPresent)):
		return StatusPresent, true
	case strings.EqualFold(value, string(StatusAbsent)):
		return StatusAbsent, true
	}
	return "", false
}

// ParseDate parses a YYYY-MM-DD calendar date as midnight UTC.
func ParseDate(raw string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(raw), time.UTC)
}

// calendarDate drops the clock part of t, keeping t's own calendar date.
func calendarDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
