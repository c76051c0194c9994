package service

import (
	"context"

	"hrms-lite/internal/apperror"
)

// EmployeeDraft is the add-employee form state between submissions.
type EmployeeDraft struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func NewEmployeeDraft() EmployeeDraft {
	return EmployeeDraft{Department: string(DefaultDepartment)}
}

func (d *EmployeeDraft) Reset() {
	*d = NewEmployeeDraft()
}

// Submit creates the employee and resets the draft. A rejected draft keeps
// its values so they can be corrected.
func (d *EmployeeDraft) Submit(ctx context.Context, m Manager) (EmployeeDTO, error) {
	created, err := m.CreateEmployee(ctx, CreateEmployeeInput{
		EmployeeID: d.EmployeeID,
		Name:       d.Name,
		Email:      d.Email,
		Department: d.Department,
	})
	if err != nil {
		return EmployeeDTO{}, err
	}
	d.Reset()
	return created, nil
}

// AttendanceDraft is the mark-attendance form state between submissions.
type AttendanceDraft struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func NewAttendanceDraft() AttendanceDraft {
	return AttendanceDraft{Status: string(DefaultStatus)}
}

func (d *AttendanceDraft) Reset() {
	*d = NewAttendanceDraft()
}

// Submit marks attendance and resets the draft. When the date is rejected
// (missing, malformed or in the future) the draft date is cleared; other
// fields are kept.
func (d *AttendanceDraft) Submit(ctx context.Context, m Manager) (AttendanceDTO, error) {
	created, err := m.MarkAttendance(ctx, MarkAttendanceInput{
		EmployeeID: d.EmployeeID,
		Date:       d.Date,
		Status:     d.Status,
	})
	if err != nil {
		if _, badDate := apperror.FieldErrors(err)["date"]; badDate {
			d.Date = ""
		}
		return AttendanceDTO{}, err
	}
	d.Reset()
	return created, nil
}
