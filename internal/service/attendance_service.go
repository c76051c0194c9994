package service

import (
	"context"
	"fmt"

	"hrms-lite/internal/apperror"
	"hrms-lite/internal/ids"
	"hrms-lite/internal/models"
)

const unknownEmployee = "Unknown"

func (s *HRService) MarkAttendance(ctx context.Context, input MarkAttendanceInput) (AttendanceDTO, error) {
	now := s.now()
	fields, err := validateAttendance(input, calendarDate(now.UTC()))
	if err != nil {
		return AttendanceDTO{}, err
	}

	employee, err := s.store.GetEmployee(ctx, fields.employeeRef)
	if err != nil {
		return AttendanceDTO{}, err
	}

	record := models.Attendance{
		ID:          ids.New(now),
		EmployeeRef: employee.ID,
		Date:        fields.date,
		Status:      string(fields.status),
		CreatedAt:   now.UTC(),
	}

	if err := s.store.InsertAttendance(ctx, record); err != nil {
		return AttendanceDTO{}, err
	}

	return attendanceToDTO(record, employeeLabel(employee)), nil
}

func (s *HRService) ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceDTO, error) {
	employees, records, err := s.loadLedger(ctx)
	if err != nil {
		return nil, err
	}

	labels := make(map[string]string, len(employees))
	for _, employee := range employees {
		labels[employee.ID] = employeeLabel(employee)
	}

	filtered := FilterAttendance(records, filter)
	result := make([]AttendanceDTO, 0, len(filtered))
	for _, record := range filtered {
		label, ok := labels[record.EmployeeRef]
		if !ok {
			label = unknownEmployee
		}
		result = append(result, attendanceToDTO(record, label))
	}
	return result, nil
}

func (s *HRService) SummarizeAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceSummary, error) {
	employees, records, err := s.loadLedger(ctx)
	if err != nil {
		return nil, err
	}

	if filter.EmployeeID != "" {
		employees = selectEmployee(employees, filter.EmployeeID)
	}

	return Summarize(employees, FilterAttendance(records, filter)), nil
}

func (s *HRService) DeleteAttendance(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return apperror.New(apperror.CodeConfirmationRequired, "deleting an attendance record must be confirmed")
	}
	return s.store.DeleteAttendance(ctx, id)
}

func (s *HRService) loadLedger(ctx context.Context) ([]models.Employee, []models.Attendance, error) {
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load employees: %w", err)
	}
	records, err := s.store.ListAttendance(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load attendance: %w", err)
	}
	return employees, records, nil
}

func selectEmployee(employees []models.Employee, id string) []models.Employee {
	for _, employee := range employees {
		if employee.ID == id {
			return []models.Employee{employee}
		}
	}
	return []models.Employee{}
}

func attendanceToDTO(record models.Attendance, label string) AttendanceDTO {
	return AttendanceDTO{
		ID:         record.ID,
		EmployeeID: record.EmployeeRef,
		Employee:   label,
		Date:       record.Date.Format(DateLayout),
		Status:     record.Status,
		CreatedAt:  record.CreatedAt,
	}
}
