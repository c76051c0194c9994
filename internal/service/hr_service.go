package service

import (
	"context"
	"fmt"
	"time"

	"hrms-lite/internal/apperror"
	"hrms-lite/internal/ids"
	"hrms-lite/internal/models"
)

// HRService is the single owner of the roster and the attendance ledger.
type HRService struct {
	store Store
	now   func() time.Time
}

type Option func(*HRService)

// WithClock replaces time.Now, which decides "today" for attendance dates.
func WithClock(now func() time.Time) Option {
	return func(s *HRService) {
		s.now = now
	}
}

func NewHRService(store Store, opts ...Option) *HRService {
	s := &HRService{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *HRService) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (EmployeeDTO, error) {
	normalized, err := validateEmployee(input)
	if err != nil {
		return EmployeeDTO{}, err
	}

	now := s.now().UTC()
	employee := models.Employee{
		ID:         ids.New(now),
		EmployeeID: normalized.EmployeeID,
		Name:       normalized.Name,
		Email:      normalized.Email,
		Department: normalized.Department,
		CreatedAt:  now,
	}

	if err := s.store.InsertEmployee(ctx, employee); err != nil {
		return EmployeeDTO{}, err
	}

	return employeeToDTO(employee), nil
}

func (s *HRService) ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeDTO, error) {
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}

	filtered := FilterEmployees(employees, filter)
	result := make([]EmployeeDTO, 0, len(filtered))
	for _, employee := range filtered {
		result = append(result, employeeToDTO(employee))
	}
	return result, nil
}

func (s *HRService) GetEmployee(ctx context.Context, id string) (EmployeeDTO, error) {
	employee, err := s.store.GetEmployee(ctx, id)
	if err != nil {
		return EmployeeDTO{}, err
	}
	return employeeToDTO(employee), nil
}

func (s *HRService) DeleteEmployee(ctx context.Context, id string, confirmed bool) (DeleteEmployeeResult, error) {
	if !confirmed {
		return DeleteEmployeeResult{}, apperror.New(apperror.CodeConfirmationRequired, "deleting an employee must be confirmed")
	}

	removed, err := s.store.DeleteEmployee(ctx, id)
	if err != nil {
		return DeleteEmployeeResult{}, err
	}

	return DeleteEmployeeResult{
		ID:                id,
		RemovedAttendance: removed,
	}, nil
}

func employeeToDTO(employee models.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:         employee.ID,
		EmployeeID: employee.EmployeeID,
		Name:       employee.Name,
		Email:      employee.Email,
		Department: employee.Department,
		CreatedAt:  employee.CreatedAt,
	}
}

// employeeLabel renders an employee the way attendance rows show it.
func employeeLabel(employee models.Employee) string {
	return fmt.Sprintf("%s (%s)", employee.Name, employee.EmployeeID)
}
