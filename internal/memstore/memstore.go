// Package memstore keeps the roster and attendance ledger in process memory.
// Nothing survives a restart.
package memstore

import (
	"context"
	"sync"

	"hrms-lite/internal/apperror"
	"hrms-lite/internal/models"
)

type Store struct {
	mu         sync.RWMutex
	employees  []models.Employee
	attendance []models.Attendance
}

func New() *Store {
	return &Store{}
}

func (s *Store) InsertEmployee(_ context.Context, employee models.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.employees {
		if existing.EmployeeID == employee.EmployeeID {
			return apperror.New(apperror.CodeConflict, "Employee ID already exists")
		}
	}
	s.employees = append(s.employees, employee)
	return nil
}

func (s *Store) ListEmployees(_ context.Context) ([]models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Employee, len(s.employees))
	copy(out, s.employees)
	return out, nil
}

func (s *Store) GetEmployee(_ context.Context, id string) (models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.employeeIndex(id); i >= 0 {
		return s.employees[i], nil
	}
	return models.Employee{}, apperror.New(apperror.CodeNotFound, "employee not found")
}

func (s *Store) DeleteEmployee(_ context.Context, id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.employeeIndex(id)
	if i < 0 {
		return 0, apperror.New(apperror.CodeNotFound, "employee not found")
	}

	employees := make([]models.Employee, 0, len(s.employees)-1)
	employees = append(employees, s.employees[:i]...)
	employees = append(employees, s.employees[i+1:]...)

	kept := make([]models.Attendance, 0, len(s.attendance))
	for _, record := range s.attendance {
		if record.EmployeeRef != id {
			kept = append(kept, record)
		}
	}
	removed := len(s.attendance) - len(kept)

	s.employees = employees
	s.attendance = kept
	return removed, nil
}

func (s *Store) InsertAttendance(_ context.Context, record models.Attendance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.employeeIndex(record.EmployeeRef) < 0 {
		return apperror.New(apperror.CodeNotFound, "employee not found")
	}
	s.attendance = append(s.attendance, record)
	return nil
}

func (s *Store) ListAttendance(_ context.Context) ([]models.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Attendance, len(s.attendance))
	copy(out, s.attendance)
	return out, nil
}

func (s *Store) DeleteAttendance(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, record := range s.attendance {
		if record.ID != id {
			continue
		}
		kept := make([]models.Attendance, 0, len(s.attendance)-1)
		kept = append(kept, s.attendance[:i]...)
		kept = append(kept, s.attendance[i+1:]...)
		s.attendance = kept
		return nil
	}
	return apperror.New(apperror.CodeNotFound, "attendance record not found")
}

// employeeIndex must be called with mu held.
func (s *Store) employeeIndex(id string) int {
	for i, employee := range s.employees {
		if employee.ID == id {
			return i
		}
	}
	return -1
}
