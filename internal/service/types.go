package service

import (
	"context"
	"time"

	"hrms-lite/internal/models"
)

const DateLayout = "2006-01-02"

type Department string

const (
	DepartmentIT        Department = "IT"
	DepartmentHR        Department = "HR"
	DepartmentFinance   Department = "Finance"
	DepartmentMarketing Department = "Marketing"
	DepartmentSales     Department = "Sales"

	DefaultDepartment = DepartmentIT
)

// Departments lists the accepted departments in display order.
var Departments = []Department{
	DepartmentIT,
	DepartmentHR,
	DepartmentFinance,
	DepartmentMarketing,
	DepartmentSales,
}

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"

	DefaultStatus = StatusPresent
)

type CreateEmployeeInput struct {
	EmployeeID string
	Name       string
	Email      string
	Department string
}

type EmployeeFilter struct {
	Search     string
	Department string
}

// MarkAttendanceInput references the employee by its generated ID, not by the
// user-entered employee id. Date is YYYY-MM-DD.
type MarkAttendanceInput struct {
	EmployeeID string
	Date       string
	Status     string
}

type AttendanceFilter struct {
	EmployeeID string
	Date       *time.Time
}

type EmployeeDTO struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

type AttendanceDTO struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Employee   string    `json:"employee"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type AttendanceSummary struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	Name         string `json:"name"`
	Present      int    `json:"present"`
	Total        int    `json:"total"`
	Percentage   int    `json:"percentage"`
}

type DeleteEmployeeResult struct {
	ID                string `json:"id"`
	RemovedAttendance int    `json:"removed_attendance"`
}

type Manager interface {
	CreateEmployee(ctx context.Context, input CreateEmployeeInput) (EmployeeDTO, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeDTO, error)
	GetEmployee(ctx context.Context, id string) (EmployeeDTO, error)
	DeleteEmployee(ctx context.Context, id string, confirmed bool) (DeleteEmployeeResult, error)
	MarkAttendance(ctx context.Context, input MarkAttendanceInput) (AttendanceDTO, error)
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceDTO, error)
	SummarizeAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceSummary, error)
	DeleteAttendance(ctx context.Context, id string, confirmed bool) error
}

// Store owns the roster and the attendance ledger. List methods return
// records in insertion order. Implementations report missing records with
// apperror.CodeNotFound and a taken employee id with apperror.CodeConflict.
type Store interface {
	InsertEmployee(ctx context.Context, employee models.Employee) error
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployee(ctx context.Context, id string) (models.Employee, error)
	// DeleteEmployee removes the employee and its attendance records and
	// returns how many attendance records went with it.
	DeleteEmployee(ctx context.Context, id string) (int, error)
	InsertAttendance(ctx context.Context, record models.Attendance) error
	ListAttendance(ctx context.Context) ([]models.Attendance, error)
	DeleteAttendance(ctx context.Context, id string) error
}
