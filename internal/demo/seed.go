// Package demo seeds a fresh roster with mock data.
package demo

import (
	"context"
	"fmt"
	"time"

	"hrms-lite/internal/service"
)

var demoRoster = []service.CreateEmployeeInput{
	{EmployeeID: "EMP001", Name: "John Doe", Email: "john.doe@company.com", Department: "IT"},
	{EmployeeID: "EMP002", Name: "Jane Smith", Email: "jane.smith@company.com", Department: "HR"},
	{EmployeeID: "EMP003", Name: "Mike Johnson", Email: "mike.johnson@company.com", Department: "Finance"},
	{EmployeeID: "EMP004", Name: "Sarah Williams", Email: "sarah.williams@company.com", Department: "Marketing"},
}

// Seed loads the demo roster and the last three days of attendance through
// m, so the usual validation applies. Every third mark is Absent.
func Seed(ctx context.Context, m service.Manager, now time.Time) error {
	created := make([]service.EmployeeDTO, 0, len(demoRoster))
	for _, input := range demoRoster {
		employee, err := m.CreateEmployee(ctx, input)
		if err != nil {
			return fmt.Errorf("seed employee %s: %w", input.EmployeeID, err)
		}
		created = append(created, employee)
	}

	mark := 0
	for day := 2; day >= 0; day-- {
		date := now.UTC().AddDate(0, 0, -day).Format(service.DateLayout)
		for _, employee := range created {
			status := service.StatusPresent
			if mark%3 == 2 {
				status = service.StatusAbsent
			}
			mark++

			if _, err := m.MarkAttendance(ctx, service.MarkAttendanceInput{
				EmployeeID: employee.ID,
				Date:       date,
				Status:     string(status),
			}); err != nil {
				return fmt.Errorf("seed attendance for %s on %s: %w", employee.EmployeeID, date, err)
			}
		}
	}
	return nil
}
