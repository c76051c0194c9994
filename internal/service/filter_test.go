package service

import (
	"testing"
	"time"

	"hrms-lite/internal/models"
)

func TestPresentPercentage(t *testing.T) {
	cases := []struct {
		present, total, want int
	}{
		{3, 4, 75},
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{5, 5, 100},
	}
	for _, tc := range cases {
		if got := PresentPercentage(tc.present, tc.total); got != tc.want {
			t.Fatalf("PresentPercentage(%d, %d) = %d, want %d", tc.present, tc.total, got, tc.want)
		}
	}
}

func TestFilterEmployeesDoesNotMutateInput(t *testing.T) {
	employees := []models.Employee{
		{ID: "1", EmployeeID: "EMP001", Name: "Jürgen Weiß", Email: "jg@company.com", Department: "IT"},
		{ID: "2", EmployeeID: "EMP002", Name: "Jane Smith", Email: "jane@company.com", Department: "HR"},
	}

	out := FilterEmployees(employees, EmployeeFilter{Search: "JÜRGEN"})

	if len(out) != 1 || out[0].ID != "1" {
		t.Fatalf("expected case-folded match on Jürgen, got %+v", out)
	}
	if len(employees) != 2 || employees[1].ID != "2" {
		t.Fatalf("input was modified: %+v", employees)
	}
}

func TestFilterAttendanceByDate(t *testing.T) {
	day := func(s string) time.Time {
		d, err := ParseDate(s)
		if err != nil {
			t.Fatalf("parse %s: %v", s, err)
		}
		return d
	}
	records := []models.Attendance{
		{ID: "a", EmployeeRef: "1", Date: day("2026-03-01"), Status: "Present"},
		{ID: "b", EmployeeRef: "2", Date: day("2026-03-02"), Status: "Absent"},
		{ID: "c", EmployeeRef: "1", Date: day("2026-03-02"), Status: "Present"},
	}

	target := day("2026-03-02")
	out := FilterAttendance(records, AttendanceFilter{Date: &target})

	if len(out) != 2 || out[0].ID != "b" || out[1].ID != "c" {
		t.Fatalf("unexpected filter result %+v", out)
	}
}
