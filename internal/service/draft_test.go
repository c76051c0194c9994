package service

import (
	"context"
	"testing"
)

func TestAttendanceDraftFutureDateIsCleared(t *testing.T) {
	s := newTestService()
	john := mustCreateEmployee(t, s, "EMP001", "John Doe")

	draft := AttendanceDraft{EmployeeID: john.ID, Date: "2026-03-06", Status: "Absent"}
	if _, err := draft.Submit(context.Background(), s); err == nil {
		t.Fatal("expected future date to be rejected")
	}

	if draft.Date != "" {
		t.Fatalf("expected cleared date, got %q", draft.Date)
	}
	if draft.EmployeeID != john.ID || draft.Status != "Absent" {
		t.Fatalf("expected other fields kept, got %+v", draft)
	}

	records, _ := s.ListAttendance(context.Background(), AttendanceFilter{})
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestAttendanceDraftResetsAfterSubmit(t *testing.T) {
	s := newTestService()
	john := mustCreateEmployee(t, s, "EMP001", "John Doe")

	draft := AttendanceDraft{EmployeeID: john.ID, Date: "2026-03-05", Status: "Absent"}
	if _, err := draft.Submit(context.Background(), s); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if draft != NewAttendanceDraft() {
		t.Fatalf("expected reset draft, got %+v", draft)
	}
}

func TestEmployeeDraftKeepsValuesOnDuplicate(t *testing.T) {
	s := newTestService()
	mustCreateEmployee(t, s, "EMP001", "John Doe")

	draft := EmployeeDraft{EmployeeID: "EMP001", Name: "Jane Smith", Email: "jane@company.com", Department: "HR"}
	if _, err := draft.Submit(context.Background(), s); err == nil {
		t.Fatal("expected duplicate to be rejected")
	}

	if draft.EmployeeID != "EMP001" || draft.Name != "Jane Smith" || draft.Department != "HR" {
		t.Fatalf("expected draft untouched, got %+v", draft)
	}
}

func TestEmployeeDraftResetsAfterSubmit(t *testing.T) {
	s := newTestService()

	draft := EmployeeDraft{EmployeeID: "EMP001", Name: "John Doe", Email: "john@company.com", Department: "Sales"}
	created, err := draft.Submit(context.Background(), s)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if created.Department != "Sales" {
		t.Fatalf("unexpected department %s", created.Department)
	}
	if draft != NewEmployeeDraft() || draft.Department != "IT" {
		t.Fatalf("expected reset draft with IT department, got %+v", draft)
	}
}
