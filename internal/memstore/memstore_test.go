package memstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"hrms-lite/internal/apperror"
	"hrms-lite/internal/models"
)

func TestInsertEmployeeRejectsDuplicateEmployeeID(t *testing.T) {
	store := New()
	ctx := context.Background()

	if err := store.InsertEmployee(ctx, models.Employee{ID: "1", EmployeeID: "EMP001"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	err := store.InsertEmployee(ctx, models.Employee{ID: "2", EmployeeID: "EMP001"})
	if apperror.GetCode(err) != apperror.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}

	employees, _ := store.ListEmployees(ctx)
	if len(employees) != 1 {
		t.Fatalf("expected 1 employee, got %d", len(employees))
	}
}

func TestListReturnsCopies(t *testing.T) {
	store := New()
	ctx := context.Background()
	_ = store.InsertEmployee(ctx, models.Employee{ID: "1", EmployeeID: "EMP001", Name: "John"})

	employees, _ := store.ListEmployees(ctx)
	employees[0].Name = "Changed"

	again, _ := store.ListEmployees(ctx)
	if again[0].Name != "John" {
		t.Fatalf("store state was aliased: %+v", again[0])
	}
}

func TestDeleteEmployeeCascades(t *testing.T) {
	store := New()
	ctx := context.Background()
	_ = store.InsertEmployee(ctx, models.Employee{ID: "1", EmployeeID: "EMP001"})
	_ = store.InsertEmployee(ctx, models.Employee{ID: "2", EmployeeID: "EMP002"})
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	for i, ref := range []string{"1", "2", "1"} {
		record := models.Attendance{ID: string(rune('a' + i)), EmployeeRef: ref, Date: day, Status: "Present"}
		if err := store.InsertAttendance(ctx, record); err != nil {
			t.Fatalf("insert attendance: %v", err)
		}
	}

	removed, err := store.DeleteEmployee(ctx, "1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}

	records, _ := store.ListAttendance(ctx)
	if len(records) != 1 || records[0].EmployeeRef != "2" {
		t.Fatalf("expected orphan-free ledger, got %+v", records)
	}
	employees, _ := store.ListEmployees(ctx)
	if len(employees) != 1 || employees[0].ID != "2" {
		t.Fatalf("unexpected roster %+v", employees)
	}
}

func TestInsertAttendanceRequiresEmployee(t *testing.T) {
	store := New()

	err := store.InsertAttendance(context.Background(), models.Attendance{ID: "a", EmployeeRef: "missing"})

	if apperror.GetCode(err) != apperror.CodeNotFound {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestDeleteAttendance(t *testing.T) {
	store := New()
	ctx := context.Background()
	_ = store.InsertEmployee(ctx, models.Employee{ID: "1", EmployeeID: "EMP001"})
	_ = store.InsertAttendance(ctx, models.Attendance{ID: "a", EmployeeRef: "1"})
	_ = store.InsertAttendance(ctx, models.Attendance{ID: "b", EmployeeRef: "1"})

	if err := store.DeleteAttendance(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.DeleteAttendance(ctx, "a"); apperror.GetCode(err) != apperror.CodeNotFound {
		t.Fatalf("expected not_found, got %v", err)
	}

	records, _ := store.ListAttendance(ctx)
	if len(records) != 1 || records[0].ID != "b" {
		t.Fatalf("unexpected ledger %+v", records)
	}
}

func TestConcurrentInsertsKeepEmployeeIDsUnique(t *testing.T) {
	store := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.InsertEmployee(ctx, models.Employee{ID: string(rune('A' + i)), EmployeeID: "EMP001"})
		}(i)
	}
	wg.Wait()

	employees, _ := store.ListEmployees(ctx)
	if len(employees) != 1 {
		t.Fatalf("expected exactly one winner, got %d", len(employees))
	}
}
