package demo

import (
	"context"
	"testing"
	"time"

	"hrms-lite/internal/memstore"
	"hrms-lite/internal/service"
)

func TestSeed(t *testing.T) {
	now := time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC)
	svc := service.NewHRService(memstore.New(), service.WithClock(func() time.Time { return now }))
	ctx := context.Background()

	if err := Seed(ctx, svc, now); err != nil {
		t.Fatalf("seed: %v", err)
	}

	employees, _ := svc.ListEmployees(ctx, service.EmployeeFilter{})
	if len(employees) != len(demoRoster) {
		t.Fatalf("expected %d employees, got %d", len(demoRoster), len(employees))
	}

	records, _ := svc.ListAttendance(ctx, service.AttendanceFilter{})
	if len(records) != 3*len(demoRoster) {
		t.Fatalf("expected %d records, got %d", 3*len(demoRoster), len(records))
	}

	absent := 0
	for _, record := range records {
		if record.Status == string(service.StatusAbsent) {
			absent++
		}
	}
	if absent != len(records)/3 {
		t.Fatalf("expected every third mark absent, got %d of %d", absent, len(records))
	}
}

func TestSeedTwiceConflicts(t *testing.T) {
	now := time.Now()
	svc := service.NewHRService(memstore.New())
	ctx := context.Background()

	if err := Seed(ctx, svc, now); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := Seed(ctx, svc, now); err == nil {
		t.Fatal("expected second seed to hit duplicate employee ids")
	}
}
