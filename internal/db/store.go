package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"hrms-lite/internal/apperror"
	"hrms-lite/internal/models"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Store keeps the roster and the attendance ledger in PostgreSQL. Record ids
// are ULIDs, so ordering by id returns insertion order.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InsertEmployee(ctx context.Context, employee models.Employee) error {
	if err := s.db.WithContext(ctx).Create(&employee).Error; err != nil {
		return mapDatabaseError(err, "Employee ID already exists")
	}
	return nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

func (s *Store) GetEmployee(ctx context.Context, id string) (models.Employee, error) {
	var employee models.Employee
	if err := s.db.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Employee{}, apperror.New(apperror.CodeNotFound, "employee not found")
		}
		return models.Employee{}, fmt.Errorf("load employee: %w", err)
	}
	return employee, nil
}

func (s *Store) DeleteEmployee(ctx context.Context, id string) (int, error) {
	var removed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Employee{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("check employee existence: %w", err)
		}
		if count == 0 {
			return apperror.New(apperror.CodeNotFound, "employee not found")
		}

		result := tx.Where("employee_ref = ?", id).Delete(&models.Attendance{})
		if result.Error != nil {
			return mapDatabaseError(result.Error, "")
		}
		removed = result.RowsAffected

		if err := tx.Delete(&models.Employee{}, "id = ?", id).Error; err != nil {
			return mapDatabaseError(err, "")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(removed), nil
}

func (s *Store) InsertAttendance(ctx context.Context, record models.Attendance) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Employee{}).Where("id = ?", record.EmployeeRef).Count(&count).Error; err != nil {
			return fmt.Errorf("check employee existence: %w", err)
		}
		if count == 0 {
			return apperror.New(apperror.CodeNotFound, "employee not found")
		}

		if err := tx.Create(&record).Error; err != nil {
			return mapDatabaseError(err, "")
		}
		return nil
	})
}

func (s *Store) ListAttendance(ctx context.Context) ([]models.Attendance, error) {
	var records []models.Attendance
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return records, nil
}

func (s *Store) DeleteAttendance(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.Attendance{}, "id = ?", id)
	if result.Error != nil {
		return mapDatabaseError(result.Error, "")
	}
	if result.RowsAffected == 0 {
		return apperror.New(apperror.CodeNotFound, "attendance record not found")
	}
	return nil
}

// mapDatabaseError turns PostgreSQL constraint violations into domain errors.
// conflictMessage replaces the generic unique-violation message when set.
func mapDatabaseError(err error, conflictMessage string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if conflictMessage == "" {
				conflictMessage = "resource with the same unique attributes already exists"
			}
			return apperror.New(apperror.CodeConflict, conflictMessage)
		case pgForeignKeyViolation:
			return apperror.New(apperror.CodeValidation, "invalid foreign key reference")
		}
	}
	return err
}
