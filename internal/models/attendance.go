package models

import "time"

type Attendance struct {
	ID          string    `gorm:"type:char(26);primaryKey"`
	EmployeeRef string    `gorm:"type:char(26);not null;index"`
	Date        time.Time `gorm:"type:date;not null;index"`
	Status      string    `gorm:"type:varchar(16);not null"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Attendance) TableName() string {
	return "attendance"
}
