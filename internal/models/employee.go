package models

import "time"

type Employee struct {
	ID         string       `gorm:"type:char(26);primaryKey"`
	EmployeeID string       `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name       string       `gorm:"type:varchar(200);not null"`
	Email      string       `gorm:"type:varchar(320);not null"`
	Department string       `gorm:"type:varchar(32);not null;index"`
	Attendance []Attendance `gorm:"foreignKey:EmployeeRef;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}
