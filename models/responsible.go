package models

import (
	"time"

	"gorm.io/gorm"
)

// Responsible is an internal staff member. Bookings reference it by name
// only, so renames silently orphan historical records.
type Responsible struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Name  string `gorm:"size:255" json:"name"`
	Email string `gorm:"size:255" json:"email"`
	Phone string `gorm:"size:50" json:"phone"`
	Role  string `gorm:"size:255" json:"role"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
