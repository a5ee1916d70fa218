package models

import "time"

// User roles
const (
	RoleStudent    = "ST"
	RoleInstructor = "IN"
	RoleResearcher = "RS"
	RoleAdmin      = "AM"
)

// User represents a student, instructor, researcher or admin.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"uniqueIndex;size:50;not null" json:"user_id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Utorid    string    `gorm:"size:10" json:"utorid"`
	UserRole  string    `gorm:"size:2;default:ST" json:"user_role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
