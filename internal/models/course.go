package models

import "time"

// Course represents one offering of a course in a given semester. The set of
// users authorized to access a course (the roster) is kept in the roster store,
// not in a relational join table.
type Course struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	CourseID   string    `gorm:"uniqueIndex;size:50;not null" json:"course_id"`
	CourseCode string    `gorm:"size:9;not null" json:"course_code"`
	Semester   string    `gorm:"size:10" json:"semester"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Course) TableName() string { return "courses" }
