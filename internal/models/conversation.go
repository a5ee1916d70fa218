package models

import "time"

// Conversation status codes
const (
	ConversationActive   = "A"
	ConversationInactive = "I"
)

// Conversation is a tutoring session between one user and the agent, scoped to
// one course. Status flips to inactive once feedback is submitted. Conversations
// are never deleted in normal operation.
type Conversation struct {
	ID                   uint      `gorm:"primaryKey" json:"-"`
	ConversationID       string    `gorm:"uniqueIndex;size:100;not null" json:"conversation_id"`
	UserID               string    `gorm:"index;size:50;not null" json:"user_id"`
	CourseID             string    `gorm:"index;size:50;not null" json:"course_id"`
	StartTime            time.Time `json:"start_time"`
	EndTime              time.Time `json:"end_time"`
	Status               string    `gorm:"size:1;default:A" json:"status"`
	Semester             string    `gorm:"size:20" json:"semester"`
	ComfortabilityRating *int      `json:"comfortability_rating"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (Conversation) TableName() string { return "conversations" }
