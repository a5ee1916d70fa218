package models

import "time"

// CompletionLog records each completion round-trip: the full prompt sent to the
// external service and the reply that came back, for auditing and replay.
type CompletionLog struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ConversationID string    `gorm:"index;size:100;not null" json:"conversation_id"`
	CourseID       string    `gorm:"index;size:50" json:"course_id"`
	Engine         string    `gorm:"size:100" json:"engine"`
	Prompt         string    `gorm:"type:text" json:"prompt"`
	Reply          string    `gorm:"type:text" json:"reply"`
	LatencyMs      int64     `json:"latency_ms"`
	Success        bool      `json:"success"`
	ErrorMessage   string    `gorm:"size:500" json:"error_message,omitempty"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}

func (CompletionLog) TableName() string { return "completion_logs" }
