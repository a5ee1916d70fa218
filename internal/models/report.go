package models

import "time"

// Report is a user-filed issue about a conversation. Multiple reports per
// conversation are allowed.
type Report struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	ConversationID string    `gorm:"index;size:100;not null" json:"conversation_id"`
	ReportMsg      string    `gorm:"type:text;not null" json:"report_msg"`
	Time           time.Time `json:"time"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Report) TableName() string { return "reports" }
