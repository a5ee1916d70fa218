package models

import "time"

// Chatlog is one utterance (user or agent) within a conversation. Records are
// append-only: there is no update or delete path, corrections are modeled as
// new turns. Delta is the elapsed time since the previous turn, or since the
// conversation start for the first turn.
type Chatlog struct {
	ID             uint          `gorm:"primaryKey" json:"-"`
	ChatlogID      string        `gorm:"uniqueIndex;size:100;not null" json:"chatlog_id"`
	ConversationID string        `gorm:"index;size:100;not null" json:"conversation_id"`
	Time           time.Time     `gorm:"index" json:"time"`
	IsUser         bool          `json:"is_user"`
	Chatlog        string        `gorm:"type:text" json:"chatlog"`
	Delta          time.Duration `json:"delta"`
	CreatedAt      time.Time     `json:"created_at"`
}

func (Chatlog) TableName() string { return "chatlogs" }
