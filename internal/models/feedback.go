package models

import "time"

// Feedback ratings (closed enumeration)
const (
	RatingPoor           = 1
	RatingUnsatisfactory = 2
	RatingAverage        = 3
	RatingGood           = 4
	RatingExcellent      = 5
)

// Feedback is a user's rating of a finished conversation. At most one per
// conversation in intended use; the store layer does not enforce uniqueness.
type Feedback struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	ConversationID string    `gorm:"index;size:100;not null" json:"conversation_id"`
	Rating         int       `gorm:"not null" json:"rating"`
	FeedbackMsg    string    `gorm:"type:text" json:"feedback_msg"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Feedback) TableName() string { return "feedbacks" }
