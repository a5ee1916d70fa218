package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/quickta/backend/internal/models"
	"gorm.io/gorm"
)

// TranscriptService reconstructs ordered transcripts and inter-turn timing
// deltas for a conversation.
type TranscriptService struct {
	db *gorm.DB
}

func NewTranscriptService(db *gorm.DB) *TranscriptService {
	return &TranscriptService{db: db}
}

// Assemble returns every turn of the conversation in strictly ascending
// timestamp order.
func (s *TranscriptService) Assemble(conversationID string) ([]models.Chatlog, error) {
	if _, err := s.conversation(conversationID); err != nil {
		return nil, err
	}

	var chatlogs []models.Chatlog
	if err := s.db.Where("conversation_id = ?", conversationID).
		Order("time ASC").Find(&chatlogs).Error; err != nil {
		return nil, fmt.Errorf("load chatlogs: %w", err)
	}
	return chatlogs, nil
}

// ComputeDelta returns the duration between candidate and the latest existing
// turn, or between candidate and the conversation's start time when the
// conversation has no turns yet.
func (s *TranscriptService) ComputeDelta(conversationID string, candidate time.Time) (time.Duration, error) {
	conv, err := s.conversation(conversationID)
	if err != nil {
		return 0, err
	}

	var last models.Chatlog
	err = s.db.Where("conversation_id = ?", conversationID).
		Order("time DESC").First(&last).Error
	var delta time.Duration
	switch {
	case err == nil:
		delta = candidate.Sub(last.Time)
	case errors.Is(err, gorm.ErrRecordNotFound):
		delta = candidate.Sub(conv.StartTime)
	default:
		return 0, fmt.Errorf("load latest chatlog: %w", err)
	}

	// Caller-supplied timestamps may predate the latest turn.
	if delta < 0 {
		delta = 0
	}
	return delta, nil
}

// Render flattens a transcript into alternating speaker blocks:
//
//	\n\nHuman: <body>
//	\nAI: <body>
//
// An empty transcript renders as the empty string.
func (s *TranscriptService) Render(chatlogs []models.Chatlog) string {
	var out string
	for _, log := range chatlogs {
		if log.IsUser {
			out += restartSequence + log.Chatlog
		} else {
			out += startSequence + log.Chatlog
		}
	}
	return out
}

func (s *TranscriptService) conversation(conversationID string) (*models.Conversation, error) {
	var conv models.Conversation
	if err := s.db.Where("conversation_id = ?", conversationID).First(&conv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("load conversation: %w", err)
	}
	return &conv, nil
}
