package services

import (
	"errors"
	"fmt"

	"github.com/quickta/backend/internal/models"
	"gorm.io/gorm"
)

// FeedbackService records end-of-conversation ratings. Submitting feedback
// flips the conversation to inactive. Only one feedback per conversation is
// expected, but the store layer does not enforce uniqueness.
type FeedbackService struct {
	db *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

// Create stores feedback for an existing conversation and marks the
// conversation inactive.
func (s *FeedbackService) Create(conversationID string, rating int, msg string) (*models.Feedback, error) {
	var conv models.Conversation
	if err := s.db.Where("conversation_id = ?", conversationID).First(&conv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	feedback := models.Feedback{
		ConversationID: conversationID,
		Rating:         rating,
		FeedbackMsg:    msg,
	}
	if err := s.db.Create(&feedback).Error; err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}

	if err := s.db.Model(&models.Conversation{}).
		Where("conversation_id = ?", conversationID).
		Update("status", models.ConversationInactive).Error; err != nil {
		return nil, fmt.Errorf("deactivate conversation: %w", err)
	}

	return &feedback, nil
}

// Get returns the feedback for a conversation.
func (s *FeedbackService) Get(conversationID string) (*models.Feedback, error) {
	var feedback models.Feedback
	if err := s.db.Where("conversation_id = ?", conversationID).First(&feedback).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("load feedback: %w", err)
	}
	return &feedback, nil
}

// ListAll returns every feedback record.
func (s *FeedbackService) ListAll() ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	if err := s.db.Find(&feedbacks).Error; err != nil {
		return nil, fmt.Errorf("load feedbacks: %w", err)
	}
	return feedbacks, nil
}
