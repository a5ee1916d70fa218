package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/quickta/backend/internal/models"
	"gorm.io/gorm"
)

// ReportService records user-filed issues about a conversation.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// Create files a report against an existing conversation.
func (s *ReportService) Create(conversationID, msg string) (*models.Report, error) {
	var conv models.Conversation
	if err := s.db.Where("conversation_id = ?", conversationID).First(&conv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	report := models.Report{
		ConversationID: conversationID,
		ReportMsg:      msg,
		Time:           time.Now(),
	}
	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	return &report, nil
}

// Get returns the most recent report for a conversation.
func (s *ReportService) Get(conversationID string) (*models.Report, error) {
	var report models.Report
	if err := s.db.Where("conversation_id = ?", conversationID).
		Order("time DESC").First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("load report: %w", err)
	}
	return &report, nil
}

// ListAll returns every report.
func (s *ReportService) ListAll() ([]models.Report, error) {
	var reports []models.Report
	if err := s.db.Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("load reports: %w", err)
	}
	return reports, nil
}
