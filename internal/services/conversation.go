package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quickta/backend/internal/models"
	"github.com/quickta/backend/internal/utils"
	"gorm.io/gorm"
)

// ConversationService owns conversation lifecycle: creation, lookup,
// comfortability ratings and transcript export.
type ConversationService struct {
	db        *gorm.DB
	agentName string
}

func NewConversationService(db *gorm.DB, agentName string) *ConversationService {
	return &ConversationService{db: db, agentName: agentName}
}

// Create starts a new active conversation between an existing user and an
// existing course.
func (s *ConversationService) Create(userID, courseID string) (*models.Conversation, error) {
	var user models.User
	if err := s.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	var course models.Course
	if err := s.db.Where("course_id = ?", courseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("load course: %w", err)
	}

	conv := models.Conversation{
		ConversationID: uuid.New().String(),
		UserID:         user.UserID,
		CourseID:       course.CourseID,
		StartTime:      time.Now(),
		Status:         models.ConversationActive,
		Semester:       course.Semester,
	}
	if err := s.db.Create(&conv).Error; err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	return &conv, nil
}

// Get returns a conversation by its identifier.
func (s *ConversationService) Get(conversationID string) (*models.Conversation, error) {
	var conv models.Conversation
	if err := s.db.Where("conversation_id = ?", conversationID).First(&conv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("load conversation: %w", err)
	}
	return &conv, nil
}

// ListAll returns every conversation.
func (s *ConversationService) ListAll() ([]models.Conversation, error) {
	var convs []models.Conversation
	if err := s.db.Find(&convs).Error; err != nil {
		return nil, fmt.Errorf("load conversations: %w", err)
	}
	return convs, nil
}

// SetComfortability records the user's comfortability rating on the
// conversation.
func (s *ConversationService) SetComfortability(conversationID string, rating int) (*models.Conversation, error) {
	conv, err := s.Get(conversationID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(conv).Update("comfortability_rating", rating).Error; err != nil {
		return nil, fmt.Errorf("update comfortability: %w", err)
	}
	conv.ComfortabilityRating = &rating
	return conv, nil
}

// ExportLines flattens the conversation into one line per turn:
//
//	[MM/DD/YYYY HH:MM:SS] <speaker> <body>
//
// Agent turns are attributed to the configured agent name.
func (s *ConversationService) ExportLines(conversationID string) ([]string, error) {
	_, user, chatlogs, err := s.exportData(conversationID)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(chatlogs))
	for _, log := range chatlogs {
		lines = append(lines, "["+utils.FormatExportTime(log.Time)+"] "+s.speaker(log, user)+" "+log.Chatlog)
	}
	return lines, nil
}

// ExportTranscript renders the flattened transcript as a single text blob.
func (s *ConversationService) ExportTranscript(conversationID string) (string, error) {
	lines, err := s.ExportLines(conversationID)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// ExportCSV writes the transcript as CSV rows of timestamp, speaker, body.
func (s *ConversationService) ExportCSV(w io.Writer, conversationID string) error {
	_, user, chatlogs, err := s.exportData(conversationID)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	for _, log := range chatlogs {
		row := []string{"[" + utils.FormatExportTime(log.Time) + "]", s.speaker(log, user), log.Chatlog}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func (s *ConversationService) speaker(log models.Chatlog, user *models.User) string {
	if log.IsUser {
		return user.Name
	}
	return s.agentName
}

func (s *ConversationService) exportData(conversationID string) (*models.Conversation, *models.User, []models.Chatlog, error) {
	conv, err := s.Get(conversationID)
	if err != nil {
		return nil, nil, nil, err
	}

	var user models.User
	if err := s.db.Where("user_id = ?", conv.UserID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, ErrUserNotFound
		}
		return nil, nil, nil, fmt.Errorf("load user: %w", err)
	}

	var chatlogs []models.Chatlog
	if err := s.db.Where("conversation_id = ?", conversationID).
		Order("time ASC").Find(&chatlogs).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("load chatlogs: %w", err)
	}
	return conv, &user, chatlogs, nil
}
