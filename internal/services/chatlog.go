package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quickta/backend/internal/models"
	"github.com/quickta/backend/internal/utils"
	"gorm.io/gorm"
)

// ChatlogService owns the append-only log of user and agent turns, and runs
// the full turn exchange: record the user's turn, obtain the agent's reply,
// record the reply.
type ChatlogService struct {
	db          *gorm.DB
	transcript  *TranscriptService
	completion  *CompletionService
	defaultZone string
}

func NewChatlogService(db *gorm.DB, transcript *TranscriptService, completion *CompletionService, defaultZone string) *ChatlogService {
	return &ChatlogService{
		db:          db,
		transcript:  transcript,
		completion:  completion,
		defaultZone: defaultZone,
	}
}

// TurnView is a chatlog echoed back to the caller with its timestamp
// re-annotated in the caller's timezone.
type TurnView struct {
	ChatlogID      string        `json:"chatlog_id"`
	ConversationID string        `json:"conversation_id"`
	Time           string        `json:"time"`
	IsUser         bool          `json:"is_user"`
	Chatlog        string        `json:"chatlog"`
	Delta          time.Duration `json:"delta"`
}

// TurnExchange is the result of one chat turn: the user's utterance and the
// agent's reply.
type TurnExchange struct {
	User  TurnView `json:"user"`
	Agent TurnView `json:"agent"`
}

// Append persists a new immutable turn with a fresh identifier.
func (s *ChatlogService) Append(conversationID, body string, isUser bool, t time.Time, delta time.Duration) (*models.Chatlog, error) {
	entry := models.Chatlog{
		ChatlogID:      uuid.New().String(),
		ConversationID: conversationID,
		Time:           t,
		IsUser:         isUser,
		Chatlog:        body,
		Delta:          delta,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("append chatlog: %w", err)
	}
	return &entry, nil
}

// List returns the conversation's turns ascending by timestamp.
func (s *ChatlogService) List(conversationID string) ([]models.Chatlog, error) {
	return s.transcript.Assemble(conversationID)
}

// ListAll returns every turn across all conversations.
func (s *ChatlogService) ListAll() ([]models.Chatlog, error) {
	var chatlogs []models.Chatlog
	if err := s.db.Order("time ASC").Find(&chatlogs).Error; err != nil {
		return nil, fmt.Errorf("load chatlogs: %w", err)
	}
	return chatlogs, nil
}

// PostTurn records the user's turn, asks the completion service for the
// agent's reply, records the reply, and echoes both timestamps in the caller's
// timezone. If the completion call fails, the user's turn stands and no agent
// turn is created.
func (s *ChatlogService) PostTurn(ctx context.Context, conversationID, body, stampedTime string) (*TurnExchange, error) {
	userTime, zone, err := utils.ParseStamped(stampedTime, s.defaultZone)
	if err != nil {
		return nil, err
	}

	var conv models.Conversation
	if err := s.db.Where("conversation_id = ?", conversationID).First(&conv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	delta, err := s.transcript.ComputeDelta(conversationID, userTime)
	if err != nil {
		return nil, err
	}

	userLog, err := s.Append(conversationID, body, true, userTime, delta)
	if err != nil {
		return nil, err
	}

	reply, err := s.completion.GenerateReply(ctx, conversationID, conv.CourseID, body)
	if err != nil {
		return nil, err
	}

	agentTime := time.Now()
	agentDelta := agentTime.Sub(userTime)
	if agentDelta < 0 {
		agentDelta = 0
	}
	agentLog, err := s.Append(conversationID, reply, false, agentTime, agentDelta)
	if err != nil {
		return nil, err
	}

	userStamped, err := utils.FormatStamped(userTime, zone)
	if err != nil {
		return nil, err
	}
	agentStamped, err := utils.FormatStamped(agentTime, zone)
	if err != nil {
		return nil, err
	}

	return &TurnExchange{
		User:  turnView(userLog, userStamped),
		Agent: turnView(agentLog, agentStamped),
	}, nil
}

func turnView(log *models.Chatlog, stamped string) TurnView {
	return TurnView{
		ChatlogID:      log.ChatlogID,
		ConversationID: log.ConversationID,
		Time:           stamped,
		IsUser:         log.IsUser,
		Chatlog:        log.Chatlog,
		Delta:          log.Delta,
	}
}
