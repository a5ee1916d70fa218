package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickta/backend/internal/services"
	"github.com/quickta/backend/pkg/response"
)

type ConversationHandler struct {
	conversations *services.ConversationService
}

func NewConversationHandler(conversations *services.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversations: conversations}
}

// Get returns the details of a conversation by conversation_id.
func (h *ConversationHandler) Get(c *gin.Context) {
	conversationID := c.Query("conversation_id")
	if conversationID == "" {
		response.BadRequest(c, "conversation_id is required")
		return
	}

	conv, err := h.conversations.Get(conversationID)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, conv)
}

type createConversationRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	CourseID string `json:"course_id" binding:"required"`
}

// Create starts a new conversation for a user within a course.
func (h *ConversationHandler) Create(c *gin.Context) {
	var req createConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	conv, err := h.conversations.Create(req.UserID, req.CourseID)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Created(c, conv)
}

// ListAll returns all conversations.
func (h *ConversationHandler) ListAll(c *gin.Context) {
	convs, err := h.conversations.ListAll()
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, convs)
}

type exportRequest struct {
	ConversationID string `json:"conversation_id" binding:"required"`
}

// ExportCSV streams the conversation transcript as a CSV attachment.
func (h *ConversationHandler) ExportCSV(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Render before committing attachment headers so errors go out as a
	// plain JSON envelope.
	var buf bytes.Buffer
	if err := h.conversations.ExportCSV(&buf, req.ConversationID); err != nil {
		serviceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="convo-report.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// ExportTranscript returns the flattened transcript as plain text, one line
// per turn.
func (h *ConversationHandler) ExportTranscript(c *gin.Context) {
	conversationID := c.Query("conversation_id")
	if conversationID == "" {
		response.BadRequest(c, "conversation_id is required")
		return
	}

	transcript, err := h.conversations.ExportTranscript(conversationID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.String(200, transcript)
}

// GetComfortability returns the comfortability rating of a conversation.
func (h *ConversationHandler) GetComfortability(c *gin.Context) {
	conversationID := c.Query("conversation_id")
	if conversationID == "" {
		response.BadRequest(c, "conversation_id is required")
		return
	}

	conv, err := h.conversations.Get(conversationID)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, gin.H{
		"conversation_id":       conv.ConversationID,
		"comfortability_rating": conv.ComfortabilityRating,
	})
}

type comfortabilityRequest struct {
	ConversationID       string `json:"conversation_id" binding:"required"`
	ComfortabilityRating int    `json:"comfortability_rating" binding:"required,min=1,max=5"`
}

// SetComfortability records the user's comfortability rating.
func (h *ConversationHandler) SetComfortability(c *gin.Context) {
	var req comfortabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	conv, err := h.conversations.SetComfortability(req.ConversationID, req.ComfortabilityRating)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Created(c, conv)
}
