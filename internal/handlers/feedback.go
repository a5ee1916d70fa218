package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/quickta/backend/internal/services"
	"github.com/quickta/backend/pkg/response"
)

type FeedbackHandler struct {
	feedbacks *services.FeedbackService
}

func NewFeedbackHandler(feedbacks *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbacks: feedbacks}
}

// Get returns the feedback for a conversation.
func (h *FeedbackHandler) Get(c *gin.Context) {
	conversationID := c.Query("conversation_id")
	if conversationID == "" {
		response.BadRequest(c, "conversation_id is required")
		return
	}

	feedback, err := h.feedbacks.Get(conversationID)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, feedback)
}

type createFeedbackRequest struct {
	ConversationID string `json:"conversation_id" binding:"required"`
	Rating         int    `json:"rating" binding:"required,min=1,max=5"`
	FeedbackMsg    string `json:"feedback_msg"`
}

// Create submits feedback for a conversation and deactivates it.
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req createFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	feedback, err := h.feedbacks.Create(req.ConversationID, req.Rating, req.FeedbackMsg)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Created(c, feedback)
}

// ListAll returns every feedback record.
func (h *FeedbackHandler) ListAll(c *gin.Context) {
	feedbacks, err := h.feedbacks.ListAll()
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, feedbacks)
}
