package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/quickta/backend/internal/services"
	"github.com/quickta/backend/pkg/response"
)

type ChatlogHandler struct {
	chatlogs *services.ChatlogService
}

func NewChatlogHandler(chatlogs *services.ChatlogService) *ChatlogHandler {
	return &ChatlogHandler{chatlogs: chatlogs}
}

type createChatlogRequest struct {
	ConversationID string `json:"conversation_id" binding:"required"`
	Chatlog        string `json:"chatlog" binding:"required"`
	Time           string `json:"time"`
}

// Create records a user turn, obtains the agent's reply, and returns both
// turns with timestamps in the caller's timezone.
func (h *ChatlogHandler) Create(c *gin.Context) {
	var req createChatlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	exchange, err := h.chatlogs.PostTurn(c.Request.Context(), req.ConversationID, req.Chatlog, req.Time)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Created(c, exchange)
}

// List returns the turns of one conversation, ascending by timestamp.
func (h *ChatlogHandler) List(c *gin.Context) {
	conversationID := c.Query("conversation_id")
	if conversationID == "" {
		response.BadRequest(c, "conversation_id is required")
		return
	}

	chatlogs, err := h.chatlogs.List(conversationID)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, chatlogs)
}

// ListAll returns every chatlog.
func (h *ChatlogHandler) ListAll(c *gin.Context) {
	chatlogs, err := h.chatlogs.ListAll()
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, chatlogs)
}
